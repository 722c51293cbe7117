package enums

import "fmt"

// BuyOption distinguishes personal purchases from wholesale orders on inquiries.
type BuyOption string

const (
	BuyOptionPersonal  BuyOption = "Personal"
	BuyOptionWholesale BuyOption = "Wholesale"
	BuyOptionOther     BuyOption = "Other"
)

var validBuyOptions = []BuyOption{
	BuyOptionPersonal,
	BuyOptionWholesale,
	BuyOptionOther,
}

// IsValid reports whether the value matches the canonical buy option enum.
func (b BuyOption) IsValid() bool {
	for _, candidate := range validBuyOptions {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBuyOption converts the raw string to BuyOption.
func ParseBuyOption(value string) (BuyOption, error) {
	for _, candidate := range validBuyOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid buy option %q", value)
}
