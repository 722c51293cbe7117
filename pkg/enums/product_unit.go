package enums

import "fmt"

// ProductUnit is the unit of measurement a product is sold in.
type ProductUnit string

const (
	ProductUnitMeter ProductUnit = "meter"
	ProductUnitPiece ProductUnit = "piece"
)

var validProductUnits = []ProductUnit{
	ProductUnitMeter,
	ProductUnitPiece,
}

// IsValid reports whether the value matches the canonical product unit enum.
func (u ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseProductUnit converts the raw string to ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
