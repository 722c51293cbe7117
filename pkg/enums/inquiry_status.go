package enums

import "fmt"

// InquiryStatus describes the lifecycle of a customer inquiry. The only
// transition with side effects is the first arrival at Completed, which
// consumes stock.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "Pending"
	InquiryStatusContacted InquiryStatus = "Contacted"
	InquiryStatusCompleted InquiryStatus = "Completed"
	InquiryStatusCancelled InquiryStatus = "Cancelled"
)

var validInquiryStatuses = []InquiryStatus{
	InquiryStatusPending,
	InquiryStatusContacted,
	InquiryStatusCompleted,
	InquiryStatusCancelled,
}

// IsValid reports whether the value matches the canonical inquiry status enum.
func (s InquiryStatus) IsValid() bool {
	for _, candidate := range validInquiryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseInquiryStatus converts the raw string to InquiryStatus.
func ParseInquiryStatus(value string) (InquiryStatus, error) {
	for _, candidate := range validInquiryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inquiry status %q", value)
}
