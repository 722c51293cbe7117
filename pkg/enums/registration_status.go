package enums

import "fmt"

// RegistrationStatus tracks a workshop registration. Confirmation consumes a
// seat and is guarded by workshop capacity.
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "Pending"
	RegistrationStatusConfirmed RegistrationStatus = "Confirmed"
	RegistrationStatusCancelled RegistrationStatus = "Cancelled"
)

var validRegistrationStatuses = []RegistrationStatus{
	RegistrationStatusPending,
	RegistrationStatusConfirmed,
	RegistrationStatusCancelled,
}

// IsValid reports whether the value matches the canonical registration status enum.
func (s RegistrationStatus) IsValid() bool {
	for _, candidate := range validRegistrationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseRegistrationStatus converts the raw string to RegistrationStatus.
func ParseRegistrationStatus(value string) (RegistrationStatus, error) {
	for _, candidate := range validRegistrationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid registration status %q", value)
}
