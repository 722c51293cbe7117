package enums

import "fmt"

// WorkshopStatus tracks where a workshop sits in its schedule.
type WorkshopStatus string

const (
	WorkshopStatusUpcoming  WorkshopStatus = "Upcoming"
	WorkshopStatusOngoing   WorkshopStatus = "Ongoing"
	WorkshopStatusCompleted WorkshopStatus = "Completed"
	WorkshopStatusCancelled WorkshopStatus = "Cancelled"
)

var validWorkshopStatuses = []WorkshopStatus{
	WorkshopStatusUpcoming,
	WorkshopStatusOngoing,
	WorkshopStatusCompleted,
	WorkshopStatusCancelled,
}

// IsValid reports whether the value matches the canonical workshop status enum.
func (s WorkshopStatus) IsValid() bool {
	for _, candidate := range validWorkshopStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseWorkshopStatus converts the raw string to WorkshopStatus.
func ParseWorkshopStatus(value string) (WorkshopStatus, error) {
	for _, candidate := range validWorkshopStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid workshop status %q", value)
}
