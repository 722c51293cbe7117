package enums

import "fmt"

// EducationLevel is collected on workshop registrations.
type EducationLevel string

const (
	EducationLevelSchool     EducationLevel = "School"
	EducationLevelCollege    EducationLevel = "College"
	EducationLevelUniversity EducationLevel = "University"
)

var validEducationLevels = []EducationLevel{
	EducationLevelSchool,
	EducationLevelCollege,
	EducationLevelUniversity,
}

// IsValid reports whether the value matches the canonical education level enum.
func (e EducationLevel) IsValid() bool {
	for _, candidate := range validEducationLevels {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEducationLevel converts the raw string to EducationLevel.
func ParseEducationLevel(value string) (EducationLevel, error) {
	for _, candidate := range validEducationLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid education level %q", value)
}
