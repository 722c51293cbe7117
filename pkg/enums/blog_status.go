package enums

import "fmt"

// BlogStatus controls public visibility of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

var validBlogStatuses = []BlogStatus{
	BlogStatusDraft,
	BlogStatusPublished,
}

// IsValid reports whether the value matches the canonical blog status enum.
func (s BlogStatus) IsValid() bool {
	for _, candidate := range validBlogStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseBlogStatus converts the raw string to BlogStatus.
func ParseBlogStatus(value string) (BlogStatus, error) {
	for _, candidate := range validBlogStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid blog status %q", value)
}
