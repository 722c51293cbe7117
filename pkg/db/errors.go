package db

import "strings"

// IsUniqueViolation reports whether err came from a unique constraint,
// matching both the Postgres and sqlite message shapes so callers behave the
// same under test.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
