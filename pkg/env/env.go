package env

import "os"

// Get reads an environment variable, falling back when it is unset or empty.
// Empty values are treated as unset so a blank export cannot blank out a
// default.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
