package validators

import "strings"

func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

// BearerToken extracts the bearer token from an Authorization header value.
// Returns an empty string when the header is missing or malformed.
func BearerToken(header string) string {
	token := strings.TrimSpace(header)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return ""
}
