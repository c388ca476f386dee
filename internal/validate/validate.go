package validate

import (
	"regexp"
	"strings"
)

// emailPattern accepts addresses of the shape local@domain.tld: exactly one
// '@' with no whitespace anywhere, and at least one '.' after the '@'. This
// is deliberately looser than RFC 5322; the point is to reject empty or
// obviously broken values, not to referee the full address grammar.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Normalize trims leading and trailing whitespace from a user-supplied field.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail trims and lower-cases an email address so that uniqueness
// checks are case-insensitive.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
