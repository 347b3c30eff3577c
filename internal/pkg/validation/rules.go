package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - deliberately permissive, format only
	EmailPattern = `^[\w.\-]+@[\w.\-]+\.\w+$`

	// AdminPasswordMinLength is the minimum length for admin account passwords
	AdminPasswordMinLength = 12

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 255
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the email has a plausible address shape.
// Uniqueness and existence are the credential store's concern, not ours.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// NormalizeEmail trims surrounding whitespace and lowercases the address
// the way admin-facing flows store it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidName checks display name length bounds after trimming.
func IsValidName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}
