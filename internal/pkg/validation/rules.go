package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length, matches the forced first-login change flow
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Birthday is stored as day/month with no year
	BirthdayPattern = `^\d{1,2}/\d{1,2}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Birthday *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Birthday: regexp.MustCompile(BirthdayPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidBirthday reports whether the value is a plausible dd/mm pair
func IsValidBirthday(value string) bool {
	return CompiledPatterns.Birthday.MatchString(value)
}

// IsValidPassword reports whether the password satisfies the minimum length
func IsValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}

// IsValidName reports whether a display name length is acceptable
func IsValidName(value string) bool {
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}
