package validation

import (
	"regexp"
	"strings"
)

var (
	// local@domain.tld shape only. No DNS/MX verification.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Digits, +, -, parentheses and spaces, at least 7 characters total.
	phoneRegex = regexp.MustCompile(`^[+0-9()\-\s]{7,}$`)
)

func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}
