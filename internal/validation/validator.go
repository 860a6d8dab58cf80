package validation

import (
	"regexp"
	"strings"
	"time"
)

const dueDateFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct {
	emailRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		emailRegex: regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidEmail checks if a string looks like an email address
func (v *Validator) IsValidEmail(email string) bool {
	return v.emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidDueDate checks if a due date string is a parseable calendar date
func (v *Validator) IsValidDueDate(dueDate string) bool {
	trimmed := strings.TrimSpace(dueDate)
	if _, err := time.Parse(dueDateFormat, trimmed); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, trimmed)
	return err == nil
}

// HasMinLength checks if a string meets a minimum length
func (v *Validator) HasMinLength(s string, min int) bool {
	return len(s) >= min
}

// IsStrongPassword checks the registration password rules: at least one
// lowercase letter, one uppercase letter, one digit and one special
// character, with only those character classes allowed
func (v *Validator) IsStrongPassword(password string) bool {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", r):
			hasSpecial = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit && hasSpecial
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
