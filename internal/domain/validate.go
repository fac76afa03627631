package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// phonePattern accepts an optional leading "+" and 2 to 15 digits with a
// non-zero first digit.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidPhone reports whether s is an E.164-like phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Check evaluates validation rules in order and remembers only the first
// violation.
type Check struct {
	first *ValidationError
}

// Rule records a violation for field unless ok is true or an earlier rule
// already failed.
func (c *Check) Rule(ok bool, field, message string) *Check {
	if c.first == nil && !ok {
		c.first = NewValidationError(field, message)
	}
	return c
}

// Err returns the first violation or nil.
func (c *Check) Err() error {
	if c.first == nil {
		return nil
	}
	return c.first
}

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// TrimPtr trims the pointed-to string and returns nil for empty results.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
