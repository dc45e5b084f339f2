// Package validate holds the field validation rules shared by every form.
//
// Validators are pure: they take the raw text and report a sentinel error.
// Presentation concerns (error text, shaking) belong to the input component.
package validate

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// Kind is the input kind a field validates against.
type Kind int

const (
	Text Kind = iota
	Email
	Number
	Password
)

func (k Kind) String() string {
	switch k {
	case Email:
		return "email"
	case Number:
		return "number"
	case Password:
		return "password"
	default:
		return "text"
	}
}

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrNotNumeric       = errors.New("not numeric")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordMismatch = errors.New("password mismatch")
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,64}$`)

// Field validates text against kind and returns nil or one of the sentinel
// errors above.
func Field(kind Kind, text string) error {
	switch kind {
	case Email:
		if !emailPattern.MatchString(text) {
			return ErrInvalidEmail
		}
	case Number:
		if !isDigits(text) {
			return ErrNotNumeric
		}
	case Password:
		if utf8.RuneCountInString(text) < MinPasswordLength {
			return ErrPasswordTooShort
		}
	}
	return nil
}

// Valid is Field reduced to a boolean.
func Valid(kind Kind, text string) bool {
	return Field(kind, text) == nil
}

// isDigits reports whether every character is an ASCII digit. Empty input is
// vacuously numeric.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Message returns the inline error text shown under a field.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, ErrNotNumeric):
		return "Please enter numbers only"
	case errors.Is(err, ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	default:
		return "Invalid input"
	}
}
