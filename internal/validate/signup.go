package validate

import (
	"strings"
	"unicode/utf8"
)

// SignupField identifies one of the four signup inputs.
type SignupField int

const (
	SignupName SignupField = iota
	SignupEmail
	SignupPassword
	SignupConfirmation
)

// SignupForm is the aggregate state of the signup screen. Callers mutate it
// only through OnFieldChanged so the derived flags stay in step.
type SignupForm struct {
	Name         string
	Email        string
	Password     string
	Confirmation string

	confirmationVisible bool
	submittable         bool
}

// OnFieldChanged stores the new value and recomputes the derived state.
func (f *SignupForm) OnFieldChanged(field SignupField, value string) {
	switch field {
	case SignupName:
		f.Name = value
	case SignupEmail:
		f.Email = value
	case SignupPassword:
		f.Password = value
	case SignupConfirmation:
		f.Confirmation = value
	}
	f.recompute()
}

func (f *SignupForm) recompute() {
	passwordLen := utf8.RuneCountInString(f.Password)
	f.confirmationVisible = passwordLen >= MinPasswordLength

	nameOK := strings.TrimSpace(f.Name) != ""
	// Substring rule only. The email input still shows Field's strict error.
	emailOK := strings.Contains(f.Email, "@") && strings.Contains(f.Email, ".")
	passwordOK := passwordLen >= MinPasswordLength
	matchOK := !f.confirmationVisible || f.Password == f.Confirmation

	f.submittable = nameOK && emailOK && passwordOK && matchOK
}

// ConfirmationVisible reports whether the confirmation field is shown.
func (f SignupForm) ConfirmationVisible() bool { return f.confirmationVisible }

// IsSubmittable reports whether the form may be submitted.
func (f SignupForm) IsSubmittable() bool { return f.submittable }

// ConfirmationError returns ErrPasswordMismatch when the confirmation is
// visible, non-empty and differs from the password.
func (f SignupForm) ConfirmationError() error {
	if f.confirmationVisible && f.Confirmation != "" && f.Confirmation != f.Password {
		return ErrPasswordMismatch
	}
	return nil
}
