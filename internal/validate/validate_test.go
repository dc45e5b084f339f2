package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldText(t *testing.T) {
	for _, s := range []string{"", " ", "anything at all", "🙂"} {
		require.NoError(t, Field(Text, s))
	}
}

func TestFieldEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"first.last@example.com",
		"UPPER+tag@Sub.Domain.ORG",
		"x_y%z-1@host-1.io",
		"a@b." + strings.Repeat("c", 64),
	}
	for _, s := range valid {
		require.NoError(t, Field(Email, s), s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user@example.c",
		"user@example.c0m",
		"user example@test.com",
		"a@b." + strings.Repeat("c", 65),
	}
	for _, s := range invalid {
		require.ErrorIs(t, Field(Email, s), ErrInvalidEmail, s)
	}
}

func TestFieldNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"0123456789", true},
		{"12a", false},
		{"-1", false},
		{"1.5", false},
		{" 1", false},
		{"١٢٣", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Valid(Number, tt.in))
			if !tt.want {
				require.ErrorIs(t, Field(Number, tt.in), ErrNotNumeric)
			}
		})
	}
	// Empty input never reaches the predicate from an input field, but the
	// predicate itself treats it as vacuously numeric.
	require.True(t, Valid(Number, ""))
}

func TestFieldNumberMatchesDigitPredicate(t *testing.T) {
	inputs := []string{"", "1", "12", "x", "1x2", "999999", "0 0", "+1"}
	for _, s := range inputs {
		all := true
		for _, r := range s {
			if r < '0' || r > '9' {
				all = false
			}
		}
		require.Equal(t, all, Valid(Number, s), s)
	}
}

func TestFieldPassword(t *testing.T) {
	for n := 0; n <= 10; n++ {
		s := strings.Repeat("p", n)
		require.Equal(t, n >= MinPasswordLength, Valid(Password, s), "len %d", n)
	}
	require.ErrorIs(t, Field(Password, "12345"), ErrPasswordTooShort)
	// Length counts characters, not bytes.
	require.ErrorIs(t, Field(Password, "éééé"), ErrPasswordTooShort)
	require.NoError(t, Field(Password, "éééééé"))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrInvalidEmail, "Please enter a valid email address"},
		{ErrNotNumeric, "Please enter numbers only"},
		{ErrPasswordTooShort, "Password must be at least 6 characters"},
		{ErrPasswordMismatch, "Passwords do not match"},
		{errors.New("other"), "Invalid input"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Message(tt.err))
	}
}

func TestKeyboard(t *testing.T) {
	require.Equal(t, KeyboardEmail, Email.Keyboard().Type)
	require.False(t, Email.Keyboard().Autocapitalize)
	require.Equal(t, KeyboardNumeric, Number.Keyboard().Type)
	require.True(t, Password.Keyboard().SecureEntry)
	require.False(t, Password.Keyboard().Autocapitalize)
	require.Equal(t, KeyboardDefault, Text.Keyboard().Type)
}
