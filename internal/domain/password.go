package domain

import (
	"errors"
	"strings"
	"unicode"
)

const passwordMinLength = 8

// passwordSpecialChars is the fixed punctuation set a password must draw
// at least one character from.
const passwordSpecialChars = "!@#$%^&*"

// Password validation errors, checked in order: empty, too short, missing
// character class.
var (
	ErrPasswordEmpty    = errors.New("password is empty")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordInvalid  = errors.New(
		"password must contain at least one uppercase letter, one lowercase letter, one digit and one special character",
	)
)

// Password is a validated plaintext password. It exists only transiently
// during registration and login: the raw value is reachable only through
// Expose, and every printable representation is redacted so the secret
// never ends up in logs or serialized output.
type Password struct {
	secret string
}

// NewPassword validates the raw input and wraps it.
func NewPassword(value string) (Password, error) {
	if value == "" {
		return Password{}, ErrPasswordEmpty
	}
	if len(value) < passwordMinLength {
		return Password{}, ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range value {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, ch):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return Password{}, ErrPasswordInvalid
	}

	return Password{secret: value}, nil
}

// Expose returns the raw password bytes. Only the hashing capability
// should call this.
func (p Password) Expose() []byte {
	return []byte(p.secret)
}

func (p Password) String() string {
	return "[REDACTED]"
}

// GoString redacts the secret from %#v output.
func (p Password) GoString() string {
	return "domain.Password{secret: \"[REDACTED]\"}"
}

// MarshalJSON never serializes the secret.
func (p Password) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}
