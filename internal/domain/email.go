package domain

import (
	"errors"
	"regexp"
)

// Email validation errors, checked in order: empty, pattern mismatch.
var (
	ErrEmailEmpty   = errors.New("email is empty")
	ErrEmailInvalid = errors.New("email is invalid")
)

// emailPattern is a conservative local@domain.tld shape. Compiled once at
// package init and never recompiled per call.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// Email is a validated email address. Uniqueness across users is enforced
// by the repository alongside the username.
type Email struct {
	value string
}

// NewEmail validates the raw input and wraps it.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, ErrEmailEmpty
	}
	if !emailPattern.MatchString(value) {
		return Email{}, ErrEmailInvalid
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}
