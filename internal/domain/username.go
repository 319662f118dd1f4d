package domain

import "errors"

const (
	userNameMinLength = 5
	userNameMaxLength = 20
)

// UserName validation errors, checked in order: empty, too short, too long.
var (
	ErrUserNameEmpty    = errors.New("username is empty")
	ErrUserNameTooShort = errors.New("username is too short")
	ErrUserNameTooLong  = errors.New("username is too long")
)

// UserName is a validated user name, between 5 and 20 characters.
// Uniqueness across users is enforced by the repository, not here.
type UserName struct {
	value string
}

// NewUserName validates the raw input and wraps it.
func NewUserName(value string) (UserName, error) {
	if value == "" {
		return UserName{}, ErrUserNameEmpty
	}
	if len(value) < userNameMinLength {
		return UserName{}, ErrUserNameTooShort
	}
	if len(value) > userNameMaxLength {
		return UserName{}, ErrUserNameTooLong
	}
	return UserName{value: value}, nil
}

func (n UserName) String() string {
	return n.value
}
