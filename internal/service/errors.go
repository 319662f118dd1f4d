package service

import (
	"errors"
	"fmt"
)

// Typed errors returned by the command handlers. Value-object construction
// errors never leak past a handler raw; they are wrapped into the
// command's own error kind, with the validation reason preserved in the
// message. Every transport checks these with errors.Is.
var (
	// ErrInvalidUser is returned by RegisterUser for a malformed username,
	// email or password.
	ErrInvalidUser = errors.New("invalid user")

	// ErrUsernameOrEmailExists is returned by RegisterUser when either
	// field is already taken.
	ErrUsernameOrEmailExists = errors.New("username or email already exists")

	// ErrInvalidUserNameOrPassword is returned by VerifyUser for malformed
	// input or wrong credentials. The two are deliberately conflated so a
	// caller cannot learn which part was wrong.
	ErrInvalidUserNameOrPassword = errors.New("invalid username or password")

	// ErrUserNotFound is returned by VerifyUser for a nonexistent username.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidTitle is returned by CreatePost and UpdatePost for a title
	// that fails validation.
	ErrInvalidTitle = errors.New("invalid title")

	// ErrPostNotFound is returned by the post handlers for a nonexistent
	// post.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAllowed is returned by UpdatePost and DeletePost when the
	// requester is not the post's author.
	ErrNotAllowed = errors.New("not allowed")

	// ErrUnexpected wraps repository and credential-service failures. It is
	// the last-resort catch-all; conditions with a dedicated kind above are
	// never reported through it. The underlying message is preserved for
	// logging but is not stable for programmatic matching.
	ErrUnexpected = errors.New("unexpected error")
)

// unexpectedError wraps an infrastructure failure into ErrUnexpected,
// keeping the underlying message.
func unexpectedError(err error) error {
	return fmt.Errorf("%w: %v", ErrUnexpected, err)
}
