// Package auth provides the credential capabilities the application layer
// consumes: password hashing/verification and token issuance/decoding.
package auth

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the password simply
	// does not match the hash. Callers must not conflate this with hash
	// corruption, which surfaces as a different error.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned by Hash when the password exceeds the
	// hashing algorithm's input limit (72 bytes for bcrypt).
	ErrPasswordTooLong = errors.New("password exceeds hashing input limit")

	// ErrInvalidToken is returned when a token is malformed, carries an
	// invalid signature, or otherwise fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)
