package domain

import "time"

// User is a registered user of the blog. Users are never mutated after
// creation; there is no profile editing.
type User struct {
	id           ID
	username     UserName
	email        Email
	passwordHash PasswordHash
	createdAt    time.Time
}

// NewUser creates a user with a fresh identifier and the current UTC time.
// The caller provides already-validated value objects and an
// already-computed password hash.
func NewUser(username UserName, email Email, passwordHash PasswordHash) *User {
	return &User{
		id:           NewID(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    time.Now().UTC(),
	}
}

// RestoreUser reconstructs a user from storage without re-validating.
// Stored data already passed validation when the user was created.
func RestoreUser(id ID, username, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     UserName{value: username},
		email:        Email{value: email},
		passwordHash: PasswordHash{value: passwordHash},
		createdAt:    createdAt,
	}
}

func (u *User) ID() ID                     { return u.id }
func (u *User) Username() UserName         { return u.username }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() PasswordHash { return u.passwordHash }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
