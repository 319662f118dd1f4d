package store

import (
	"context"
	"database/sql"

	"github.com/mkovac/blogd/internal/domain"
)

// UserRepository defines the persistence port for users.
type UserRepository interface {
	// Exists reports whether any stored user already has the given
	// username or the given email. Used to enforce registration
	// uniqueness.
	Exists(ctx context.Context, username domain.UserName, email domain.Email) (bool, error)

	// Create saves a new user.
	// Returns ErrUsernameOrEmailExists if the database rejects the insert
	// because of a duplicate username or email.
	Create(ctx context.Context, user *domain.User) error

	// Get retrieves a user by username.
	// Returns ErrUserNotFound if no such user exists.
	Get(ctx context.Context, username domain.UserName) (*domain.User, error)

	// WithTx returns a UserRepository bound to the given transaction, so
	// multiple operations can share one atomic scope.
	WithTx(tx *sql.Tx) UserRepository
}
