package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/service/auth"
	"github.com/mkovac/blogd/internal/store"
)

// RegisterUserCommand carries the already-deserialized registration input.
type RegisterUserCommand struct {
	Username string
	Password string
	Email    string
}

// VerifyUserCommand carries the already-deserialized login input.
type VerifyUserCommand struct {
	Username string
	Password string
}

// UserService provides the user-facing command handlers.
type UserService interface {
	// RegisterUser validates the command, hashes the password, and creates
	// the user if neither the username nor the email is taken.
	// Returns ErrInvalidUser, ErrUsernameOrEmailExists or ErrUnexpected.
	RegisterUser(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error)

	// VerifyUser checks the credentials and returns the matching user.
	// Token issuance is not part of this handler; the transport asks the
	// credential service afterwards.
	// Returns ErrInvalidUserNameOrPassword, ErrUserNotFound or ErrUnexpected.
	VerifyUser(ctx context.Context, cmd VerifyUserCommand) (*domain.User, error)
}

type userService struct {
	users  store.UserRepository
	hasher auth.PasswordHasher
	db     *sql.DB
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given repository and
// hashing capability.
func NewUserService(
	users store.UserRepository,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		db:     db,
		logger: logger.With("component", "user_service"),
	}
}

// RegisterUser implements UserService. The existence check and the insert
// run in one transaction; a concurrent duplicate that slips past the check
// is rejected by the database's unique constraints and surfaces as the
// same ErrUsernameOrEmailExists.
func (s *userService) RegisterUser(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	username, err := domain.NewUserName(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	password, err := domain.NewPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}

	passwordHash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
		}
		s.logger.Error("failed to hash password", "error", err)
		return nil, unexpectedError(err)
	}

	var user *domain.User
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.users.WithTx(tx)

		exists, err := txUsers.Exists(ctx, username, email)
		if err != nil {
			return unexpectedError(err)
		}
		if exists {
			return ErrUsernameOrEmailExists
		}

		user = domain.NewUser(username, email, passwordHash)
		if err := txUsers.Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrUsernameOrEmailExists) {
				return ErrUsernameOrEmailExists
			}
			return unexpectedError(err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUsernameOrEmailExists) {
			s.logger.Debug("attempted to register an existing username or email",
				"username", username.String())
			return nil, ErrUsernameOrEmailExists
		}
		if errors.Is(err, ErrUnexpected) {
			s.logger.Error("failed to register user",
				"error", err,
				"username", username.String())
			return nil, err
		}
		return nil, unexpectedError(err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID(),
		"username", username.String())
	return user, nil
}

// VerifyUser implements UserService. Malformed input and wrong credentials
// produce the same error kind so the response never reveals which part was
// wrong.
func (s *userService) VerifyUser(ctx context.Context, cmd VerifyUserCommand) (*domain.User, error) {
	username, err := domain.NewUserName(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUserNameOrPassword, err)
	}
	password, err := domain.NewPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUserNameOrPassword, err)
	}

	user, err := s.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login against nonexistent username",
				"username", username.String())
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load user",
			"error", err,
			"username", username.String())
		return nil, unexpectedError(err)
	}

	switch err := s.hasher.Compare(user.PasswordHash(), password); {
	case err == nil:
		return user, nil
	case errors.Is(err, auth.ErrPasswordMismatch):
		return nil, fmt.Errorf("%w: password is incorrect", ErrInvalidUserNameOrPassword)
	default:
		s.logger.Error("failed to verify password",
			"error", err,
			"user_id", user.ID())
		return nil, unexpectedError(err)
	}
}
