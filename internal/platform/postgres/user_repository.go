package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/store"
)

// UserRepository implements store.UserRepository using PostgreSQL.
type UserRepository struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserRepository creates a PostgreSQL implementation of the user port.
// The connection (or transaction) is managed by the caller.
func NewUserRepository(db store.DBTX, logger *slog.Logger) *UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

var _ store.UserRepository = (*UserRepository)(nil)

// WithTx implements store.UserRepository.WithTx.
func (r *UserRepository) WithTx(tx *sql.Tx) store.UserRepository {
	return &UserRepository{db: tx, logger: r.logger}
}

// Exists implements store.UserRepository.Exists.
func (r *UserRepository) Exists(ctx context.Context, username domain.UserName, email domain.Email) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username.String(), email.String()).Scan(&exists); err != nil {
		return false, store.NewStoreError("user", "exists", err)
	}
	return exists, nil
}

// Create implements store.UserRepository.Create.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID().UUID(),
		user.Username().String(),
		user.Email().String(),
		user.PasswordHash().Value(),
		user.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrUsernameOrEmailExists
		}
		return store.NewStoreError("user", "create", err)
	}
	return nil
}

// Get implements store.UserRepository.Get.
func (r *UserRepository) Get(ctx context.Context, username domain.UserName) (*domain.User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1`

	var (
		id           uuid.UUID
		name         string
		email        string
		passwordHash string
		createdAt    time.Time
	)
	err := r.db.QueryRowContext(ctx, query, username.String()).
		Scan(&id, &name, &email, &passwordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", err)
	}

	return domain.RestoreUser(domain.IDFromUUID(id), name, email, passwordHash, createdAt.UTC()), nil
}
