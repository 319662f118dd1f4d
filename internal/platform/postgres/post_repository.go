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

// PostRepository implements store.PostRepository using PostgreSQL.
type PostRepository struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostRepository creates a PostgreSQL implementation of the post port.
func NewPostRepository(db store.DBTX, logger *slog.Logger) *PostRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostRepository{
		db:     db,
		logger: logger.With("component", "post_repository"),
	}
}

var _ store.PostRepository = (*PostRepository)(nil)

// WithTx implements store.PostRepository.WithTx.
func (r *PostRepository) WithTx(tx *sql.Tx) store.PostRepository {
	return &PostRepository{db: tx, logger: r.logger}
}

// Create implements store.PostRepository.Create.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
		INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID().UUID(),
		post.Title().String(),
		post.Content().String(),
		post.AuthorID().UUID(),
		post.CreatedAt(),
		post.UpdatedAt(),
	)
	if err != nil {
		return store.NewStoreError("post", "create", err)
	}
	return nil
}

// Update implements store.PostRepository.Update. The author and creation
// time columns are deliberately absent from the statement; they never
// change after creation.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
		UPDATE posts
		SET title = $2, content = $3, updated_at = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID().UUID(),
		post.Title().String(),
		post.Content().String(),
		post.UpdatedAt(),
	)
	if err != nil {
		return store.NewStoreError("post", "update", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("post", "update", err)
	}
	if affected == 0 {
		return store.ErrPostNotFound
	}
	return nil
}

// Get implements store.PostRepository.Get.
func (r *PostRepository) Get(ctx context.Context, id domain.ID) (*domain.Post, error) {
	const query = `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id.UUID()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		return nil, store.NewStoreError("post", "get", err)
	}
	return post, nil
}

// Delete implements store.PostRepository.Delete.
func (r *PostRepository) Delete(ctx context.Context, id domain.ID) error {
	const query = `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.UUID())
	if err != nil {
		return store.NewStoreError("post", "delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("post", "delete", err)
	}
	if affected == 0 {
		return store.ErrPostNotFound
	}
	return nil
}

// List implements store.PostRepository.List. The count runs alongside the
// page query; when the repository is bound to a transaction both reads
// share its snapshot. Negative bounds are clamped rather than rejected.
func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	const countQuery = `SELECT COUNT(*) FROM posts`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, store.NewStoreError("post", "list", err)
	}

	const pageQuery = `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, pageQuery, limit, offset)
	if err != nil {
		return nil, 0, store.NewStoreError("post", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.Error("failed to close rows", "error", err)
		}
	}()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, store.NewStoreError("post", "list", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, store.NewStoreError("post", "list", err)
	}

	return posts, total, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*domain.Post, error) {
	var (
		id        uuid.UUID
		title     string
		content   string
		authorID  uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	if err := s.Scan(&id, &title, &content, &authorID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return domain.RestorePost(
		domain.IDFromUUID(id),
		title,
		content,
		domain.IDFromUUID(authorID),
		createdAt.UTC(),
		updatedAt.UTC(),
	), nil
}
