package store

import (
	"context"
	"database/sql"

	"github.com/mkovac/blogd/internal/domain"
)

// PostRepository defines the persistence port for posts.
type PostRepository interface {
	// Create saves a new post.
	Create(ctx context.Context, post *domain.Post) error

	// Update persists the current state of an existing post.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Get retrieves a post by its identifier.
	// Returns ErrPostNotFound if no such post exists.
	Get(ctx context.Context, id domain.ID) (*domain.Post, error)

	// Delete removes a post by its identifier.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id domain.ID) error

	// List returns one page of posts ordered by creation time ascending,
	// together with the total number of posts regardless of the page
	// bounds, so pagination metadata stays accurate on the last page.
	List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)

	// WithTx returns a PostRepository bound to the given transaction.
	WithTx(tx *sql.Tx) PostRepository
}
