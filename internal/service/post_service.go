package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/store"
)

// CreatePostCommand carries the already-deserialized create-post input.
type CreatePostCommand struct {
	Title   string
	Content string
}

// UpdatePostCommand carries the already-deserialized update-post input.
type UpdatePostCommand struct {
	Title   string
	Content string
}

// PostService provides the post command handlers. Mutating operations take
// the authenticated requester's identifier; the ownership invariant is
// enforced here and nowhere else.
type PostService interface {
	// CreatePost creates a post owned by authorID.
	// Returns ErrInvalidTitle or ErrUnexpected.
	CreatePost(ctx context.Context, authorID domain.ID, cmd CreatePostCommand) (*domain.Post, error)

	// UpdatePost replaces the title and content of an existing post. The
	// ownership check runs before validation, so a non-owner never learns
	// whether the edit would have been valid.
	// Returns ErrPostNotFound, ErrNotAllowed, ErrInvalidTitle or ErrUnexpected.
	UpdatePost(ctx context.Context, postID, requesterID domain.ID, cmd UpdatePostCommand) (*domain.Post, error)

	// DeletePost removes an existing post under the same ownership check.
	// Returns ErrPostNotFound, ErrNotAllowed or ErrUnexpected.
	DeletePost(ctx context.Context, postID, requesterID domain.ID) error

	// GetPost returns a post by identifier. Reads are public.
	// Returns ErrPostNotFound or ErrUnexpected.
	GetPost(ctx context.Context, postID domain.ID) (*domain.Post, error)

	// ListPosts returns one page of posts ordered by creation time
	// ascending and the total number of posts.
	ListPosts(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)
}

type postService struct {
	posts  store.PostRepository
	db     *sql.DB
	logger *slog.Logger
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(posts store.PostRepository, db *sql.DB, logger *slog.Logger) PostService {
	return &postService{
		posts:  posts,
		db:     db,
		logger: logger.With("component", "post_service"),
	}
}

// escapedTitle HTML-escapes the raw title before wrapping it, so stored
// values are safe to render without re-encoding on every read.
func escapedTitle(raw string) (domain.Title, error) {
	title, err := domain.NewTitle(html.EscapeString(raw))
	if err != nil {
		return domain.Title{}, fmt.Errorf("%w: %v", ErrInvalidTitle, err)
	}
	return title, nil
}

// CreatePost implements PostService.
func (s *postService) CreatePost(ctx context.Context, authorID domain.ID, cmd CreatePostCommand) (*domain.Post, error) {
	title, err := escapedTitle(cmd.Title)
	if err != nil {
		return nil, err
	}
	content := domain.NewContent(html.EscapeString(cmd.Content))

	post := domain.NewPost(title, content, authorID)
	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"author_id", authorID)
		return nil, unexpectedError(err)
	}

	s.logger.Info("post created",
		"post_id", post.ID(),
		"author_id", authorID)
	return post, nil
}

// UpdatePost implements PostService.
func (s *postService) UpdatePost(ctx context.Context, postID, requesterID domain.ID, cmd UpdatePostCommand) (*domain.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID() != requesterID {
		s.logger.Debug("rejected update of post by non-owner",
			"post_id", postID,
			"requester_id", requesterID)
		return nil, ErrNotAllowed
	}

	title, err := escapedTitle(cmd.Title)
	if err != nil {
		return nil, err
	}
	content := domain.NewContent(html.EscapeString(cmd.Content))

	post.Update(title, content)
	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("failed to update post",
			"error", err,
			"post_id", postID)
		return nil, unexpectedError(err)
	}

	s.logger.Info("post updated", "post_id", postID)
	return post, nil
}

// DeletePost implements PostService.
func (s *postService) DeletePost(ctx context.Context, postID, requesterID domain.ID) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID() != requesterID {
		s.logger.Debug("rejected delete of post by non-owner",
			"post_id", postID,
			"requester_id", requesterID)
		return ErrNotAllowed
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("failed to delete post",
			"error", err,
			"post_id", postID)
		return unexpectedError(err)
	}

	s.logger.Info("post deleted", "post_id", postID)
	return nil
}

// GetPost implements PostService.
func (s *postService) GetPost(ctx context.Context, postID domain.ID) (*domain.Post, error) {
	return s.getPost(ctx, postID)
}

// ListPosts implements PostService. The page and the total count are read
// in one transaction so they come from the same snapshot.
func (s *postService) ListPosts(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	var (
		posts []*domain.Post
		total int
	)
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		posts, total, err = s.posts.WithTx(tx).List(ctx, limit, offset)
		return err
	})
	if err != nil {
		s.logger.Error("failed to list posts",
			"error", err,
			"limit", limit,
			"offset", offset)
		return nil, 0, unexpectedError(err)
	}
	return posts, total, nil
}

func (s *postService) getPost(ctx context.Context, postID domain.ID) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("failed to load post",
			"error", err,
			"post_id", postID)
		return nil, unexpectedError(err)
	}
	return post, nil
}
