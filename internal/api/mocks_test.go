package api

import (
	"context"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/service"
	"github.com/mkovac/blogd/internal/service/auth"
)

// stubUserService returns canned results for both commands.
type stubUserService struct {
	user *domain.User
	err  error
}

var _ service.UserService = (*stubUserService)(nil)

func (s *stubUserService) RegisterUser(_ context.Context, _ service.RegisterUserCommand) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) VerifyUser(_ context.Context, _ service.VerifyUserCommand) (*domain.User, error) {
	return s.user, s.err
}

// stubPostService delegates to per-method function fields so each test can
// observe arguments and inject results.
type stubPostService struct {
	createFn func(ctx context.Context, authorID domain.ID, cmd service.CreatePostCommand) (*domain.Post, error)
	updateFn func(ctx context.Context, postID, requesterID domain.ID, cmd service.UpdatePostCommand) (*domain.Post, error)
	deleteFn func(ctx context.Context, postID, requesterID domain.ID) error
	getFn    func(ctx context.Context, postID domain.ID) (*domain.Post, error)
	listFn   func(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)
}

var _ service.PostService = (*stubPostService)(nil)

func (s *stubPostService) CreatePost(ctx context.Context, authorID domain.ID, cmd service.CreatePostCommand) (*domain.Post, error) {
	return s.createFn(ctx, authorID, cmd)
}

func (s *stubPostService) UpdatePost(ctx context.Context, postID, requesterID domain.ID, cmd service.UpdatePostCommand) (*domain.Post, error) {
	return s.updateFn(ctx, postID, requesterID, cmd)
}

func (s *stubPostService) DeletePost(ctx context.Context, postID, requesterID domain.ID) error {
	return s.deleteFn(ctx, postID, requesterID)
}

func (s *stubPostService) GetPost(ctx context.Context, postID domain.ID) (*domain.Post, error) {
	return s.getFn(ctx, postID)
}

func (s *stubPostService) ListPosts(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	return s.listFn(ctx, limit, offset)
}

// stubJWTService returns a fixed token and claims.
type stubJWTService struct {
	token       string
	generateErr error
	claims      *auth.Claims
	validateErr error
}

var _ auth.JWTService = (*stubJWTService)(nil)

func (s *stubJWTService) GenerateToken(_ context.Context, _ domain.ID) (string, error) {
	return s.token, s.generateErr
}

func (s *stubJWTService) ValidateToken(_ context.Context, _ string) (*auth.Claims, error) {
	return s.claims, s.validateErr
}
