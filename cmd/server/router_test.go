package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovac/blogd/internal/domain"
	"github.com/mkovac/blogd/internal/service"
	"github.com/mkovac/blogd/internal/service/auth"
)

type stubUserService struct{}

func (stubUserService) RegisterUser(_ context.Context, _ service.RegisterUserCommand) (*domain.User, error) {
	return nil, service.ErrInvalidUser
}

func (stubUserService) VerifyUser(_ context.Context, _ service.VerifyUserCommand) (*domain.User, error) {
	return nil, service.ErrInvalidUserNameOrPassword
}

type stubPostService struct{}

func (stubPostService) CreatePost(_ context.Context, _ domain.ID, _ service.CreatePostCommand) (*domain.Post, error) {
	return nil, service.ErrUnexpected
}

func (stubPostService) UpdatePost(_ context.Context, _, _ domain.ID, _ service.UpdatePostCommand) (*domain.Post, error) {
	return nil, service.ErrUnexpected
}

func (stubPostService) DeletePost(_ context.Context, _, _ domain.ID) error {
	return service.ErrUnexpected
}

func (stubPostService) GetPost(_ context.Context, _ domain.ID) (*domain.Post, error) {
	return nil, service.ErrPostNotFound
}

func (stubPostService) ListPosts(_ context.Context, _, _ int) ([]*domain.Post, int, error) {
	return nil, 0, nil
}

type stubJWTService struct{}

func (stubJWTService) GenerateToken(_ context.Context, _ domain.ID) (string, error) {
	return "token", nil
}

func (stubJWTService) ValidateToken(_ context.Context, _ string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

func newTestRouter() http.Handler {
	return newRouter(routerDeps{
		userService: stubUserService{},
		postService: stubPostService{},
		jwtService:  stubJWTService{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestRouterHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestRouterPublicRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "list posts", method: http.MethodGet, target: "/api/posts", want: http.StatusOK},
		{name: "get post", method: http.MethodGet, target: "/api/posts/" + domain.NewID().String(), want: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, target: "/api/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestRouterWritesRequireAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "create", method: http.MethodPost, target: "/api/posts"},
		{name: "update", method: http.MethodPut, target: "/api/posts/" + domain.NewID().String()},
		{name: "delete", method: http.MethodDelete, target: "/api/posts/" + domain.NewID().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
