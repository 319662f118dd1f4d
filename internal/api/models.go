package api

import (
	"time"

	"github.com/mkovac/blogd/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// The bounds mirror the domain rules so obviously bad input is rejected
// before it reaches the service.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5,max=20"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID domain.ID `json:"user_id"`
	Token  string    `json:"token"`
}

// PostRequest defines the payload for creating or updating a post.
type PostRequest struct {
	Title   string `json:"title"   validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// PostResponse defines a single post as returned by the API.
type PostResponse struct {
	ID        domain.ID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  domain.ID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPostResponse converts a domain post into its API representation.
func NewPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID(),
		Title:     post.Title().String(),
		Content:   post.Content().String(),
		AuthorID:  post.AuthorID(),
		CreatedAt: post.CreatedAt(),
		UpdatedAt: post.UpdatedAt(),
	}
}

// PostListResponse defines one page of posts plus the total count.
type PostListResponse struct {
	Posts  []PostResponse `json:"posts"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
