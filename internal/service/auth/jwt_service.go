package auth

import (
	"context"
	"time"

	"github.com/mkovac/blogd/internal/domain"
)

// JWTService defines the token issuance and decoding capability. The
// application core never parses tokens itself; the transport extracts a
// bearer string, asks this service for the subject, and passes the
// resulting identifier into the handlers that need one.
type JWTService interface {
	// GenerateToken creates a signed bearer token for the given user.
	GenerateToken(ctx context.Context, userID domain.ID) (string, error)

	// ValidateToken validates the token string and extracts its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure; expiry
	// enforcement lives here, not in the callers.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded token content exposed to callers.
type Claims struct {
	// UserID is the subject the token was issued for.
	UserID domain.ID

	// Standard registered claims.
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
