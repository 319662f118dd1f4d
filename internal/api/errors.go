package api

import (
	"errors"
	"net/http"

	"github.com/mkovac/blogd/internal/api/shared"
	"github.com/mkovac/blogd/internal/service"
	"github.com/mkovac/blogd/internal/service/auth"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Unknown
// errors map to 500 so internal failures never leak a misleading status.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidUser),
		errors.Is(err, service.ErrInvalidTitle):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidUserNameOrPassword),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotAllowed):
		return http.StatusForbidden

	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrUsernameOrEmailExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given service error. Raw error strings never reach the client.
func GetSafeErrorMessage(err error) string {
	switch {
	// Validation reasons are produced by the domain and safe to show.
	case errors.Is(err, service.ErrInvalidUser),
		errors.Is(err, service.ErrInvalidTitle):
		return err.Error()

	case errors.Is(err, service.ErrInvalidUserNameOrPassword),
		errors.Is(err, service.ErrUserNotFound):
		return "Invalid username or password"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"

	case errors.Is(err, service.ErrNotAllowed):
		return "You do not own this post"

	case errors.Is(err, service.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, service.ErrUsernameOrEmailExists):
		return "Username or email already exists"

	default:
		return "An unexpected error occurred"
	}
}

// respondWithServiceError maps a service error to a status and safe
// message and writes the JSON error response.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
