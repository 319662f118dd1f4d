package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkovac/blogd/internal/api/middleware"
	"github.com/mkovac/blogd/internal/api/shared"
	"github.com/mkovac/blogd/internal/domain"
)

// requireUserID extracts the authenticated user's ID from the request
// context and writes a 401 response if it is missing.
func requireUserID(w http.ResponseWriter, r *http.Request) (domain.ID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return domain.ID{}, false
	}
	return userID, true
}

// requirePathID extracts an entity ID from the named URL path parameter and
// writes a 400 response if it is missing or malformed.
func requirePathID(w http.ResponseWriter, r *http.Request, paramName string) (domain.ID, bool) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing "+paramName+" path parameter")
		return domain.ID{}, false
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+paramName+" format")
		return domain.ID{}, false
	}
	return id, true
}
