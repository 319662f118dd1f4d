package api

import (
	"log/slog"
	"net/http"

	"github.com/mkovac/blogd/internal/api/shared"
	"github.com/mkovac/blogd/internal/service"
	"github.com/mkovac/blogd/internal/service/auth"
)

// AuthHandler handles the registration and login endpoints.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.RegisterUser(r.Context(), service.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID())
	if err != nil {
		h.logger.Error("failed to generate token",
			"error", err,
			"user_id", user.ID())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID: user.ID(),
		Token:  token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.VerifyUser(r.Context(), service.VerifyUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID())
	if err != nil {
		h.logger.Error("failed to generate token",
			"error", err,
			"user_id", user.ID())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: user.ID(),
		Token:  token,
	})
}
