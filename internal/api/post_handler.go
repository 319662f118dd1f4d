package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mkovac/blogd/internal/api/shared"
	"github.com/mkovac/blogd/internal/service"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PostHandler handles the post CRUD endpoints.
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a PostHandler with the given dependencies.
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		logger:      logger.With("component", "post_handler"),
	}
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := h.postService.CreatePost(r.Context(), userID, service.CreatePostCommand{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewPostResponse(post))
}

// Get handles GET /api/posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := requirePathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPostResponse(post))
}

// List handles GET /api/posts. Pagination comes from the limit and offset
// query parameters; malformed, negative and zero limits all fall back to
// the default page size.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	} else if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := queryInt(r, "offset", 0)

	posts, total, err := h.postService.ListPosts(r.Context(), limit, offset)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	items := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, NewPostResponse(post))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PostListResponse{
		Posts:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// Update handles PUT /api/posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	postID, ok := requirePathID(w, r, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), postID, userID, service.UpdatePostCommand{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPostResponse(post))
}

// Delete handles DELETE /api/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	postID, ok := requirePathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(r.Context(), postID, userID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
