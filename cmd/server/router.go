package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mkovac/blogd/internal/api"
	apimiddleware "github.com/mkovac/blogd/internal/api/middleware"
	"github.com/mkovac/blogd/internal/service"
	"github.com/mkovac/blogd/internal/service/auth"
)

type routerDeps struct {
	userService service.UserService
	postService service.PostService
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// newRouter wires all routes and middleware. Post reads are public; post
// writes require a bearer token.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(deps.userService, deps.jwtService, deps.logger)
	postHandler := api.NewPostHandler(deps.postService, deps.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(deps.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/posts", postHandler.List)
		r.Get("/posts/{id}", postHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/posts", postHandler.Create)
			r.Put("/posts/{id}", postHandler.Update)
			r.Delete("/posts/{id}", postHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
