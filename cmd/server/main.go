// Package main implements the entry point for the blog API server.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkovac/blogd/internal/config"
	"github.com/mkovac/blogd/internal/platform/logger"
	"github.com/mkovac/blogd/internal/platform/postgres"
	"github.com/mkovac/blogd/internal/service"
	"github.com/mkovac/blogd/internal/service/auth"
)

const (
	dbPingTimeout   = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logg.Error("failed to close database", "error", err)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, dbPingTimeout)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logg.Info("database ready")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	userRepo := postgres.NewUserRepository(db, logg)
	postRepo := postgres.NewPostRepository(db, logg)
	hasher := auth.NewBcryptHasher(0)

	userService := service.NewUserService(userRepo, hasher, db, logg)
	postService := service.NewPostService(postRepo, db, logg)

	router := newRouter(routerDeps{
		userService: userService,
		postService: postService,
		jwtService:  jwtService,
		logger:      logg,
	})

	return serve(ctx, cfg, router, logg.With("component", "http_server"))
}

// serve runs the HTTP server until the context is canceled or an interrupt
// signal arrives, then shuts down gracefully.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler, logg *slog.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logg.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		logg.Info("shutdown signal received")
	case <-serverCtx.Done():
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	default:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logg.Info("server shutdown completed")
	return nil
}
