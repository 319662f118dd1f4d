package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/mkovac/blogd/internal/config"
)

func TestSetupLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		log := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		if log == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	if got := FromContext(ctx); got != slog.Default() {
		t.Error("expected default logger for empty context")
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = WithContext(ctx, log)
	if got := FromContext(ctx); got != log {
		t.Error("expected logger stored in context")
	}
}
