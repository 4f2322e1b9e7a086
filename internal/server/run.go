package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
)

// Run opens the application for cfg and serves it until ctx is cancelled
func Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close application", "error", err)
		}
	}()

	srv, err := NewServer(ctx, application, cfg)
	if err != nil {
		return err
	}

	slog.Info("kanban server starting", "addr", srv.Addr().String(), "pid", os.Getpid(), "debug", cfg.Debug)
	if err := srv.Start(ctx); err != nil {
		return err
	}
	slog.Info("kanban server stopped")
	return nil
}
