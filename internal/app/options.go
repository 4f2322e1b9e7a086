package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/cache"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cache  cache.BoardCache
	logger *slog.Logger
}

// WithCache sets the board cache shared by the services
func WithCache(c cache.BoardCache) Option {
	return func(cfg *appConfig) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
