package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/cache"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store  *database.Store
	cache  cache.BoardCache
	logger *slog.Logger

	// Service layer (business logic)
	BoardService boardservice.Service
	TaskService  taskservice.Service
}

// New creates a new App with all services sharing one store and cache
func New(store *database.Store, opts ...Option) *App {
	cfg := &appConfig{
		cache:  cache.Nop{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		store:        store,
		cache:        cfg.cache,
		logger:       cfg.logger,
		BoardService: boardservice.NewService(store, cfg.cache),
		TaskService:  taskservice.NewService(store, cfg.cache),
	}
}

// Open connects to the configured database, connects the redis board cache
// when a redis URL is set, and builds the App around them
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.Open(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := database.NewStore(db)

	if cfg.RedisURL != "" {
		boardCache, err := cache.Connect(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to connect board cache: %w", err)
		}
		opts = append([]Option{WithCache(boardCache)}, opts...)
	}

	return New(store, opts...), nil
}

// Store returns the underlying store
func (a *App) Store() *database.Store {
	return a.store
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Ping reports whether the store is reachable
func (a *App) Ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// Close releases the cache connection and the database pool
func (a *App) Close() error {
	var errs []error
	if closer, ok := a.cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close cache: %w", err))
		}
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close store: %w", err))
	}
	return errors.Join(errs...)
}
