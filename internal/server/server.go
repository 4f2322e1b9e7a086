package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
)

// Server serves the kanban HTTP API
type Server struct {
	app             *app.App
	listener        net.Listener
	httpServer      *http.Server
	metrics         *Metrics
	debug           bool
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error
}

// New builds a Server without binding a listener. Use Handler to serve it
// from tests or another mux.
func New(application *app.App, cfg *config.Config) *Server {
	s := &Server{
		app:             application,
		metrics:         NewMetrics(),
		debug:           cfg.Debug,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	s.httpServer = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// NewServer creates a server listening on the configured address
func NewServer(ctx context.Context, application *app.App, cfg *config.Config) (*Server, error) {
	s := New(application, cfg)

	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}
	s.listener = listener
	return s, nil
}

// Handler returns the full middleware-wrapped router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Metrics returns the live request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Addr returns the address the server listens on
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start serves requests until ctx is cancelled or the listener fails,
// then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server has no listener")
	}
	slog.Info("server starting", "addr", s.listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		slog.Info("server context cancelled, shutting down")
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		} else {
			slog.Error("serve error", "error", err)
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the shutdown timeout. Safe to call more than once.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		slog.Info("shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("failed to shut down server: %w", err)
		}
	})
	return s.shutdownErr
}
