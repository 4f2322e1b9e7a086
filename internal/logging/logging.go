package logging

import (
	"io"
	"log"
	"log/slog"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init installs a text handler writing to w as the default logger.
// Debug lowers the level from info to debug.
func Init(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same writer
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return Logger
}
