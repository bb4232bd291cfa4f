// Package logging provides slog setup for the CLI. Logs go to stderr
// so data output on stdout stays pipeable.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// FromEnv creates a logger with the level taken from ATL_LOG_LEVEL
// (debug, info, warn, error; default info).
func FromEnv(w io.Writer) *slog.Logger {
	return New(w, ParseLevel(os.Getenv("ATL_LOG_LEVEL")))
}
