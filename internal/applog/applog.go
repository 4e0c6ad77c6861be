// Package applog wires up structured logging via log/slog, grounded on
// pkg/logger from the distributed-search reference repo but trimmed to
// what a single-process indexer/CLI pair needs: no request-scoped
// context propagation, just a process-wide default logger and
// component-scoped children.
package applog

import (
	"log/slog"
	"os"
)

// Setup installs a slog handler as the process default. format "json"
// selects slog.JSONHandler; anything else (including "") selects the
// text handler.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithComponent returns a child of the default logger tagged with
// component, e.g. applog.WithComponent("indexer").
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
