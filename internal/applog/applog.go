// Package applog configures the process-wide structured logger.
package applog

import (
	"io"
	"log/slog"
)

var level = new(slog.LevelVar)

// Init installs a text handler on w as the default slog logger.
// Debug output is enabled when debug is true.
func Init(w io.Writer, debug bool) *slog.Logger {
	SetDebug(debug)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// SetDebug switches the default logger between info and debug level
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// SetLevel sets the minimum level of the default logger
func SetLevel(l slog.Level) {
	level.Set(l)
}

// WithComponent returns the default logger tagged with a component name
func WithComponent(name string) *slog.Logger {
	return slog.Default().With(slog.String("component", name))
}
