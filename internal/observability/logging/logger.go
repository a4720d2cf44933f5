// Package logging provides structured logging setup on top of log/slog.
// All packages log through slog with structured attributes; this package
// only decides handler, level, and run-scoped fields.
package logging

import (
	"context"
	"log/slog"
	"os"

	"wikicorpus/internal/runid"
)

// NewLogger creates a JSON logger for production runs. The level is
// controlled by the LOG_LEVEL environment variable (debug enables debug
// logging, anything else means info).
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// NewTextLogger creates a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// WithRunID returns a logger carrying the harvest run ID from the
// context, so every log line of one run can be correlated.
func WithRunID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := runid.FromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With("run_id", id)
}
