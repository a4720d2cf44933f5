// Package runid tags a harvest run with a unique identifier so logs and
// outputs from one run can be correlated.
package runid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const runIDKey contextKey = "run_id"

// New generates a fresh run ID (UUID v4).
func New() string {
	return uuid.New().String()
}

// NewContext returns a context carrying a freshly generated run ID.
func NewContext(ctx context.Context) context.Context {
	return WithRunID(ctx, New())
}

// WithRunID returns a context carrying the given run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// FromContext retrieves the run ID from the context, or "" when absent.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}
