package api

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys defined in this package.
type contextKey int

const traceIDKey contextKey = iota

// SetTraceID stores a freshly generated trace ID in the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceIDKey, uuid.NewString())
}

// GetTraceID returns the trace ID from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}
