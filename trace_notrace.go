//go:build notrace

package charref

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

const TracingEnabled = false

var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger adds a trace logger to the context - no-op version
func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

// getTraceLogFromContext returns the null logger - no-op version
func getTraceLogFromContext(_ context.Context) *slog.Logger {
	return nullLogger
}
