//go:build !notrace

package charref

import (
	"context"
	"log/slog"
	"runtime"
)

type traceLoggerKey struct{}

// TracingEnabled is false when built with -tags notrace.
const TracingEnabled = true

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger attaches tlog to ctx. Decode reports what it did to the
// logger found in its context at debug level.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Tag records with the function that asked for the logger
		pc, _, _, ok := runtime.Caller(1)
		if ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}
		return tlog
	}
	return nullLogger
}
