package charref

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)
	if !TracingEnabled {
		require.Same(t, nullLogger, tlog)
		return
	}

	tlog.Debug("test message")

	output := buf.String()
	require.Contains(t, output, "test message")
	require.Contains(t, output, `"fn":"github.com/lestrrat-go/charref.TestWithTraceLogger"`)
}

func TestTraceLoggerDefault(t *testing.T) {
	tlog := getTraceLogFromContext(context.Background())
	require.Same(t, nullLogger, tlog, "a context without a logger yields the null logger")
	require.False(t, tlog.Enabled(context.Background(), slog.LevelError))
}
