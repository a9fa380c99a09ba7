package charref_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/lestrrat-go/charref"
	"github.com/stretchr/testify/require"
)

const sampleInput = "Fish &amp; Chips &#8212; &pound;5&#x2e;00 &copy 2024 &bogus; &#x110000; & end &#65"
const sampleOutput = "Fish & Chips \u2014 \u00a35.00 \u00a9 2024 &bogus; \ufffd & end A"

func TestDecode(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 64, 32 * 1024} {
		t.Run(fmt.Sprintf("chunk size %d", size), func(t *testing.T) {
			d, err := charref.NewDecoder(charref.WithChunkSize(size))
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, d.Decode(context.Background(), &out, strings.NewReader(sampleInput)))
			require.Equal(t, sampleOutput, out.String())
		})
	}
}

func TestDecodeReaders(t *testing.T) {
	readers := map[string]func(io.Reader) io.Reader{
		"one byte":   iotest.OneByteReader,
		"half":       iotest.HalfReader,
		"data error": iotest.DataErrReader,
	}
	for name, wrap := range readers {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, charref.Decode(context.Background(), &out, wrap(strings.NewReader(sampleInput))))
			require.Equal(t, sampleOutput, out.String())
		})
	}
}

func TestDecodeReadError(t *testing.T) {
	boom := errors.New("boom")
	src := io.MultiReader(strings.NewReader("&amp; ok "), iotest.ErrReader(boom))

	var out bytes.Buffer
	err := charref.Decode(context.Background(), &out, src)
	require.ErrorIs(t, err, boom)
	require.Equal(t, "& ok ", out.String(), "output decoded before the error should be written")
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestDecodeWriteError(t *testing.T) {
	boom := errors.New("disk full")
	err := charref.Decode(context.Background(), failWriter{err: boom}, strings.NewReader("x"))
	require.ErrorIs(t, err, boom)
}

func TestDecodeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := charref.Decode(ctx, &out, strings.NewReader(sampleInput))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestDecodeTraceLogger(t *testing.T) {
	if !charref.TracingEnabled {
		t.Skip("Tracing disabled - skipping trace logger test")
		return
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := charref.WithTraceLogger(context.Background(), logger)

	var out bytes.Buffer
	require.NoError(t, charref.Decode(ctx, &out, strings.NewReader(sampleInput)))

	logs := buf.String()
	require.Contains(t, logs, `"msg":"decode finished"`)
	require.Contains(t, logs, `"named":3`)
	require.Contains(t, logs, `"numeric":4`)
	require.Contains(t, logs, `"invalid":1`)
	require.Contains(t, logs, `"abandoned":2`)
	require.Contains(t, logs, fmt.Sprintf(`"read":%d`, len(sampleInput)))
	require.Contains(t, logs, fmt.Sprintf(`"written":%d`, len(sampleOutput)))
}

func TestWithTraceLoggerKeepsFirst(t *testing.T) {
	if !charref.TracingEnabled {
		t.Skip("Tracing disabled - skipping trace logger test")
		return
	}

	var first, second bytes.Buffer
	ctx := charref.WithTraceLogger(context.Background(), slog.New(slog.NewTextHandler(&first, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx = charref.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(&second, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, charref.Decode(ctx, io.Discard, strings.NewReader("&amp;")))
	require.Contains(t, first.String(), "decode finished")
	require.Empty(t, second.String(), "an existing trace logger is not replaced")
}

func TestDecodeConcurrent(t *testing.T) {
	d, err := charref.NewDecoder(charref.WithChunkSize(5))
	require.NoError(t, err)

	const n = 32
	results := make([]string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			var out bytes.Buffer
			if err := d.Decode(context.Background(), &out, iotest.OneByteReader(strings.NewReader(sampleInput))); err != nil {
				results[i] = err.Error()
				return
			}
			results[i] = out.String()
		}()
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, sampleOutput, got, "stream %d", i)
	}
}
