package charref

import (
	"context"
	"io"
	"log/slog"

	"github.com/lestrrat-go/charref/entity"
	"github.com/lestrrat-go/charref/internal/pool"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// NewDecoder creates a Decoder. Without options it recognizes the HTML5
// named references and decodes references left open at end of input.
func NewDecoder(options ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		index:     entity.HTML(),
		chunkSize: defaultChunkSize,
	}

	for _, option := range options {
		switch option.Ident() {
		case identIndex{}:
			d.index = option.Value().(*entity.Index)
		case identStrictEOF{}:
			d.strictEOF = option.Value().(bool)
		case identChunkSize{}:
			d.chunkSize = option.Value().(int)
		}
	}

	if d.index == nil {
		return nil, ErrNilIndex
	}
	if d.chunkSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidChunkSize, "got %d", d.chunkSize)
	}
	return d, nil
}

// Index returns the entity index the decoder matches names against.
func (d *Decoder) Index() *entity.Index {
	return d.index
}

func (d *Decoder) newSession() *session {
	return newSession(d.index, d.strictEOF)
}

// Decode reads src until EOF and writes the decoded stream to dst. Output
// is written once per chunk read, so dst sees data before src is
// exhausted. Cancelling ctx stops decoding between chunks.
func (d *Decoder) Decode(ctx context.Context, dst io.Writer, src io.Reader) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	tlog := getTraceLogFromContext(ctx)
	bs := pool.ByteSlice()
	in := bs.GetCapacity(d.chunkSize)[:d.chunkSize]
	out := bs.GetCapacity(d.chunkSize)
	defer func() {
		bs.Put(in)
		bs.Put(out)
	}()

	s := d.newSession()
	var nread, nwritten int64
	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "decode aborted")
		}

		n, rerr := src.Read(in)
		nread += int64(n)
		out = out[:0]
		for _, c := range in[:n] {
			out = s.feed(out, int(c))
		}
		if rerr == io.EOF {
			out = s.finish(out)
		}

		if len(out) > 0 {
			if _, err := dst.Write(out); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
			nwritten += int64(len(out))
		}

		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return errors.Wrap(rerr, "failed to read input")
		}
	}

	tlog.LogAttrs(ctx, slog.LevelDebug, "decode finished",
		slog.Int64("read", nread),
		slog.Int64("written", nwritten),
		slog.Int("named", s.stats.named),
		slog.Int("numeric", s.stats.numeric),
		slog.Int("invalid", s.stats.invalid),
		slog.Int("abandoned", s.stats.abandoned),
	)
	return nil
}

// DecodeBytes decodes b in one go.
func (d *Decoder) DecodeBytes(b []byte) []byte {
	s := d.newSession()
	out := make([]byte, 0, len(b))
	for _, c := range b {
		out = s.feed(out, int(c))
	}
	return s.finish(out)
}

// DecodeString decodes str in one go.
func (d *Decoder) DecodeString(str string) string {
	s := d.newSession()
	out := make([]byte, 0, len(str))
	for i := 0; i < len(str); i++ {
		out = s.feed(out, int(str[i]))
	}
	return string(s.finish(out))
}

// NewReader returns a reader that yields the decoded contents of r.
func (d *Decoder) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, d.Transformer())
}
