package charref_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lestrrat-go/charref"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestTransformerString(t *testing.T) {
	d, err := charref.NewDecoder()
	require.NoError(t, err)

	got, n, err := transform.String(d.Transformer(), sampleInput)
	require.NoError(t, err)
	require.Equal(t, len(sampleInput), n)
	require.Equal(t, sampleOutput, got)
}

func TestTransformerSplitInput(t *testing.T) {
	d, err := charref.NewDecoder()
	require.NoError(t, err)

	// every split point must give the same result as a single call
	for i := 0; i <= len(sampleInput); i++ {
		tr := d.Transformer()
		dst := make([]byte, 4*len(sampleInput))

		n1, s1, err := tr.Transform(dst, []byte(sampleInput[:i]), false)
		require.NoError(t, err, "split at %d", i)
		require.Equal(t, i, s1, "split at %d", i)

		n2, s2, err := tr.Transform(dst[n1:], []byte(sampleInput[i:]), true)
		require.NoError(t, err, "split at %d", i)
		require.Equal(t, len(sampleInput)-i, s2, "split at %d", i)
		require.Equal(t, sampleOutput, string(dst[:n1+n2]), "split at %d", i)
	}
}

func TestTransformerShortDst(t *testing.T) {
	d, err := charref.NewDecoder()
	require.NoError(t, err)

	// a one byte dst forces multibyte replacements to be parked
	tr := d.Transformer()
	src := []byte(sampleInput)
	dst := make([]byte, 1)
	var out bytes.Buffer
	for {
		nDst, nSrc, err := tr.Transform(dst, src, true)
		out.Write(dst[:nDst])
		src = src[nSrc:]
		if err == nil {
			break
		}
		require.ErrorIs(t, err, transform.ErrShortDst)
	}
	require.Empty(t, src)
	require.Equal(t, sampleOutput, out.String())
}

func TestTransformerReset(t *testing.T) {
	d, err := charref.NewDecoder()
	require.NoError(t, err)

	tr := d.Transformer()
	dst := make([]byte, 64)
	_, _, err = tr.Transform(dst, []byte("&am"), false)
	require.NoError(t, err)

	tr.Reset()
	n, _, err := tr.Transform(dst, []byte("p;"), true)
	require.NoError(t, err)
	require.Equal(t, "p;", string(dst[:n]), "Reset drops the open reference")
}

func TestNewReader(t *testing.T) {
	d, err := charref.NewDecoder()
	require.NoError(t, err)

	r := d.NewReader(iotest.OneByteReader(strings.NewReader(sampleInput)))
	got, err := io.ReadAll(iotest.OneByteReader(r))
	require.NoError(t, err)
	require.Equal(t, sampleOutput, string(got))

	require.NoError(t, iotest.TestReader(d.NewReader(strings.NewReader(sampleInput)), []byte(sampleOutput)))
}
