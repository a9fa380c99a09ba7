package cliutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/charref/internal/cliutil"
	"github.com/stretchr/testify/require"
)

func TestIsInteractive(t *testing.T) {
	require.False(t, cliutil.IsInteractive(strings.NewReader("x")), "non-files are never terminals")

	fn := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(fn, []byte("x"), 0600))
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.False(t, cliutil.IsInteractive(f), "regular files are not terminals")
}
