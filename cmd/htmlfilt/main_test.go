package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin io.Reader, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := _main(context.Background(), args, stdin, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestStdinToStdout(t *testing.T) {
	r := run(t, strings.NewReader("Tom &amp; Jerry &#x2764;"))
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "Tom & Jerry \u2764", r.stdout)
	require.Empty(t, r.stderr)

	r = run(t, strings.NewReader("&lt;p&gt;"), "-", "-")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "<p>", r.stdout)
}

func TestHelpAndVersion(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		r := run(t, strings.NewReader(""), arg)
		require.Equal(t, exitOK, r.code)
		require.Contains(t, r.stdout, "Usage : htmlfilt")
		require.Empty(t, r.stderr)
	}

	r := run(t, strings.NewReader(""), "--version")
	require.Equal(t, exitOK, r.code)
	require.Contains(t, r.stdout, "htmlfilt: using charref version v")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.html", "&copy; 2024 &mdash; &bogus;")
	expected := "\u00a9 2024 \u2014 &bogus;"

	t.Run("positional", func(t *testing.T) {
		out := filepath.Join(dir, "positional.txt")
		r := run(t, nil, in, out)
		require.Equal(t, exitOK, r.code, r.stderr)
		require.Empty(t, r.stdout)

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, expected, string(got))
	})

	t.Run("flags", func(t *testing.T) {
		out := filepath.Join(dir, "flags.txt")
		r := run(t, nil, "-i", in, "--output", out)
		require.Equal(t, exitOK, r.code, r.stderr)

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, expected, string(got))
	})

	t.Run("input flag with positional output", func(t *testing.T) {
		out := filepath.Join(dir, "mixed.txt")
		r := run(t, nil, "-i", in, out)
		require.Equal(t, exitOK, r.code, r.stderr)

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, expected, string(got))
	})

	t.Run("output flag with positional input", func(t *testing.T) {
		out := filepath.Join(dir, "mixed-output.txt")
		r := run(t, nil, "-o", out, in)
		require.Equal(t, exitOK, r.code, r.stderr)

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, expected, string(got))
	})

	t.Run("output is truncated", func(t *testing.T) {
		out := writeFile(t, dir, "existing.txt", strings.Repeat("old content ", 100))
		r := run(t, nil, in, out)
		require.Equal(t, exitOK, r.code, r.stderr)

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, expected, string(got))
	})
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "x")

	data := map[string][]string{
		"too many parameters":    {"a", "b", "c"},
		"duplicate input":        {"-i", in, "-i", in},
		"duplicate output":       {"-o", "a", "-o", "b", in},
		"input flag and params":  {"-i", in, "a", "b"},
		"output flag and params": {"-o", "out", in, "out2"},
		"both flags and param":   {"-i", in, "-o", "out", "extra"},
		"unknown flag":           {"--bogus"},
		"bad table":              {"--table", "sgml", in},
		"unknown encoding":       {"--encoding", "ebcdic", in},
	}

	for name, args := range data {
		t.Run(name, func(t *testing.T) {
			r := run(t, strings.NewReader(""), args...)
			require.Equal(t, exitUsage, r.code)
			require.True(t, strings.HasPrefix(r.stderr, "htmlfilt: "), "stderr should start with the program name: %q", r.stderr)
			require.Contains(t, r.stderr, "Usage : htmlfilt")
			require.Empty(t, r.stdout)
		})
	}
}

func TestUnknownEncodingListsNames(t *testing.T) {
	r := run(t, strings.NewReader(""), "--encoding", "ebcdic")
	require.Equal(t, exitUsage, r.code)
	require.Contains(t, r.stderr, "known encodings: big5, cp437,")
	require.Contains(t, r.stderr, "utf-8")
}

func TestInputError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.html")
	r := run(t, nil, missing)
	require.Equal(t, exitInput, r.code)
	require.Equal(t, "htmlfilt: "+missing+": no such file or directory\n", r.stderr)
}

func TestOutputError(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "x")
	out := filepath.Join(dir, "no", "such", "dir", "out.txt")

	r := run(t, nil, in, out)
	require.Equal(t, exitOutput, r.code)
	require.Equal(t, "htmlfilt: "+out+": no such file or directory\n", r.stderr)
}

func TestDecodeError(t *testing.T) {
	r := run(t, iotest.ErrReader(errors.New("device gone")))
	require.Equal(t, exitDecode, r.code)
	require.Contains(t, r.stderr, "device gone")
}

func TestTable(t *testing.T) {
	r := run(t, strings.NewReader("&lt;&nbsp;&apos;"), "--table", "xml")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "<&nbsp;'", r.stdout)

	r = run(t, strings.NewReader("&lt;&nbsp;&apos;"), "--table", "html")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "<\u00a0'", r.stdout)
}

func TestStrictEOF(t *testing.T) {
	r := run(t, strings.NewReader("a &amp"))
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "a &", r.stdout)

	r = run(t, strings.NewReader("a &amp"), "--strict-eof")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "a &amp", r.stdout)

	r = run(t, strings.NewReader("a &amp; b &#65;"), "--strict-eof")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "a & b A", r.stdout, "terminated numeric references are closed before the end")

	r = run(t, strings.NewReader("a &amp;"), "--strict-eof")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "a &amp;", r.stdout, "a name is still open right after its ';'")
}

func TestEncoding(t *testing.T) {
	r := run(t, strings.NewReader("caf\xe9 &amp; cr\xe8me"), "--encoding", "latin1")
	require.Equal(t, exitOK, r.code, r.stderr)
	require.Equal(t, "caf\u00e9 & cr\u00e8me", r.stdout)
}

func TestListEntities(t *testing.T) {
	r := run(t, strings.NewReader(""), "--list-entities", "--table", "xml")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "lt;\t<\ngt;\t>\namp;\t&\napos;\t'\nquot;\t\"\n", r.stdout)

	r = run(t, strings.NewReader(""), "--list-entities")
	require.Equal(t, exitOK, r.code)
	require.True(t, strings.HasPrefix(r.stdout, "AElig\t\u00c6\nAElig;\t\u00c6\n"), "names are listed in table order")
	require.Contains(t, r.stdout, "\namp;\t&\n")
	require.Contains(t, r.stdout, "\nnot\t\u00ac\n")
	require.Contains(t, r.stdout, "\nNewLine;\t\n\n")
}

func TestVerbose(t *testing.T) {
	r := run(t, strings.NewReader("&amp; &#65; &bogus;"), "-v")
	require.Equal(t, exitOK, r.code)
	require.Equal(t, "& A &bogus;", r.stdout)
	require.Contains(t, r.stderr, `msg="decode finished"`)
	require.Contains(t, r.stderr, "named=1")
	require.Contains(t, r.stderr, "numeric=1")
	require.Contains(t, r.stderr, "abandoned=1")
}
