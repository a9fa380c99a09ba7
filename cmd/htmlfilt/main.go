package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/charref"
	"github.com/lestrrat-go/charref/encoding"
	"github.com/lestrrat-go/charref/entity"
	"github.com/lestrrat-go/charref/internal/cliutil"
	"github.com/pkg/errors"
)

const progname = "htmlfilt"

const (
	exitOK = iota
	exitInput
	exitOutput
	exitUsage
	exitDecode
)

type cmdopts struct {
	Input     []string `short:"i" long:"input" value-name:"FILE"`
	Output    []string `short:"o" long:"output" value-name:"FILE"`
	Help      bool     `short:"h" long:"help"`
	Table     string   `long:"table" choice:"html" choice:"xml" default:"html"`
	Encoding  string   `long:"encoding" value-name:"NAME"`
	StrictEOF bool     `long:"strict-eof"`
	List      bool     `long:"list-entities"`
	Verbose   bool     `short:"v" long:"verbose"`
	Version   bool     `long:"version"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := _main(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "%s: using charref version %s\n", progname, charref.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : %[1]s [options] [infile [outfile]]
	Decode HTML/XML character references into UTF-8 text.
	Everything that is not a recognized reference is copied as is.
	Positional files fill in whichever of -i and -o was not given.

	-i, --input FILE   : read FILE instead of standard input
	-o, --output FILE  : write FILE instead of standard output
	--table html|xml   : named references to recognize (default: html)
	--encoding NAME    : convert input from charset NAME to UTF-8 first
	--strict-eof       : copy a reference still open at end of input as is;
	                     names never end at ';', so a final "&amp;" stays "&amp;"
	--list-entities    : print every known name and its replacement
	-v, --verbose      : log what was decoded to standard error
	--version          : display the version of the library used
	-h, --help         : show this message
`, progname)
}

func usageError(stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "%s: %s\n\n", progname, msg)
	showUsage(stderr)
	return exitUsage
}

// reason strips the operation and path from file errors, leaving only
// what the operating system said.
func reason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

func newLogger(out io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

func _main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 && cliutil.IsInteractive(stdin) {
		showUsage(stdout)
		return exitOK
	}

	var opts cmdopts
	p := flags.NewParser(&opts, flags.PassDoubleDash)
	p.Name = progname
	args, err := p.ParseArgs(args)
	if err != nil {
		return usageError(stderr, err.Error())
	}

	if opts.Help {
		showUsage(stdout)
		return exitOK
	}

	if opts.Version {
		showVersion(stdout)
		return exitOK
	}

	switch {
	case len(args) > 2:
		return usageError(stderr, "too many parameters")
	case len(opts.Input) > 1:
		return usageError(stderr, "input file specified more than once")
	case len(opts.Output) > 1:
		return usageError(stderr, "output file specified more than once")
	}

	var infile, outfile string
	if len(opts.Input) == 1 {
		infile = opts.Input[0]
	}
	if len(opts.Output) == 1 {
		outfile = opts.Output[0]
	}

	// positional parameters fill whatever -i and -o left open, input first
	for _, arg := range args {
		switch {
		case infile == "":
			infile = arg
		case outfile == "":
			outfile = arg
		case len(opts.Input) == 1:
			return usageError(stderr, "input file specified more than once")
		default:
			return usageError(stderr, "output file specified more than once")
		}
	}

	idx := entity.HTML()
	if opts.Table == "xml" {
		idx = entity.XML()
	}

	if opts.Verbose {
		ctx = charref.WithTraceLogger(ctx, newLogger(stderr))
	}

	var in io.Reader = stdin
	if infile != "" && infile != "-" {
		fh, err := os.Open(infile)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s: %s\n", progname, infile, reason(err))
			return exitInput
		}
		defer func() { _ = fh.Close() }()
		in = fh
	}

	if opts.Encoding != "" {
		r, err := encoding.NewReader(opts.Encoding, in)
		if err != nil {
			return usageError(stderr, fmt.Sprintf("%s (known encodings: %s)", err, strings.Join(encoding.Names(), ", ")))
		}
		in = r
	}

	var out io.Writer = stdout
	var outfh *os.File
	if outfile != "" && outfile != "-" {
		fh, err := os.Create(outfile)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s: %s\n", progname, outfile, reason(err))
			return exitOutput
		}
		defer func() { _ = fh.Close() }()
		outfh = fh
		out = fh
	}

	w := bufio.NewWriter(out)
	if opts.List {
		for name, value := range idx.All() {
			fmt.Fprintf(w, "%s\t%s\n", name, value)
		}
	} else {
		d, err := charref.NewDecoder(charref.WithIndex(idx), charref.WithStrictEOF(opts.StrictEOF))
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", progname, err)
			return exitDecode
		}
		if err := d.Decode(ctx, w, in); err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", progname, err)
			return exitDecode
		}
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", progname, err)
		return exitDecode
	}
	if outfh != nil {
		if err := outfh.Close(); err != nil {
			fmt.Fprintf(stderr, "%s: %s: %s\n", progname, outfile, reason(err))
			return exitOutput
		}
	}
	return exitOK
}
