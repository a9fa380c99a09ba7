// Package cliutil holds small helpers shared by the commands.
package cliutil

import (
	"io"
	"os"

	"golang.org/x/term"
)

func isTty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsInteractive reports whether r is a terminal. Anything that is not an
// *os.File, such as a pipe set up by a test, is not.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isTty(f.Fd())
}
