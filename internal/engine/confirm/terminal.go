package confirm

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ttyPath is the controlling terminal on Unix-like systems.
var ttyPath = "/dev/tty"

// TerminalInput returns an InputOpener for stdin. When stdin is not a terminal,
// as is usual when git runs a hook, the controlling terminal is opened instead
// so the user can still answer. If that fails, stdin is used as is.
func TerminalInput(stdin *os.File) InputOpener {
	return func() (io.ReadCloser, error) {
		if term.IsTerminal(int(stdin.Fd())) { // #nosec G115 -- file descriptors fit in int
			return io.NopCloser(stdin), nil
		}
		if tty, err := os.Open(ttyPath); err == nil {
			return tty, nil
		}
		return io.NopCloser(stdin), nil
	}
}

// ReaderInput returns an InputOpener over a fixed reader, for scripted answers.
func ReaderInput(r io.Reader) InputOpener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}
}
