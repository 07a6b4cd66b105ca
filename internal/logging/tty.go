package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is satisfied by *os.File and anything else exposing a file
// descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is backed by a terminal. Buffers and pipes
// without a file descriptor count as non-TTY.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether it is safe to emit ANSI color codes on w.
// NO_COLOR (https://no-color.org) and TERM=dumb win over TTY detection.
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

func supportsColor(w io.Writer, isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
