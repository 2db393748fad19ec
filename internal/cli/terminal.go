package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY. Colors are only used on terminals.
var isTerminal = defaultIsTerminal

func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
