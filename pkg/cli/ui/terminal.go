// Package ui holds terminal helpers shared by the interactive commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SetTerminalTitle writes the OSC 0 sequence that sets the window title.
func SetTerminalTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "\033]0;%s\007", title)
}

// IsTerminal reports whether r is attached to a terminal.
func IsTerminal(r any) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// IsInteractive reports whether both in and out are terminals.
func IsInteractive(in, out any) bool {
	return IsTerminal(in) && IsTerminal(out)
}
