package util

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when the display width cannot be determined
const DefaultWidth = 80

// Terminal abstracts the terminal queries needed to find the display width
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal queries the real terminal through golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// Width returns the width of the terminal attached to fd. When fd is not a terminal
// the COLUMNS environment variable is consulted, then DefaultWidth is returned.
func Width(t Terminal, fd int) int {
	if t.IsTerminal(fd) {
		if w, _, err := t.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}

	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		return cols
	}

	return DefaultWidth
}

// TerminalWidth returns the width of the terminal attached to stdout
func TerminalWidth() int {
	return Width(DefaultTerminal{}, int(os.Stdout.Fd()))
}
