package terminal

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// IsTerminal reports whether stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Wrap breaks msg into lines no wider than width display columns. Existing line breaks and the
// leading indentation of each line are kept; runs of spaces collapse to one. Words wider than the
// line are split.
func Wrap(msg string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}
	var out []string
	for _, line := range strings.Split(msg, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		words := strings.Fields(trimmed)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		avail := max(1, width-len(indent))
		for _, l := range strings.Split(text.WrapSoft(strings.Join(words, " "), avail), "\n") {
			out = append(out, indent+strings.TrimRight(l, " "))
		}
	}
	return out
}
