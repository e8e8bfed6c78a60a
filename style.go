package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var keywordStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#ECFD65"})

// keyword renders a highlighted term for help text. Plain text when stdout
// isn't a color terminal.
func keyword(s string) string {
	if termenv.EnvColorProfile() == termenv.Ascii {
		return s
	}
	return keywordStyle.Render(s)
}

// paragraph word-wraps and indents help copy to the terminal width.
func paragraph(s string) string {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || w > 80 {
		w = 80
	}
	s = wordwrap.String(s, w-4)
	s = indent.String(s, 2)
	return strings.TrimRight(s, "\n")
}
