// Package ui renders a human-readable summary of a finished match to a
// terminal, kept separate from the bit-exact JSON stdout contract the
// driver entry point owns.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Padding(0, 1)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	kickedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// RenderOutcome writes a boxed winners/kicked summary to w. It is purely
// cosmetic and never touches stdout.
func RenderOutcome(w io.Writer, winners, kicked []string) {
	width := 40
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw - 4
		}
	}

	var body strings.Builder
	body.WriteString(titleStyle.Render("bazaar match result"))
	body.WriteString("\n\n")

	body.WriteString(winnerStyle.Render(fmt.Sprintf("winners: %s", join(winners))))
	body.WriteString("\n")
	body.WriteString(kickedStyle.Render(fmt.Sprintf("kicked:  %s", join(kicked))))

	style := boxStyle
	if width > 0 {
		style = style.Width(width)
	}
	fmt.Fprintln(w, style.Render(body.String()))
}

func join(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
