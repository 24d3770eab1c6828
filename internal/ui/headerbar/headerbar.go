// Package headerbar renders the one-line screen switcher.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Title is the application name drawn at the left of the bar.
const Title = "kemureco"

type tab struct {
	key    string
	name   string
	screen string
}

var tabs = []tab{
	{"F1", "Mixes", "mixes"},
	{"F2", "Flavors", "flavors"},
}

// Render returns the header for the given screen. The editor screen
// highlights the Mixes tab.
func Render(screen string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(t.FgMuted)
	sep := t.S().Subtle.Render(" │ ")

	if screen == "editor" {
		screen = "mixes"
	}

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		style := inactive
		if tb.screen == screen {
			style = active
		}
		parts = append(parts, style.Render(tb.key+" "+tb.name))
	}
	right := strings.Join(parts, sep)
	left := styles.ApplyBoldGradient(Title, t.Primary, t.Secondary)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return " " + right
	}
	return " " + left + strings.Repeat(" ", gap) + right + " "
}
