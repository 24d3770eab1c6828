// Package toastbar renders visible toasts above the bottom of the screen.
package toastbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/kemureco/internal/toast"
	"github.com/llehouerou/kemureco/internal/ui/render"
	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// MaxWidth caps the width of a toast box.
const MaxWidth = 48

// Render draws the open toasts of s, newest first, right-aligned within
// width. It returns "" when nothing is visible.
func Render(s toast.State, width int) string {
	visible := s.Visible()
	if len(visible) == 0 || width < 12 {
		return ""
	}

	boxWidth := min(MaxWidth, width-2)
	boxes := make([]string, 0, len(visible))
	for _, t := range visible {
		boxes = append(boxes, renderToast(t, boxWidth))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, boxes...))
}

// Height returns the number of lines Render produces for s.
func Height(s toast.State, width int) int {
	out := Render(s, width)
	if out == "" {
		return 0
	}
	return strings.Count(out, "\n") + 1
}

func renderToast(t toast.Toast, width int) string {
	th := styles.T()
	accent := th.Success
	if t.Variant == toast.VariantDestructive {
		accent = th.Error
	}

	inner := width - 4 // border + padding
	lines := []string{
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(render.TruncateEllipsis(render.Sanitize(t.Title), inner)),
	}
	if t.Description != "" {
		lines = append(lines, th.S().Muted.Render(render.TruncateEllipsis(render.Sanitize(t.Description), inner)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}
