package app

import (
	"strings"

	"github.com/llehouerou/kemureco/internal/ui/headerbar"
	"github.com/llehouerou/kemureco/internal/ui/popup"
	"github.com/llehouerou/kemureco/internal/ui/toastbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(string(m.Navigation.Screen()), m.Width)
	view := enforceHeight(header+"\n"+m.Navigation.Render(), m.Height)

	// Toasts float over the bottom right corner of the screen
	if bar := toastbar.Render(m.toastState, m.Width); bar != "" {
		barLines := strings.Count(bar, "\n") + 1
		top := max(headerLines, m.Height-barLines-1)
		view = popup.Compose(view, strings.Repeat("\n", top)+bar, m.Width)
	}

	return m.Popups.RenderOverlay(view)
}

// enforceHeight pads or truncates view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
