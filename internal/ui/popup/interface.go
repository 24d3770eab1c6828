package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn above the active screen.
type Popup interface {
	Init() tea.Cmd

	// Update handles a message while the popup has focus.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup body, without border or centering.
	View() string

	SetSize(width, height int)
}
