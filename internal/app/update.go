package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/toast"
	"github.com/llehouerou/kemureco/internal/ui/action"
)

// headerLines is the height of the header bar.
const headerLines = 1

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case toast.UpdatedMsg:
		m.toastState = msg.State
		return m, m.watcher.Next()

	case action.Msg:
		return m.handleAction(msg)

	case MixesLoadedMsg:
		return m.handleMixesLoaded(msg)

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case MixOpenedMsg:
		return m.handleMixOpened(msg)

	case MixSavedMsg:
		return m.handleMixSaved(msg)

	case MixDeletedMsg:
		return m.handleMixDeleted(msg)
	}

	// Cursor blinks and other component messages
	cmd := m.Navigation.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Navigation.Resize(msg.Width, max(0, msg.Height-headerLines))
	m.Popups.SetSize(msg.Width, msg.Height)
	return m, nil
}
