package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/kemureco/internal/app/handler"
	"github.com/llehouerou/kemureco/internal/app/navctl"
	"github.com/llehouerou/kemureco/internal/keymap"
)

// handleKey routes a key to the active popup, then to the global
// bindings, then to the active screen.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := handler.Chain(key,
		m.Popups.HandleKey,
		m.handleGlobalKey,
		m.handleScreenKey,
	)
	return m, r.Cmd
}

func (m *Model) handleGlobalKey(key tea.KeyMsg) handler.Result {
	screen := m.Navigation.Screen()
	action := m.Keys.Resolve(m.Navigation.KeyContext(), key.String())

	switch action {
	case keymap.ActionQuit:
		m.Logger.Debug("quit")
		m.SaveUIState()
		m.Close()
		return handler.Handled(tea.Quit)

	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp(m.helpContexts()))

	case keymap.ActionViewMixes, keymap.ActionViewFlavors:
		if screen == navctl.ScreenEditor {
			// leaving the editor goes through save or cancel
			return handler.HandledNoCmd
		}
		target := navctl.ScreenMixes
		if action == keymap.ActionViewFlavors {
			target = navctl.ScreenFlavors
		}
		if target != screen {
			m.Navigation.SetScreen(target)
			m.SaveUIState()
		}
		return handler.HandledNoCmd
	}

	return handler.NotHandled
}

func (m *Model) handleScreenKey(key tea.KeyMsg) handler.Result {
	m.Logger.Debug("key", zap.String("key", key.String()), zap.String("screen", string(m.Navigation.Screen())))
	return handler.Handled(m.Navigation.Update(key))
}

// helpContexts returns the binding contexts relevant to the active screen.
func (m Model) helpContexts() []string {
	contexts := []string{"global", m.Navigation.Screen().KeyContext()}
	if m.Navigation.Screen() == navctl.ScreenFlavors {
		contexts = append(contexts, "flavorsearch")
	}
	return contexts
}
