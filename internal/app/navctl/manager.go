package navctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/ui/flavorlist"
	"github.com/llehouerou/kemureco/internal/ui/mixform"
	"github.com/llehouerou/kemureco/internal/ui/mixlist"
)

// Manager owns the screens and keeps focus on the active one.
type Manager struct {
	screen  Screen
	mixList mixlist.Model
	flavors flavorlist.Model
	editor  *mixform.Model
	width   int
	height  int
}

// New creates a manager showing the mix list. capacity sizes the mix
// detail pane.
func New(capacity int) *Manager {
	n := &Manager{
		screen:  ScreenMixes,
		mixList: mixlist.New(capacity),
		flavors: flavorlist.New(),
	}
	n.applyFocus()
	return n
}

// Screen returns the active screen.
func (n *Manager) Screen() Screen {
	return n.screen
}

// SetScreen switches to screen. Switching to the editor requires an open
// editor and is ignored otherwise.
func (n *Manager) SetScreen(screen Screen) {
	if screen == ScreenEditor && n.editor == nil {
		return
	}
	n.screen = screen
	n.applyFocus()
}

// KeyContext returns the keymap context of the active screen, following
// the flavor browser into its search input.
func (n *Manager) KeyContext() string {
	if n.screen == ScreenFlavors {
		return n.flavors.KeyContext()
	}
	return n.screen.KeyContext()
}

// MixList returns the mix list screen.
func (n *Manager) MixList() *mixlist.Model {
	return &n.mixList
}

// Flavors returns the flavor browser.
func (n *Manager) Flavors() *flavorlist.Model {
	return &n.flavors
}

// Editor returns the open editor, or nil.
func (n *Manager) Editor() *mixform.Model {
	return n.editor
}

// OpenEditor shows form and returns its init command.
func (n *Manager) OpenEditor(form mixform.Model) tea.Cmd {
	form.SetSize(n.width, n.height)
	n.editor = &form
	n.SetScreen(ScreenEditor)
	return n.editor.Init()
}

// CloseEditor discards the editor and returns to the mix list.
func (n *Manager) CloseEditor() {
	n.editor = nil
	n.SetScreen(ScreenMixes)
}

// Resize sets the dimensions available to screens.
func (n *Manager) Resize(width, height int) {
	n.width = width
	n.height = height
	n.mixList.SetSize(width, height)
	n.flavors.SetSize(width, height)
	if n.editor != nil {
		n.editor.SetSize(width, height)
	}
}

// Update routes msg to the active screen.
func (n *Manager) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch n.screen {
	case ScreenMixes:
		n.mixList, cmd = n.mixList.Update(msg)
	case ScreenFlavors:
		n.flavors, cmd = n.flavors.Update(msg)
	case ScreenEditor:
		if n.editor != nil {
			var form mixform.Model
			form, cmd = n.editor.Update(msg)
			n.editor = &form
		}
	}
	return cmd
}

// Render renders the active screen.
func (n *Manager) Render() string {
	switch n.screen {
	case ScreenFlavors:
		return n.flavors.View()
	case ScreenEditor:
		if n.editor != nil {
			return n.editor.View()
		}
	case ScreenMixes:
	}
	return n.mixList.View()
}

func (n *Manager) applyFocus() {
	n.mixList.SetFocused(n.screen == ScreenMixes)
	n.flavors.SetFocused(n.screen == ScreenFlavors)
	if n.editor != nil {
		n.editor.SetFocused(n.screen == ScreenEditor)
	}
}
