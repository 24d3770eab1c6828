// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to do.
// ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that emitted it.
type Msg struct {
	Source string // "mixform", "mixlist", "flavorlist", "confirm"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}
