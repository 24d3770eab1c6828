package mixform

import (
	"github.com/llehouerou/kemureco/internal/ratio"
	"github.com/llehouerou/kemureco/internal/ui/action"
)

// Submit asks the app to persist the form. MixID is 0 for a new mix.
type Submit struct {
	MixID       int64
	Title       string
	Description string
	Set         ratio.Set
}

// ActionType implements action.Action.
func (a Submit) ActionType() string { return "mixform.submit" }

// Cancel asks the app to leave the editor without saving.
type Cancel struct{}

// ActionType implements action.Action.
func (a Cancel) ActionType() string { return "mixform.cancel" }

// ActionMsg creates an action.Msg for a mixform action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "mixform", Action: a}
}
