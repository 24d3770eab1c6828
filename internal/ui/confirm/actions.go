package confirm

import (
	"github.com/llehouerou/kemureco/internal/ui/action"
)

// Result is emitted when the user answers the prompt.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps a confirm action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
