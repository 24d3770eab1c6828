package mixlist

import (
	"github.com/llehouerou/kemureco/internal/ui/action"
)

// NewMix opens the editor for a new mix.
type NewMix struct{}

// ActionType implements action.Action.
func (a NewMix) ActionType() string { return "mixlist.new_mix" }

// Edit opens the editor for an existing mix.
type Edit struct {
	ID int64
}

// ActionType implements action.Action.
func (a Edit) ActionType() string { return "mixlist.edit" }

// Delete asks to delete a mix. The app confirms before deleting.
type Delete struct {
	ID    int64
	Title string
}

// ActionType implements action.Action.
func (a Delete) ActionType() string { return "mixlist.delete" }

// SelectionChanged reports the mix under the cursor, for session restore.
type SelectionChanged struct {
	ID int64
}

// ActionType implements action.Action.
func (a SelectionChanged) ActionType() string { return "mixlist.selection_changed" }

// ActionMsg creates an action.Msg for a mixlist action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "mixlist", Action: a}
}
