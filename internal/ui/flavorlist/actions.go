package flavorlist

import (
	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/ui/action"
)

// FiltersChanged reports a new tag filter, search text or sort order.
// Tag and Query are empty when cleared.
type FiltersChanged struct {
	Tag   string
	Query string
	Sort  catalog.Sort
}

// ActionType implements action.Action.
func (a FiltersChanged) ActionType() string { return "flavorlist.filters_changed" }

// ActionMsg creates an action.Msg for a flavorlist action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "flavorlist", Action: a}
}
