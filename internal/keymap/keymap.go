// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionViewMixes   Action = "view_mixes"
	ActionViewFlavors Action = "view_flavors"
	ActionNewMix      Action = "new_mix"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Mix list
	ActionEdit   Action = "edit"   // enter/e
	ActionDelete Action = "delete" // d/delete

	// Mix form
	ActionNextField       Action = "next_field"
	ActionPrevField       Action = "prev_field"
	ActionRatioUp         Action = "ratio_up"
	ActionRatioDown       Action = "ratio_down"
	ActionRatioUpLarge    Action = "ratio_up_large"
	ActionRatioDownLarge  Action = "ratio_down_large"
	ActionNextFlavor      Action = "next_flavor"
	ActionPrevFlavor      Action = "prev_flavor"
	ActionAddComponent    Action = "add_component"
	ActionRemoveComponent Action = "remove_component"
	ActionSubmit          Action = "submit"
	ActionCancel          Action = "cancel"

	// Flavor list
	ActionNextTag      Action = "next_tag"
	ActionPrevTag      Action = "prev_tag"
	ActionSearch       Action = "search"
	ActionCycleSort    Action = "cycle_sort"
	ActionClearFilters Action = "clear_filters"

	// Flavor search input
	ActionSearchDone   Action = "search_done"
	ActionSearchCancel Action = "search_cancel"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "mixlist", "mixform", "flavorlist", "flavorsearch"
}

// All contains every key binding. Context bindings take precedence over
// global ones when resolving.
var All = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"f10"}, "Show help", "global"},
	{ActionViewMixes, []string{"f1"}, "Mixes", "global"},
	{ActionViewFlavors, []string{"f2"}, "Flavors", "global"},

	// Mix list
	{ActionQuit, []string{"q"}, "Quit", "mixlist"},
	{ActionHelp, []string{"?"}, "Show help", "mixlist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "mixlist"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "mixlist"},
	{ActionJumpStart, []string{"g", "home"}, "First mix", "mixlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last mix", "mixlist"},
	{ActionNewMix, []string{"n"}, "New mix", "mixlist"},
	{ActionEdit, []string{"enter", "e"}, "Edit mix", "mixlist"},
	{ActionDelete, []string{"d", "delete"}, "Delete mix", "mixlist"},

	// Mix form
	{ActionNextField, []string{"tab", "down"}, "Next field", "mixform"},
	{ActionPrevField, []string{"shift+tab", "up"}, "Previous field", "mixform"},
	{ActionRatioUp, []string{"right", "l"}, "Ratio +1", "mixform"},
	{ActionRatioDown, []string{"left", "h"}, "Ratio -1", "mixform"},
	{ActionRatioUpLarge, []string{"shift+right", "L"}, "Ratio +10", "mixform"},
	{ActionRatioDownLarge, []string{"shift+left", "H"}, "Ratio -10", "mixform"},
	{ActionNextFlavor, []string{"]", "J"}, "Next flavor", "mixform"},
	{ActionPrevFlavor, []string{"[", "K"}, "Previous flavor", "mixform"},
	{ActionAddComponent, []string{"a", "+"}, "Add flavor", "mixform"},
	{ActionRemoveComponent, []string{"x", "-"}, "Remove flavor", "mixform"},
	{ActionSubmit, []string{"ctrl+s"}, "Save mix", "mixform"},
	{ActionCancel, []string{"esc"}, "Discard changes", "mixform"},

	// Flavor list
	{ActionQuit, []string{"q"}, "Quit", "flavorlist"},
	{ActionHelp, []string{"?"}, "Show help", "flavorlist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "flavorlist"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "flavorlist"},
	{ActionJumpStart, []string{"g", "home"}, "First flavor", "flavorlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last flavor", "flavorlist"},
	{ActionNextTag, []string{"t"}, "Next tag filter", "flavorlist"},
	{ActionPrevTag, []string{"T"}, "Previous tag filter", "flavorlist"},
	{ActionSearch, []string{"/"}, "Search flavors", "flavorlist"},
	{ActionCycleSort, []string{"s"}, "Cycle sort order", "flavorlist"},
	{ActionClearFilters, []string{"esc"}, "Clear filters", "flavorlist"},

	// Flavor search input
	{ActionSearchDone, []string{"enter"}, "Keep search", "flavorsearch"},
	{ActionSearchCancel, []string{"esc"}, "Clear search", "flavorsearch"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
