package app

import (
	"github.com/llehouerou/kemureco/internal/state"
)

// SaveUIState persists the active screen, the selected mix and the
// flavor browser filters. The editor is saved as the mix list.
func (m *Model) SaveUIState() {
	flavors := m.Navigation.Flavors()
	ui := state.UIState{
		Screen:      string(m.Navigation.Screen().Persistable()),
		TagFilter:   flavors.Tag(),
		FlavorQuery: flavors.Query(),
		FlavorSort:  string(flavors.Sort()),
	}
	if mix, ok := m.Navigation.MixList().Selected(); ok {
		id := mix.ID
		ui.SelectedMixID = &id
	}
	m.StateMgr.SaveUIState(ui)
}
