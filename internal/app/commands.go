package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/ui/mixform"
)

func (m Model) loadMixesCmd(selectID int64) tea.Cmd {
	store := m.Mixes
	return func() tea.Msg {
		list, err := store.List()
		return MixesLoadedMsg{Mixes: list, SelectID: selectID, Err: err}
	}
}

func (m Model) loadCatalogCmd() tea.Cmd {
	provider := m.Catalog
	return func() tea.Msg {
		items, err := provider.Items()
		return CatalogLoadedMsg{Items: items, Err: err}
	}
}

func (m Model) openMixCmd(id int64) tea.Cmd {
	store := m.Mixes
	return func() tea.Msg {
		mix, err := store.Get(id)
		return MixOpenedMsg{Mix: mix, Err: err}
	}
}

func (m Model) saveMixCmd(a mixform.Submit) tea.Cmd {
	store := m.Mixes
	return func() tea.Msg {
		if a.MixID == 0 {
			id, err := store.Create(a.Title, a.Description, a.Set)
			return MixSavedMsg{ID: id, Title: a.Title, Created: true, Err: err}
		}
		err := store.Update(a.MixID, a.Title, a.Description, a.Set)
		return MixSavedMsg{ID: a.MixID, Title: a.Title, Err: err}
	}
}

func (m Model) deleteMixCmd(req deleteRequest) tea.Cmd {
	store := m.Mixes
	return func() tea.Msg {
		err := store.Delete(req.ID)
		return MixDeletedMsg{ID: req.ID, Title: req.Title, Err: err}
	}
}
