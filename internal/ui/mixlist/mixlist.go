// Package mixlist shows saved mixes, newest first, with the selected
// mix's flavors below the list.
package mixlist

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/keymap"
	"github.com/llehouerou/kemureco/internal/mixes"
	"github.com/llehouerou/kemureco/internal/ui"
	"github.com/llehouerou/kemureco/internal/ui/action"
	"github.com/llehouerou/kemureco/internal/ui/cursor"
)

// Model is the mix list screen.
type Model struct {
	ui.Base
	keys     *keymap.Resolver
	cursor   cursor.Cursor
	mixes    []mixes.Mix
	capacity int
	now      func() time.Time
}

// New creates an empty list. capacity is the configured flavor limit,
// which sizes the detail pane.
func New(capacity int) Model {
	return Model{
		keys:     keymap.Default(),
		cursor:   cursor.New(ui.ScrollMargin),
		capacity: max(capacity, 1),
		now:      time.Now,
	}
}

// SetMixes replaces the list and keeps the cursor in bounds.
func (m *Model) SetMixes(list []mixes.Mix) {
	m.mixes = list
	m.cursor.ClampToBounds(len(m.mixes), m.listHeight())
}

// Len returns the number of mixes.
func (m Model) Len() int {
	return len(m.mixes)
}

// Selected returns the mix under the cursor.
func (m Model) Selected() (mixes.Mix, bool) {
	if len(m.mixes) == 0 {
		return mixes.Mix{}, false
	}
	return m.mixes[m.cursor.Pos()], true
}

// SelectByID moves the cursor to the mix with id. It reports whether the
// mix was found.
func (m *Model) SelectByID(id int64) bool {
	for i, mix := range m.mixes {
		if mix.ID == id {
			m.cursor.Jump(i, len(m.mixes), m.listHeight())
			return true
		}
	}
	return false
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.ClampToBounds(len(m.mixes), m.listHeight())
}

// Update handles key input for the list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	switch m.keys.Resolve("mixlist", key.String()) {
	case keymap.ActionNewMix:
		return m, actionCmd(NewMix{})
	case keymap.ActionEdit:
		if mix, ok := m.Selected(); ok {
			return m, actionCmd(Edit{ID: mix.ID})
		}
	case keymap.ActionDelete:
		if mix, ok := m.Selected(); ok {
			return m, actionCmd(Delete{ID: mix.ID, Title: mix.Title})
		}
	case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionJumpStart, keymap.ActionJumpEnd:
		before := m.cursor.Pos()
		m.cursor.HandleKey(key.String(), len(m.mixes), m.listHeight())
		if mix, ok := m.Selected(); ok && m.cursor.Pos() != before {
			return m, actionCmd(SelectionChanged{ID: mix.ID})
		}
	}
	return m, nil
}

func actionCmd(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}

// detailHeight is the number of lines below the list: separator,
// description and one line per flavor.
func (m Model) detailHeight() int {
	return 2 + m.capacity
}

func (m Model) listHeight() int {
	return m.RowsHeight(ui.PanelOverhead + m.detailHeight())
}
