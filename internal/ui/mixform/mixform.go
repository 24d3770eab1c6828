// Package mixform provides the mix editor: a title, a description and one
// row per flavor whose ratios always total 100%.
package mixform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/keymap"
	"github.com/llehouerou/kemureco/internal/ratio"
	"github.com/llehouerou/kemureco/internal/ui"
)

const (
	focusTitle = iota
	focusDescription
	focusFirstRow
)

const (
	stepSmall = 1
	stepLarge = 10
)

// Model is the mix editor.
type Model struct {
	ui.Base
	alloc ratio.Allocator
	keys  *keymap.Resolver
	items []catalog.Item

	mixID       int64
	title       textinput.Model
	description textinput.Model
	set         ratio.Set

	focus  int
	digits string // pending digit entry for the focused row
	err    string
	saving bool // a Submit is in flight
}

// New creates an editor for a new mix with initial unselected flavors.
func New(alloc ratio.Allocator, items []catalog.Item, initial int) Model {
	m := Model{
		alloc:       alloc,
		keys:        keymap.Default(),
		items:       items,
		title:       newInput("Winter mint", 80),
		description: newInput("optional notes", 200),
	}
	initial = max(ratio.MinComponents, min(initial, alloc.Capacity()))
	m.set = ratio.NewSet(initial)
	m.setFocus(focusTitle)
	return m
}

// Edit creates an editor prefilled with a saved mix. A mix with more
// flavors than the allocator allows keeps its first layers, rebalanced
// to 100%, and the editor explains what was dropped.
func Edit(alloc ratio.Allocator, items []catalog.Item, id int64, title, description string, set ratio.Set) Model {
	m := New(alloc, items, ratio.MinComponents)
	m.mixID = id
	m.title.SetValue(title)
	m.description.SetValue(description)

	capacity := alloc.Capacity()
	switch {
	case len(set) == 0:
		m.set = ratio.NewSet(ratio.MinComponents)
	case len(set) > capacity:
		kept := set[:capacity].Clone()
		m.set = alloc.Redistribute(kept, 0, float64(kept[0].Ratio))
		m.err = fmt.Sprintf("Only %d of %d flavors fit, ratios were rebalanced", capacity, len(set))
	default:
		m.set = set.Clone()
	}
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// MixID returns the id of the edited mix, 0 for a new one.
func (m Model) MixID() int64 {
	return m.mixID
}

// Set returns the current components.
func (m Model) Set() ratio.Set {
	return m.set.Clone()
}

// Title returns the trimmed title.
func (m Model) Title() string {
	return strings.TrimSpace(m.title.Value())
}

// Description returns the trimmed description.
func (m Model) Description() string {
	return strings.TrimSpace(m.description.Value())
}

// Err returns the current validation message.
func (m Model) Err() string {
	return m.err
}

// CanSubmit reports whether the form has a title and a complete set and
// no save is in flight.
func (m Model) CanSubmit() bool {
	return !m.saving && m.Title() != "" && m.set.Submittable()
}

// Saving reports whether a Submit is waiting for its result.
func (m Model) Saving() bool {
	return m.saving
}

// SaveFailed re-enables submitting after a failed save.
func (m *Model) SaveFailed() {
	m.saving = false
}

// SetItems replaces the selectable flavors.
func (m *Model) SetItems(items []catalog.Item) {
	m.items = items
}

// SetSize sets the editor dimensions and sizes the inputs.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	inputWidth := max(10, width-ui.BorderWidth-labelWidth-4)
	m.title.Width = inputWidth
	m.description.Width = inputWidth
}

// Init focuses the title input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the editor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}
	if !m.IsFocused() {
		return m, nil
	}

	var cmd tea.Cmd
	action := m.keys.Resolve("mixform", key.String())
	switch action {
	case keymap.ActionNextField:
		cmd = m.setFocus(m.focus + 1)
		return m, cmd
	case keymap.ActionPrevField:
		cmd = m.setFocus(m.focus - 1)
		return m, cmd
	case keymap.ActionSubmit:
		cmd = m.submit()
		return m, cmd
	case keymap.ActionCancel:
		return m, func() tea.Msg { return ActionMsg(Cancel{}) }
	}

	row, onRow := m.row()
	if !onRow {
		m.err = ""
		return m.updateInput(msg)
	}
	return m.handleRowKey(key, action, row), nil
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m Model) handleRowKey(key tea.KeyMsg, action keymap.Action, row int) Model {
	if d, ok := digit(key); ok {
		m.enterDigit(row, d)
		return m
	}
	m.digits = ""
	m.err = ""

	current := m.set[row].Ratio
	switch action {
	case keymap.ActionRatioUp:
		m.set = m.alloc.Redistribute(m.set, row, float64(current+stepSmall))
	case keymap.ActionRatioDown:
		m.set = m.alloc.Redistribute(m.set, row, float64(current-stepSmall))
	case keymap.ActionRatioUpLarge:
		m.set = m.alloc.Redistribute(m.set, row, float64(current+stepLarge))
	case keymap.ActionRatioDownLarge:
		m.set = m.alloc.Redistribute(m.set, row, float64(current-stepLarge))
	case keymap.ActionNextFlavor:
		m.cycleFlavor(row, 1)
	case keymap.ActionPrevFlavor:
		m.cycleFlavor(row, -1)
	case keymap.ActionAddComponent:
		next, ok := m.alloc.Add(m.set)
		if !ok {
			m.err = fmt.Sprintf("A mix holds at most %d flavors", m.alloc.Capacity())
			return m
		}
		m.set = next
		m.setFocus(focusFirstRow + len(m.set) - 1)
	case keymap.ActionRemoveComponent:
		next, ok := m.alloc.Remove(m.set, row)
		if !ok {
			m.err = "A mix needs at least one flavor"
			return m
		}
		m.set = next
		m.setFocus(min(m.focus, focusFirstRow+len(m.set)-1))
	}
	return m
}

// enterDigit appends d to the pending entry and applies it. An entry
// that would exceed 100 starts over with d.
func (m *Model) enterDigit(row int, d rune) {
	m.err = ""
	entry := m.digits + string(d)
	if v, _ := strconv.Atoi(entry); v > ratio.Total || len(entry) > 3 {
		entry = string(d)
	}
	m.digits = entry
	v, _ := strconv.Atoi(entry)
	m.set = m.alloc.Redistribute(m.set, row, float64(v))
}

func digit(key tea.KeyMsg) (rune, bool) {
	if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
		return 0, false
	}
	r := key.Runes[0]
	return r, r >= '0' && r <= '9'
}

func (m *Model) cycleFlavor(row, delta int) {
	n := len(m.items)
	if n == 0 {
		m.err = "The flavor catalog is empty, run `kemureco seed <file>`"
		return
	}
	idx := -1
	for i, it := range m.items {
		if it.Key() == m.set[row].ItemID {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	m.set = m.alloc.SetItem(m.set, row, m.items[idx].Key())
}

func (m *Model) submit() tea.Cmd {
	if m.saving {
		return nil
	}
	if m.Title() == "" {
		m.err = "Title is required"
		m.setFocus(focusTitle)
		return nil
	}
	if reason := incomplete(m.set); reason != "" {
		m.err = reason
		return nil
	}
	m.err = ""
	m.saving = true
	a := Submit{
		MixID:       m.mixID,
		Title:       m.Title(),
		Description: m.Description(),
		Set:         m.set.Clone(),
	}
	return func() tea.Msg { return ActionMsg(a) }
}

// incomplete explains why s cannot be saved, or returns "".
func incomplete(s ratio.Set) string {
	for i, c := range s {
		if !c.HasItem() {
			return fmt.Sprintf("Pick a flavor for row %d", i+1)
		}
		if c.Ratio <= 0 {
			return fmt.Sprintf("Row %d needs a ratio above 0%%", i+1)
		}
	}
	if s.Sum() != ratio.Total {
		return fmt.Sprintf("Ratios total %d%%, not 100%%", s.Sum())
	}
	return ""
}

// row returns the component index under focus.
func (m Model) row() (int, bool) {
	i := m.focus - focusFirstRow
	return i, i >= 0 && i < len(m.set)
}

func (m *Model) setFocus(focus int) tea.Cmd {
	fields := focusFirstRow + len(m.set)
	m.focus = ((focus % fields) + fields) % fields
	m.digits = ""

	m.title.Blur()
	m.description.Blur()
	switch m.focus {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	}
	return nil
}
