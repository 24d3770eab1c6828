// Package confirm provides a yes/no popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/ui"
	"github.com/llehouerou/kemureco/internal/ui/popup"
	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model asks a yes/no question. Destructive prompts render their title
// in the error color.
type Model struct {
	ui.Base
	title       string
	message     string
	context     any
	destructive bool
	active      bool
}

// New creates an inactive prompt.
func New() Model {
	return Model{}
}

// Show activates the prompt. context is returned untouched in Result.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.destructive = false
	m.active = true
}

// ShowDestructive is Show for irreversible actions such as deleting a mix.
func (m *Model) ShowDestructive(title, message string, context any) {
	m.Show(title, message, context)
	m.destructive = true
}

// Active reports whether the prompt is shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	switch key.String() {
	case "enter", "y", "Y":
		return m, m.answer(true)
	case "esc", "n", "N", "q":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	m.active = false
	res := Result{Confirmed: confirmed, Context: m.context}
	m.context = nil
	return func() tea.Msg { return ActionMsg(res) }
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()

	title := s.Title.Render(m.title)
	if m.destructive {
		title = s.Error.Bold(true).Render(m.title)
	}
	hint := s.Subtle.Render("enter/y confirm · esc/n cancel")

	return title + "\n\n" + s.Base.Render(m.message) + "\n\n" + hint
}
