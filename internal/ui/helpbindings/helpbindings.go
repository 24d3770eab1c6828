// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/kemureco/internal/keymap"
	"github.com/llehouerou/kemureco/internal/ui"
	"github.com/llehouerou/kemureco/internal/ui/popup"
	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var categoryOrder = []string{"global", "mixlist", "mixform", "flavorlist", "flavorsearch"}

var categoryLabels = map[string]string{
	"global":       "Global",
	"mixlist":      "Mixes",
	"mixform":      "Mix Editor",
	"flavorlist":   "Flavors",
	"flavorsearch": "Flavor Search",
}

// chrome is the number of lines used by the title, footer and popup frame.
const chrome = 10

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts selects which binding contexts are listed.
func (m *Model) SetContexts(contexts []string) {
	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}
	m.lines = buildLines(bindings)
	m.offset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "?", "esc", "q", "f10":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.offset = min(m.offset+1, m.maxOffset())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	width := 0
	for _, line := range m.lines {
		width = max(width, lipgloss.Width(line))
	}

	end := min(m.offset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.offset)
	for _, line := range m.lines[m.offset:end] {
		visible = append(visible, line+strings.Repeat(" ", width-lipgloss.Width(line)))
	}

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}

	return s.Title.Render("Keys") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines(bindings []keymap.Binding) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	context := ""
	for _, b := range bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				t.S().Subtle.Render(strings.Repeat("─", keyWidth+16)))
			context = b.Context
		}
		keys := strings.Join(b.Keys, ", ")
		lines = append(lines,
			keyStyle.Render(keys+strings.Repeat(" ", keyWidth-len(keys)))+"  "+t.S().Base.Render(b.Description))
	}
	return lines
}
