// Package flavorlist browses the flavor catalog with a tag filter, a text
// search over flavor and brand names, and a sort order.
package flavorlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/keymap"
	"github.com/llehouerou/kemureco/internal/ui"
	"github.com/llehouerou/kemureco/internal/ui/cursor"
	"github.com/llehouerou/kemureco/internal/ui/render"
	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// searchLines is the height of the search and sort line under the title.
const searchLines = 1

// Model is the flavor browser.
type Model struct {
	ui.Base
	keys      *keymap.Resolver
	cursor    cursor.Cursor
	search    textinput.Model
	searching bool
	items     []catalog.Item
	tags      []string
	tag       string
	order     catalog.Sort
	visible   []catalog.Item
}

// New creates an empty browser sorted by name.
func New() Model {
	search := textinput.New()
	search.Placeholder = "flavor or brand"
	search.CharLimit = 64
	search.Prompt = ""
	return Model{
		keys:   keymap.Default(),
		cursor: cursor.New(ui.ScrollMargin),
		search: search,
		order:  catalog.SortName,
	}
}

// SetItems replaces the catalog. A tag filter that no longer exists is
// dropped.
func (m *Model) SetItems(items []catalog.Item) {
	m.items = items
	m.tags = catalog.Tags(items)
	if !slices.Contains(m.tags, m.tag) {
		m.tag = ""
	}
	m.refilter()
}

// SetTag applies a tag filter. Unknown tags clear the filter.
func (m *Model) SetTag(tag string) {
	if !slices.Contains(m.tags, tag) {
		tag = ""
	}
	m.tag = tag
	m.refilter()
}

// Tag returns the active tag filter.
func (m Model) Tag() string {
	return m.tag
}

// SetQuery applies a search over flavor and brand names.
func (m *Model) SetQuery(query string) {
	m.search.SetValue(query)
	m.refilter()
}

// Query returns the trimmed search text.
func (m Model) Query() string {
	return strings.TrimSpace(m.search.Value())
}

// SetSort changes the listing order.
func (m *Model) SetSort(order catalog.Sort) {
	m.order = catalog.ParseSort(string(order))
	m.refilter()
}

// Sort returns the listing order.
func (m Model) Sort() catalog.Sort {
	return m.order
}

// Searching reports whether keys are typed into the search input.
func (m Model) Searching() bool {
	return m.searching
}

// KeyContext returns the keymap context for the current input mode.
func (m Model) KeyContext() string {
	if m.searching {
		return "flavorsearch"
	}
	return "flavorlist"
}

// Visible returns the flavors passing the filters, in display order.
func (m Model) Visible() []catalog.Item {
	return m.visible
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.search.Width = max(10, m.InnerWidth()/2)
	m.cursor.ClampToBounds(len(m.visible), m.listHeight())
}

// SetFocused blurs the search input when the browser loses focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	if !focused {
		m.stopSearch()
	}
}

// Update handles key input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if !m.IsFocused() {
		return m, nil
	}
	if m.searching {
		return m.updateSearch(key)
	}

	switch m.keys.Resolve("flavorlist", key.String()) {
	case keymap.ActionNextTag:
		return m.cycleTag(1)
	case keymap.ActionPrevTag:
		return m.cycleTag(-1)
	case keymap.ActionSearch:
		m.searching = true
		return m, m.search.Focus()
	case keymap.ActionCycleSort:
		m.SetSort(m.order.Next())
		return m, m.filtersChanged()
	case keymap.ActionClearFilters:
		if m.tag == "" && m.Query() == "" {
			return m, nil
		}
		m.tag = ""
		m.SetQuery("")
		return m, m.filtersChanged()
	default:
		m.cursor.HandleKey(key.String(), len(m.visible), m.listHeight())
	}
	return m, nil
}

func (m Model) updateSearch(key tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Resolve("flavorsearch", key.String()) {
	case keymap.ActionSearchDone:
		m.stopSearch()
		return m, nil
	case keymap.ActionSearchCancel:
		m.stopSearch()
		if m.Query() == "" {
			return m, nil
		}
		m.SetQuery("")
		return m, m.filtersChanged()
	}

	before := m.Query()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	if m.Query() == before {
		return m, cmd
	}
	m.refilter()
	return m, tea.Batch(cmd, m.filtersChanged())
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
}

// cycleTag steps through "" and every tag in order.
func (m Model) cycleTag(delta int) (Model, tea.Cmd) {
	if len(m.tags) == 0 {
		return m, nil
	}
	options := append([]string{""}, m.tags...)
	i := slices.Index(options, m.tag)
	n := len(options)
	m.SetTag(options[((i+delta)%n+n)%n])
	return m, m.filtersChanged()
}

func (m Model) filtersChanged() tea.Cmd {
	a := FiltersChanged{Tag: m.tag, Query: m.Query(), Sort: m.order}
	return func() tea.Msg { return ActionMsg(a) }
}

func (m *Model) refilter() {
	m.visible = catalog.SortItems(catalog.Filter(m.items, m.tag, m.Query()), m.order)
	m.cursor.Reset()
}

func (m Model) listHeight() int {
	return m.RowsHeight(ui.PanelOverhead + searchLines)
}

// View renders the browser.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	inner := m.InnerWidth()

	filter := "all tags"
	if m.tag != "" {
		filter = "#" + m.tag
	}
	header := render.Row(
		s.Title.Render("Flavors"),
		s.Muted.Render(fmt.Sprintf("%s · %d/%d", filter, len(m.visible), len(m.items))),
		inner)
	lines := []string{
		header,
		m.searchLine(inner),
		s.Subtle.Render(render.Separator(inner)),
	}

	height := m.listHeight()
	switch {
	case len(m.items) == 0:
		lines = append(lines, s.Muted.Render("The catalog is empty. Import one with `kemureco seed <file>`."))
	case len(m.visible) == 0:
		lines = append(lines, s.Muted.Render("No flavor matches the filters."))
	}
	start, end := m.cursor.VisibleRange(len(m.visible), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.visible[i], i == m.cursor.Pos(), inner))
	}

	total := height + ui.HeaderHeight + searchLines
	for len(lines) < total {
		lines = append(lines, "")
	}
	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines[:total], "\n"))
}

func (m Model) searchLine(width int) string {
	s := styles.T().S()
	var left string
	switch {
	case m.searching:
		left = s.Active.Render("/ ") + m.search.View()
	case m.Query() != "":
		left = s.Muted.Render("/ " + render.Sanitize(m.Query()))
	default:
		left = s.Subtle.Render("/ search")
	}
	return render.Row(left, s.Muted.Render("sort: "+string(m.order)), width)
}

func (m Model) renderRow(it catalog.Item, selected bool, width int) string {
	s := styles.T().S()
	highlight := selected && m.IsFocused() && !m.searching

	tags := make([]string, 0, len(it.Tags))
	for _, tag := range it.Tags {
		switch {
		case highlight:
			tags = append(tags, "#"+tag)
		case tag == m.tag:
			tags = append(tags, s.Active.Render("#"+tag))
		default:
			tags = append(tags, s.Tag.Render("#"+tag))
		}
	}
	right := strings.Join(tags, " ")
	labelWidth := max(8, width-lipgloss.Width(right)-3)

	row := " " + render.Fit(it.Label(), labelWidth) + " " + right
	if highlight {
		return s.Cursor.Render(render.Pad(row, width))
	}
	return row
}
