package mixform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/ratio"
	"github.com/llehouerou/kemureco/internal/ui"
	"github.com/llehouerou/kemureco/internal/ui/render"
	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// labelWidth is the width of the field labels column.
const labelWidth = 13

const unselected = "(select a flavor)"

// View renders the editor.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	inner := m.InnerWidth()

	heading := "New mix"
	if m.mixID != 0 {
		heading = "Edit mix"
	}

	lines := []string{
		s.Title.Render(heading),
		s.Subtle.Render(render.Separator(inner)),
		m.fieldLine("Title", m.title.View(), m.focus == focusTitle),
		m.fieldLine("Description", m.description.View(), m.focus == focusDescription),
		"",
		s.Muted.Render(fmt.Sprintf("Flavors %d/%d", len(m.set), m.alloc.Capacity())),
	}
	for i := range m.set {
		lines = append(lines, m.componentLine(i, inner))
	}
	lines = append(lines, "", m.statusLine(inner))
	if m.err != "" {
		lines = append(lines, s.Error.Render(render.TruncateEllipsis(m.err, inner)))
	}

	height := max(0, m.Height()-ui.BorderHeight)
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

func (m Model) fieldLine(label, input string, focused bool) string {
	s := styles.T().S()
	style := s.Muted
	marker := "  "
	if focused {
		style = s.Active
		marker = "▸ "
	}
	return style.Render(marker+render.Pad(label, labelWidth)) + input
}

func (m Model) componentLine(i, width int) string {
	s := styles.T().S()
	c := m.set[i]
	focused := m.focus == focusFirstRow+i

	marker := "  "
	if focused {
		marker = "▸ "
	}
	label := m.label(c)
	labelStyle := s.Base
	if !c.HasItem() {
		labelStyle = s.Subtle
	}

	percent := fmt.Sprintf("%3d%%", c.Ratio)
	if focused && m.digits != "" {
		percent = fmt.Sprintf("%3s_", m.digits)
	}

	barWidth := min(ui.RatioBarWidth, width-ui.LabelWidth-12)
	bar := ""
	if barWidth >= ui.MinRatioBarWidth {
		bar = styles.RatioBar(c.Ratio, barWidth) + " "
	}

	labelCol := max(8, width-lipgloss.Width(bar)-len(percent)-6)
	row := marker + fmt.Sprintf("%d ", i+1) +
		labelStyle.Render(render.Fit(label, labelCol)) + " " + bar + percent
	if focused {
		return s.Active.Render(marker) + strings.TrimPrefix(row, marker)
	}
	return row
}

func (m Model) label(c ratio.Component) string {
	if !c.HasItem() {
		return unselected
	}
	if it, ok := catalog.Lookup(m.items, c.ItemID); ok {
		return it.Label()
	}
	return "#" + c.ItemID
}

func (m Model) statusLine(width int) string {
	s := styles.T().S()
	total := fmt.Sprintf("Total %d%%", m.set.Sum())

	var state string
	switch {
	case m.saving:
		state = s.Muted.Render("saving...")
	case m.CanSubmit():
		state = s.Success.Render("ready")
	case m.set.Sum() != ratio.Total:
		state = s.Error.Render("must total 100%")
	default:
		state = s.Warning.Render("incomplete")
	}

	hint := s.Subtle.Render("ctrl+s save · esc discard")
	return render.Row(s.Base.Render(total)+"  "+state, hint, width)
}
