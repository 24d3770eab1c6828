package mixlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/kemureco/internal/mixes"
	"github.com/llehouerou/kemureco/internal/ui"
	"github.com/llehouerou/kemureco/internal/ui/render"
	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// View renders the list panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	inner := m.InnerWidth()

	header := render.Row(
		s.Title.Render("Mixes"),
		s.Muted.Render(fmt.Sprintf("%d saved", len(m.mixes))),
		inner)

	lines := []string{header, s.Subtle.Render(render.Separator(inner))}
	lines = append(lines, m.renderRows(inner)...)
	lines = append(lines, m.renderDetail(inner)...)

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

func (m Model) renderRows(width int) []string {
	s := styles.T().S()
	height := m.listHeight()
	rows := make([]string, 0, height)

	if len(m.mixes) == 0 {
		rows = append(rows, s.Muted.Render("No mixes yet. Press n to create one."))
	}

	start, end := m.cursor.VisibleRange(len(m.mixes), height)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(m.mixes[i], i == m.cursor.Pos(), width))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return rows
}

func (m Model) renderRow(mix mixes.Mix, selected bool, width int) string {
	s := styles.T().S()

	when := humanize.RelTime(mix.CreatedAt, m.now(), "ago", "from now")
	flavors := fmt.Sprintf("%d flavor", len(mix.Components))
	if len(mix.Components) != 1 {
		flavors += "s"
	}
	right := fmt.Sprintf("%-10s %14s", flavors, when)

	titleWidth := max(4, width-lipgloss.Width(right)-3)
	row := " " + render.Fit(mix.Title, titleWidth) + " " + right + " "

	if selected {
		if m.IsFocused() {
			return s.Cursor.Render(render.Pad(row, width))
		}
		return s.Active.Render(row)
	}
	return s.Base.Render(row)
}

func (m Model) renderDetail(width int) []string {
	s := styles.T().S()
	lines := []string{s.Subtle.Render(render.Separator(width))}

	mix, ok := m.Selected()
	if !ok {
		return lines
	}

	desc := mix.Description
	if desc == "" {
		desc = "no description"
	}
	lines = append(lines, s.Muted.Render(render.TruncateEllipsis(render.Sanitize(desc), width)))

	barWidth := min(ui.RatioBarWidth, width-ui.LabelWidth-8)
	for _, c := range mix.Components {
		label := render.Fit(fmt.Sprintf("%d. %s", c.Layer, c.Label()), min(ui.LabelWidth, width-8))
		line := " " + label + " "
		if barWidth >= ui.MinRatioBarWidth {
			line += styles.RatioBar(c.Ratio, barWidth) + " "
		}
		lines = append(lines, line+fmt.Sprintf("%3d%%", c.Ratio))
	}
	return lines
}
