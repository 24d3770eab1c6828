// Package popup frames modal content and overlays it on a screen.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/kemureco/internal/ui/styles"
)

// SizeConfig defines how a popup is sized relative to the screen.
type SizeConfig struct {
	WidthPct  int // percentage of screen width (0 = fit content)
	HeightPct int // percentage of screen height (0 = fit content)
	MaxWidth  int // columns (0 = no limit)
}

var (
	SizeAuto  = SizeConfig{MaxWidth: 60}
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 70}
)

// RenderBordered wraps content in a rounded border and centers it on a
// screen of screenW x screenH.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Primary).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = widest(content) + 6 // border + horizontal padding
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // border + vertical padding
	height = min(height, screenH-2)

	return max(width, 4), max(height, 4)
}

func widest(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center pads box so that it sits in the middle of the screen.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	top := max(0, (screenH-len(lines))/2)
	left := max(0, (screenW-widest(box))/2)

	var sb strings.Builder
	for range top {
		sb.WriteString(strings.Repeat(" ", screenW))
		sb.WriteByte('\n')
	}
	pad := strings.Repeat(" ", left)
	for _, line := range lines {
		sb.WriteString(pad)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compose draws overlay on top of base. Within each overlay line, the span
// between the first and last visible character replaces the base columns
// underneath. Fully blank overlay lines leave the base untouched.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		end := ansi.StringWidth(trimmed)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		baseLines[i] = cutPadded(under, 0, start) +
			ansi.Cut(line, start, end) +
			cutPadded(under, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// cutPadded returns columns [from, to) of s, padded with spaces where a
// wide rune straddles a boundary.
func cutPadded(s string, from, to int) string {
	if to <= from {
		return ""
	}
	cut := ansi.Cut(s, from, to)
	if w := ansi.StringWidth(cut); w < to-from {
		cut += strings.Repeat(" ", to-from-w)
	}
	return cut
}
