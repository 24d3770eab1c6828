// Package render provides text helpers for fixed-width terminal rows.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sanitize drops control characters and invalid UTF-8 from text that
// came from a seed file or user input. Non-breaking spaces become spaces.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || (r != '\t' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens s to maxWidth columns, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens s to maxWidth columns with a single "…".
// It cuts on grapheme boundaries so combined characters stay whole.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if width+w > maxWidth-1 {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	return b.String() + "…"
}

// Pad fills s with spaces up to width columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates then pads s so it is exactly width columns.
func Fit(s string, width int) string {
	return Pad(TruncateEllipsis(Sanitize(s), width), width)
}

// Row places left and right at either end of a width-column row.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule of width columns.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
