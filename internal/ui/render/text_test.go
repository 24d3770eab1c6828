package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Double Apple", "Double Apple"},
		{"japanese", "ミント", "ミント"},
		{"control chars", "Mi\x00nt\n", "Mint"},
		{"keeps tab", "a\tb", "a\tb"},
		{"nbsp", "Al\u00a0Fakher", "Al Fakher"},
		{"invalid utf8", "Le\xffmon", "Lemon"},
		{"c1 control", "Grape\u0085", "Grape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"mint", 10, "mint"},
		{"mint", 4, "mint"},
		{"double apple", 9, "double..."},
		{"mint", 3, "..."},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"mint", 10, "mint"},
		{"double apple", 7, "double…"},
		{"ダブルアップル", 7, "ダブル…"},
		{"café latte", 5, "café…"},
		{"mint", 0, ""},
	}
	for _, tt := range tests {
		got := TruncateEllipsis(tt.input, tt.maxWidth)
		if got != tt.want {
			t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
		if lipgloss.Width(got) > tt.maxWidth {
			t.Errorf("TruncateEllipsis(%q, %d) width %d", tt.input, tt.maxWidth, lipgloss.Width(got))
		}
	}
}

func TestFit(t *testing.T) {
	for _, s := range []string{"", "mint", "a much longer flavor name", "煙レコのミックス"} {
		if w := lipgloss.Width(Fit(s, 12)); w != 12 {
			t.Errorf("Fit(%q, 12) width = %d", s, w)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("Mint", "40%", 12); got != "Mint     40%" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("Double Apple", "60%", 10); got != "Double Apple 60%" {
		t.Errorf("Row overflow = %q, want single space gap", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}
