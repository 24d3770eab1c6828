// Package testutil provides helpers for testing bubbletea components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine reports whether any line of the plain output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first plain line containing substr.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits plain output into lines without trailing blank lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

var namedKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEscape,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"backspace":   tea.KeyBackspace,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"ctrl+s":      tea.KeyCtrlS,
	"ctrl+c":      tea.KeyCtrlC,
	"f1":          tea.KeyF1,
	"f2":          tea.KeyF2,
}

// Key builds the KeyMsg whose String() is name. Unknown names are sent
// as typed runes.
func Key(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil cmd.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Drain runs cmd and flattens any tea.BatchMsg it produces.
func Drain(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Drain(c)...)
	}
	return out
}
