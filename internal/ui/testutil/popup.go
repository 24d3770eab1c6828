package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/ui/popup"
)

// PopupHarness drives a popup.Popup and records the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and records its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the popup under test.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the rendered popup.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// Send delivers msg and returns the resulting command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends each named key in order.
func (h *PopupHarness) Press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.Send(Key(k))
	}
	return cmd
}

// LastCommand returns the most recent non-nil command.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// Commands returns every recorded command.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// ViewContains reports whether the plain view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
