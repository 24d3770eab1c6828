package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/kemureco/internal/ui/popup"
)

func TestKey_StringRoundTrip(t *testing.T) {
	for name := range namedKeys {
		assert.Equal(t, name, Key(name).String())
	}
	assert.Equal(t, "a", Key("a").String())
	assert.Equal(t, "7", Key("7").String())
}

func TestLines(t *testing.T) {
	out := "\x1b[1mMint\x1b[0m 40%\nDouble Apple 60%\n\n"

	assert.True(t, ContainsLine(out, "Mint 40%"))
	assert.Equal(t, "Double Apple 60%", FindLine(out, "Apple"))
	assert.Empty(t, FindLine(out, "Grape"))
	assert.Equal(t, []string{"Mint 40%", "Double Apple 60%"}, SplitLines(out))
}

func TestDrain(t *testing.T) {
	assert.Nil(t, Drain(nil))

	cmd := tea.Batch(
		func() tea.Msg { return "a" },
		tea.Batch(func() tea.Msg { return "b" }, func() tea.Msg { return "c" }),
	)
	assert.ElementsMatch(t, []tea.Msg{"a", "b", "c"}, Drain(cmd))
}

type echoPopup struct{ keys []string }

var _ popup.Popup = (*echoPopup)(nil)

func (p *echoPopup) Init() tea.Cmd { return func() tea.Msg { return "init" } }

func (p *echoPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		p.keys = append(p.keys, k.String())
		if k.Type == tea.KeyEnter {
			return p, func() tea.Msg { return "done" }
		}
	}
	return p, nil
}

func (p *echoPopup) View() string { return "keys pressed" }

func (p *echoPopup) SetSize(int, int) {}

func TestPopupHarness(t *testing.T) {
	p := &echoPopup{}
	h := NewPopupHarness(p)
	require.Len(t, h.Commands(), 1)

	assert.Nil(t, h.Press("x", "left"))
	cmd := h.Press("enter")
	require.NotNil(t, cmd)

	assert.Equal(t, []string{"x", "left", "enter"}, p.keys)
	assert.Equal(t, "done", ExecuteCmd(h.LastCommand()))
	assert.True(t, h.ViewContains("pressed"))
	assert.Same(t, p, h.Popup())
}
