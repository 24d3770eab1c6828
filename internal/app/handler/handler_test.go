package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults(t *testing.T) {
	assert.False(t, NotHandled.Handled)
	assert.Nil(t, NotHandled.Cmd)

	assert.True(t, HandledNoCmd.Handled)
	assert.Nil(t, HandledNoCmd.Cmd)

	r := Handled(func() tea.Msg { return "x" })
	assert.True(t, r.Handled)
	require.NotNil(t, r.Cmd)
	assert.Equal(t, "x", r.Cmd())
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	record := func(name string, res Result) Handler {
		return func(tea.KeyMsg) Result {
			calls = append(calls, name)
			return res
		}
	}

	r := Chain(tea.KeyMsg{Type: tea.KeyEnter},
		record("popup", NotHandled),
		record("global", Handled(func() tea.Msg { return "global" })),
		record("screen", HandledNoCmd),
	)

	assert.Equal(t, []string{"popup", "global"}, calls)
	require.True(t, r.Handled)
	assert.Equal(t, "global", r.Cmd())
}

func TestChain_PassesKey(t *testing.T) {
	var got string
	Chain(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, func(k tea.KeyMsg) Result {
		got = k.String()
		return NotHandled
	})
	assert.Equal(t, "d", got)
}

func TestChain_NoneHandled(t *testing.T) {
	r := Chain(tea.KeyMsg{Type: tea.KeyEnter}, func(tea.KeyMsg) Result { return NotHandled })
	assert.Equal(t, NotHandled, r)

	assert.Equal(t, NotHandled, Chain(tea.KeyMsg{Type: tea.KeyEnter}))
}
