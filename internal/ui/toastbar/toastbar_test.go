package toastbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/kemureco/internal/toast"
	"github.com/llehouerou/kemureco/internal/ui/testutil"
)

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(toast.State{}, 80))
	assert.Zero(t, Height(toast.State{}, 80))

	closed := toast.State{Toasts: []toast.Toast{{ID: "1", Title: "gone", Open: false}}}
	assert.Empty(t, Render(closed, 80))
}

func TestRender_Toast(t *testing.T) {
	s := toast.State{Toasts: []toast.Toast{
		{ID: "1", Title: "Mix saved", Description: "Winter mint", Open: true},
	}}

	out := Render(s, 80)

	assert.True(t, testutil.ContainsLine(out, "Mix saved"))
	assert.True(t, testutil.ContainsLine(out, "Winter mint"))
	assert.Equal(t, 4, Height(s, 80))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 80, lipgloss.Width(line))
	}
	first := testutil.SplitLines(out)[0]
	assert.True(t, strings.HasPrefix(first, " "), "toast is right-aligned")
}

func TestRender_TruncatesLongText(t *testing.T) {
	s := toast.State{Toasts: []toast.Toast{{
		ID:      "1",
		Title:   "Failed to save mix",
		Open:    true,
		Variant: toast.VariantDestructive,
		Description: "every flavor must be selected and ratios must total 100% " +
			"and this sentence keeps going well past the box",
	}}}

	out := Render(s, 30)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
	assert.True(t, testutil.ContainsLine(out, "…"))
}

func TestRender_NewestFirst(t *testing.T) {
	s := toast.State{Toasts: []toast.Toast{
		{ID: "2", Title: "second", Open: true},
		{ID: "1", Title: "first", Open: true},
	}}

	lines := testutil.SplitLines(Render(s, 60))
	second, first := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "second") {
			second = i
		}
		if strings.Contains(l, "first") {
			first = i
		}
	}
	assert.Less(t, second, first)
}
