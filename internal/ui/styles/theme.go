package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Ember orange - focused items, active states
	Secondary lipgloss.Color // Smoke lilac - ratio gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color // saved, valid total
	Error   lipgloss.Color // destructive toasts, invalid total
	Warning lipgloss.Color // incomplete form

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Active  lipgloss.Style // focused field or row
	Cursor  lipgloss.Style
	Tag     lipgloss.Style // flavor tag badge
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#f08a4b"),
	Secondary: lipgloss.Color("#b8a1e3"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5f5f5f"),

	BgBase:   lipgloss.Color("#1c1a19"),
	BgCursor: lipgloss.Color("#33302e"),

	Border:      lipgloss.Color("#5f5f5f"),
	BorderFocus: lipgloss.Color("#f08a4b"),

	Success: lipgloss.Color("#6cc070"),
	Error:   lipgloss.Color("#ff5f5f"),
	Warning: lipgloss.Color("#e5c07b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Tag:     lipgloss.NewStyle().Foreground(t.Secondary),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
