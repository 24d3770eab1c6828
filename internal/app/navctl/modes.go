// Package navctl tracks the active screen and routes input to it.
package navctl

// Screen identifies the main view.
type Screen string

const (
	// ScreenMixes lists saved mixes.
	ScreenMixes Screen = "mixes"
	// ScreenFlavors browses the flavor catalog.
	ScreenFlavors Screen = "flavors"
	// ScreenEditor creates or edits a mix.
	ScreenEditor Screen = "editor"
)

// ParseScreen returns the persisted screen, defaulting to the mix list.
// The editor is never restored.
func ParseScreen(s string) Screen {
	if Screen(s) == ScreenFlavors {
		return ScreenFlavors
	}
	return ScreenMixes
}

// KeyContext returns the keymap context of the screen.
func (s Screen) KeyContext() string {
	switch s {
	case ScreenFlavors:
		return "flavorlist"
	case ScreenEditor:
		return "mixform"
	case ScreenMixes:
		return "mixlist"
	}
	return "global"
}

// Persistable returns the screen to save for the next start.
func (s Screen) Persistable() Screen {
	if s == ScreenEditor {
		return ScreenMixes
	}
	return s
}
