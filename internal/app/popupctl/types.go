// Package popupctl manages the modal popups drawn over the screens.
package popupctl

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Help
	Confirm
)

// Priority defines which popup receives keys (highest priority first).
var Priority = []Type{
	Confirm,
	Help,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Help,
	Confirm,
}
