// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the screens.
const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// HeaderHeight is the space for a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is the vertical overhead of a titled panel.
	PanelOverhead = BorderHeight + HeaderHeight

	// RatioBarWidth is the width of the bar drawn next to each ratio.
	RatioBarWidth = 20

	// MinRatioBarWidth hides ratio bars on narrow terminals.
	MinRatioBarWidth = 6

	// LabelWidth is the width reserved for a flavor label in lists.
	LabelWidth = 32
)
