package ui

// Base carries the focus and size state every screen component shares.
// Embed it to get SetFocused, SetSize and the matching getters.
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives key input.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives key input.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the outer dimensions, border included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the outer dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the outer width.
func (b Base) Width() int {
	return b.width
}

// Height returns the outer height.
func (b Base) Height() int {
	return b.height
}

// InnerWidth returns the width available inside a panel border.
func (b Base) InnerWidth() int {
	return max(0, b.width-BorderWidth)
}

// RowsHeight returns the number of list rows that fit once overhead
// lines are removed. It never goes below one.
func (b Base) RowsHeight(overhead int) int {
	return max(1, b.height-overhead)
}
