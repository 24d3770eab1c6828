// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor holds a position and a scroll offset. The list length and the
// viewport height are passed in on every call because both change as
// mixes are saved or the terminal is resized.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below pos
}

// New creates a cursor at the top of the list.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump places the cursor at pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scroll(listLen, height)
}

// Reset returns to the top of the list.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ClampToBounds pulls the cursor back inside a list that shrank.
// It reports whether the position changed.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	old := c.pos
	c.Jump(c.pos, listLen, height)
	return c.pos != old
}

// VisibleRange returns the half-open range of rows to draw.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies list navigation keys and reports whether key was one.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Jump(0, listLen, height)
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "pgdown", "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "pgup", "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
