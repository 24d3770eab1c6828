package cursor

import "testing"

func TestMove_Clamps(t *testing.T) {
	c := New(0)

	c.Move(-1, 5, 10)
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", c.Pos())
	}

	c.Move(10, 5, 10)
	if c.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", c.Pos())
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(2)
	c.Jump(3, 10, 5)
	c.Move(1, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("got pos=%d offset=%d, want 0/0", c.Pos(), c.Offset())
	}
}

func TestScroll_KeepsMargin(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		moves      int
		wantPos    int
		wantOffset int
	}{
		{"inside viewport", 1, 3, 3, 0},
		{"scrolls before bottom margin", 1, 4, 4, 1},
		{"far down", 1, 15, 15, 12},
		{"last row", 1, 30, 19, 15},
		{"no margin", 0, 5, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			for range tt.moves {
				c.Move(1, 20, 5)
			}
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("pos=%d offset=%d, want %d/%d", c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestScroll_UpKeepsMargin(t *testing.T) {
	c := New(1)
	c.Jump(19, 20, 5)
	c.Move(-3, 20, 5)
	if c.Pos() != 16 || c.Offset() != 15 {
		t.Errorf("pos=%d offset=%d, want 16/15", c.Pos(), c.Offset())
	}
	c.Move(-1, 20, 5)
	if c.Offset() != 14 {
		t.Errorf("offset=%d, want 14", c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 4)

	if !c.ClampToBounds(3, 4) {
		t.Error("ClampToBounds() = false, want true")
	}
	if c.Pos() != 2 || c.Offset() != 0 {
		t.Errorf("pos=%d offset=%d, want 2/0", c.Pos(), c.Offset())
	}
	if c.ClampToBounds(3, 4) {
		t.Error("second ClampToBounds() = true, want false")
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(7, 10, 4)

	start, end := c.VisibleRange(10, 4)
	if start != 4 || end != 8 {
		t.Errorf("VisibleRange = [%d,%d), want [4,8)", start, end)
	}

	start, end = New(0).VisibleRange(2, 4)
	if start != 0 || end != 2 {
		t.Errorf("short list = [%d,%d), want [0,2)", start, end)
	}

	start, end = c.VisibleRange(0, 4)
	if start != 0 || end != 0 {
		t.Errorf("empty = [%d,%d), want [0,0)", start, end)
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		want    int
		handled bool
	}{
		{"j", 0, 1, true},
		{"down", 0, 1, true},
		{"k", 3, 2, true},
		{"up", 0, 0, true},
		{"g", 5, 0, true},
		{"G", 0, 9, true},
		{"end", 0, 9, true},
		{"ctrl+d", 0, 2, true},
		{"pgup", 5, 3, true},
		{"x", 4, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(0)
			c.Jump(tt.start, 10, 4)
			handled := c.HandleKey(tt.key, 10, 4)
			if handled != tt.handled {
				t.Errorf("handled = %v, want %v", handled, tt.handled)
			}
			if c.Pos() != tt.want {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.want)
			}
		})
	}
}
