package draw

import "testing"

func TestNewBufferIsBlank(t *testing.T) {
	b := NewBuffer(60, 22)

	if b.Width() != 60 || b.Height() != 22 {
		t.Fatalf("expected 60x22, got %dx%d", b.Width(), b.Height())
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := b.At(x, y)
			if c.Rune != Blank || c.Color != ColorNone {
				t.Fatalf("cell (%d,%d) not blank: %+v", x, y, c)
			}
		}
	}
}

func TestBufferSet(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		written bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 59, 21, true},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
		{"x at width", 60, 5, false},
		{"y at height", 5, 22, false},
		{"far away", 1000, -1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(60, 22)
			before := snapshot(b)

			b.Set(tt.x, tt.y, '|', ColorRed)

			if tt.written {
				got := b.At(tt.x, tt.y)
				if got.Rune != '|' || got.Color != ColorRed {
					t.Errorf("expected write at (%d,%d), got %+v", tt.x, tt.y, got)
				}
				return
			}

			after := snapshot(b)
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("out-of-range write changed cell %d", i)
				}
			}
		})
	}
}

func TestBufferAtOutOfRange(t *testing.T) {
	b := NewBuffer(4, 4)
	c := b.At(-1, 10)
	if c.Rune != Blank || c.Color != ColorNone {
		t.Errorf("expected blank cell, got %+v", c)
	}
}

func TestBufferSetText(t *testing.T) {
	b := NewBuffer(10, 3)

	n := b.SetText(2, 1, "abc", ColorNone)
	if n != 3 {
		t.Errorf("expected 3 columns, got %d", n)
	}
	if got := b.Row(1); got != "  abc     " {
		t.Errorf("unexpected row %q", got)
	}
}

func TestBufferSetTextTruncates(t *testing.T) {
	b := NewBuffer(5, 1)

	n := b.SetText(3, 0, "hello", ColorNone)
	if n != 2 {
		t.Errorf("expected 2 columns, got %d", n)
	}
	if got := b.Row(0); got != "   he" {
		t.Errorf("unexpected row %q", got)
	}
}

func TestBufferSetTextWide(t *testing.T) {
	b := NewBuffer(6, 1)

	n := b.SetText(0, 0, "你好", ColorNone)
	if n != 4 {
		t.Errorf("expected 4 columns, got %d", n)
	}
	if got := b.Row(0); got != "你好  " {
		t.Errorf("unexpected row %q", got)
	}
	if !b.isWide(0, 0) || !b.isWide(2, 0) {
		t.Error("expected wide cells at columns 0 and 2")
	}

	// A wide rune that would straddle the edge is dropped.
	b = NewBuffer(3, 1)
	if n := b.SetText(0, 0, "你好", ColorNone); n != 2 {
		t.Errorf("expected 2 columns, got %d", n)
	}
	if got := b.Row(0); got != "你 " {
		t.Errorf("unexpected row %q", got)
	}
}

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer(-3, 0)
	b.Set(0, 0, 'x', ColorNone)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("expected empty buffer, got %dx%d", b.Width(), b.Height())
	}
}

func snapshot(b *Buffer) []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}
