package draw

import "github.com/mattn/go-runewidth"

// Blank is the rune every cell starts with.
const Blank = ' '

// continuation marks the right half of a wide rune written by SetText.
const continuation rune = 0

// Cell is a single character position in a Buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// Buffer is a fixed-size, row-major grid of cells. A new Buffer is allocated
// for every frame; nothing carries over between frames.
type Buffer struct {
	width  int
	height int
	cells  []Cell // Flat slice: [y * width + x]
}

// NewBuffer creates an all-blank buffer of the given dimensions.
// Non-positive dimensions yield an empty buffer that ignores all writes.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = Cell{Rune: Blank, Color: ColorNone}
	}
	return b
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell. Writes outside the buffer are silently dropped.
func (b *Buffer) Set(x, y int, ch rune, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ch, Color: c}
}

// At returns the cell at (x, y), or a blank cell when out of range.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Rune: Blank, Color: ColorNone}
	}
	return b.cells[y*b.width+x]
}

// Row returns the runes of row y as a string, rendering colored cells as
// their plain rune. Continuation cells are skipped.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune == continuation {
			continue
		}
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// SetText writes s starting at column x of row y, one rune per terminal
// column. Wide runes take two cells, the second marked as a continuation.
// Writing stops at the right edge; a wide rune that would straddle it is
// dropped. Returns the number of columns written.
func (b *Buffer) SetText(x, y int, s string, c Color) int {
	if y < 0 || y >= b.height {
		return 0
	}
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		if col >= 0 {
			b.Set(col, y, r, c)
			if w == 2 {
				b.Set(col+1, y, continuation, c)
			}
		}
		col += w
	}
	return col - x
}

// isWide reports whether the cell at (x, y) holds a wide rune followed by
// its continuation cell.
func (b *Buffer) isWide(x, y int) bool {
	return runewidth.RuneWidth(b.At(x, y).Rune) == 2 && b.InBounds(x+1, y) && b.At(x+1, y).Rune == continuation
}
