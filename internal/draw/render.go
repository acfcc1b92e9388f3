package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Renderer turns a Buffer into a full-screen repaint on a writer.
type Renderer struct {
	out    *ChunkWriter
	glyphs map[Color]string // Pre-styled Glyph per palette color
}

// NewRenderer creates a renderer writing to w. Colors always use the basic
// ANSI profile so the stream is the same whether or not w is a terminal.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.ANSI)

	glyphs := make(map[Color]string, len(ansi))
	for c, fg := range ansi {
		glyphs[c] = lr.NewStyle().Foreground(fg).Render(string(Glyph))
	}

	return &Renderer{
		out:    NewChunkWriter(w),
		glyphs: glyphs,
	}
}

// Render clears the screen, homes the cursor and repaints every cell of b,
// one line per row. The frame is flushed before Render returns.
func (r *Renderer) Render(b *Buffer) error {
	r.out.WriteString(ClearHome)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			cell := b.At(x, y)

			if cell.Rune == continuation {
				// Only reachable when the wide rune before it was overwritten.
				r.out.WriteRune(Blank)
				continue
			}

			if cell.Color != ColorNone {
				r.out.WriteString(r.glyphs[cell.Color])
				continue
			}

			switch {
			case b.isWide(x, y):
				r.out.WriteRune(cell.Rune)
				x++
			case runewidth.RuneWidth(cell.Rune) == 2:
				// Wide rune that lost its right half; keep the row width exact.
				r.out.WriteRune(Blank)
			default:
				r.out.WriteRune(cell.Rune)
			}
		}
		r.out.WriteByte('\n')
	}

	return r.out.Flush()
}
