package object

import (
	"github.com/mattn/go-runewidth"
	"github.com/tomz197/fireworks/internal/draw"
)

// Text is a caption centered on the middle row of the frame.
type Text struct {
	Value string
}

// Draw implements Object.
func (t Text) Draw(ctx DrawContext) {
	PaintCenteredText(ctx.Buffer, t.Value)
}

// PaintCenteredText writes text on row height/2, starting at column
// (width - textWidth) / 2 (never below 0). Text past the right edge is cut.
// Widths are terminal columns, so full-width characters count as two.
func PaintCenteredText(b *draw.Buffer, text string) {
	if text == "" {
		return
	}
	y := b.Height() / 2
	x := (b.Width() - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	b.SetText(x, y, text, draw.ColorNone)
}
