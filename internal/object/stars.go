package object

import (
	"math/rand"

	"github.com/tomz197/fireworks/internal/draw"
)

// StarGlyph is the background dot.
const StarGlyph = '.'

// Stars scatters Count uncolored dots over the frame.
type Stars struct {
	Count int
}

// Draw implements Object.
func (s Stars) Draw(ctx DrawContext) {
	PaintStars(ctx.Buffer, ctx.Rand, s.Count)
}

// PaintStars sets count uniformly random cells to StarGlyph. Repeated picks
// simply overwrite.
func PaintStars(b *draw.Buffer, rng *rand.Rand, count int) {
	if b.Width() == 0 || b.Height() == 0 {
		return
	}
	for i := 0; i < count; i++ {
		x := rng.Intn(b.Width())
		y := rng.Intn(b.Height())
		b.Set(x, y, StarGlyph, draw.ColorNone)
	}
}
