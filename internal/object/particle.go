package object

import (
	"math/rand"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/physics"
)

// Radius fraction range: each particle lands between 30% and 100% of the
// burst's current maximum radius.
const (
	minRadiusFraction = 0.3
	maxRadiusFraction = 1.0
)

// Sample is one particle position for one tick. Samples have no identity;
// a new set is drawn every tick.
type Sample struct {
	X, Y   int
	Radius float64
	Color  draw.Color
}

// Burst is an exploding firework centered on (X, Y). The burst is not
// simulated: every tick re-samples Count particles whose radius distribution
// widens with the tick index.
type Burst struct {
	X, Y   int
	Count  int
	Growth physics.Growth
}

// Sample draws the burst's particles for tick f, appending to dst[:0].
func (b Burst) Sample(rng *rand.Rand, f int, dst []Sample) []Sample {
	dst = dst[:0]
	maxRadius := b.Growth.MaxRadius(f)

	for i := 0; i < b.Count; i++ {
		angle := rng.Float64() * 360
		fraction := minRadiusFraction + rng.Float64()*(maxRadiusFraction-minRadiusFraction)
		radius := maxRadius * fraction

		dx, dy := physics.PolarOffset(angle, radius, physics.CellAspect)

		dst = append(dst, Sample{
			X:      b.X + dx,
			Y:      b.Y + dy,
			Radius: radius,
			Color:  draw.Palette[rng.Intn(len(draw.Palette))],
		})
	}

	return dst
}

// Draw implements Object; the tick is the burst frame index.
// Particles outside the frame are dropped.
func (b Burst) Draw(ctx DrawContext) {
	for _, s := range b.Sample(ctx.Rand, ctx.Tick, make([]Sample, 0, max(b.Count, 0))) {
		ctx.Buffer.Set(s.X, s.Y, draw.Glyph, s.Color)
	}
}
