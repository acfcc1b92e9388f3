package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/physics"
)

func TestBurstSampleBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	burst := Burst{X: 30, Y: 7, Count: 120, Growth: physics.Growth{Rate: 0.7, Floor: 1}}

	var samples []Sample
	for f := 0; f < 20; f++ {
		maxRadius := burst.Growth.MaxRadius(f)
		samples = burst.Sample(rng, f, samples)

		if len(samples) != burst.Count {
			t.Fatalf("tick %d: expected %d samples, got %d", f, burst.Count, len(samples))
		}

		for _, s := range samples {
			if s.Radius > maxRadius || s.Radius < minRadiusFraction*maxRadius {
				t.Fatalf("tick %d: radius %f outside [%f, %f]", f, s.Radius, minRadiusFraction*maxRadius, maxRadius)
			}

			// Undo the horizontal stretch; rounding adds at most one cell per axis.
			dist := math.Hypot(float64(s.X-burst.X)/physics.CellAspect, float64(s.Y-burst.Y))
			if dist > maxRadius+1 {
				t.Fatalf("tick %d: sample (%d,%d) too far from center: %f", f, s.X, s.Y, dist)
			}
		}
	}
}

func TestBurstColorsFromPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	burst := Burst{X: 0, Y: 0, Count: 600, Growth: physics.Growth{Rate: 0.7, Floor: 1}}

	seen := make(map[draw.Color]int)
	for _, s := range burst.Sample(rng, 3, nil) {
		if s.Color == draw.ColorNone {
			t.Fatal("burst sample without color")
		}
		seen[s.Color]++
	}

	if len(seen) != len(draw.Palette) {
		t.Errorf("expected all %d palette colors, saw %d", len(draw.Palette), len(seen))
	}
}

func TestBurstReusesSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	burst := Burst{Count: 10, Growth: physics.Growth{Floor: 1}}

	dst := make([]Sample, 0, 10)
	out := burst.Sample(rng, 0, dst)
	if &out[0] != &dst[:1][0] {
		t.Error("expected samples to reuse the destination slice")
	}
}

func TestBurstDrawClampsToFrame(t *testing.T) {
	ctx := newCtx(60, 22, 19)
	burst := Burst{X: 0, Y: 0, Count: 200, Growth: physics.Growth{Rate: 0.7, Floor: 1}}

	burst.Draw(ctx)

	colored := 0
	for y := 0; y < 22; y++ {
		for x := 0; x < 60; x++ {
			c := ctx.Buffer.At(x, y)
			if c.Color != draw.ColorNone {
				colored++
				if c.Rune != draw.Glyph {
					t.Errorf("colored cell (%d,%d) holds %q", x, y, c.Rune)
				}
			}
		}
	}
	if colored == 0 {
		t.Error("expected some particles inside the frame")
	}
}

func TestBurstSameSeedSameSamples(t *testing.T) {
	burst := Burst{X: 30, Y: 7, Count: 50, Growth: physics.Growth{Rate: 0.7, Floor: 1}}

	a := burst.Sample(rand.New(rand.NewSource(99)), 5, nil)
	b := burst.Sample(rand.New(rand.NewSource(99)), 5, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
