// Package object holds everything that can be painted onto a frame: the
// starfield, centered captions, the ascending rocket and the burst.
package object

import (
	"math/rand"

	"github.com/tomz197/fireworks/internal/draw"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Buffer *draw.Buffer // Frame being composed
	Rand   *rand.Rand   // Source for every stochastic decision
	Tick   int          // 0-based tick within the current phase
}

// Object is anything that paints itself onto a frame. Objects are stateless
// across ticks; everything they vary by comes from the context.
type Object interface {
	Draw(ctx DrawContext)
}

// DrawAll draws objects in order; later objects overwrite earlier ones.
func DrawAll(ctx DrawContext, objects ...Object) {
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		obj.Draw(ctx)
	}
}
