package object

import (
	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/physics"
)

// RocketGlyph marks the ascending rocket.
const RocketGlyph = '|'

// RocketClimb is how many rows the rocket rises per tick.
const RocketClimb = 2

// Rocket is a single marker rising from GroundY toward ApexY, one step per tick.
type Rocket struct {
	X       int // Column
	GroundY int // Row at step 0
	ApexY   int // Highest row the rocket may reach
}

// Y returns the rocket's row at the given step. The rocket never rises
// above its apex.
func (r Rocket) Y(step int) int {
	return physics.ClampMin(r.GroundY-RocketClimb*step, r.ApexY)
}

// Draw implements Object; the tick is the ascent step.
func (r Rocket) Draw(ctx DrawContext) {
	ctx.Buffer.Set(r.X, r.Y(ctx.Tick), RocketGlyph, draw.ColorNone)
}

// LaunchTicks returns the number of ascent ticks needed to climb from
// groundY to apexY, but never fewer than min.
func LaunchTicks(groundY, apexY, min int) int {
	return physics.ClampMin((groundY-apexY)/RocketClimb, min)
}
