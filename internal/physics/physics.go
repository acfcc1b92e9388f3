// Package physics provides the grid geometry shared by bursts and rockets.
package physics

import "math"

// CellAspect is the horizontal stretch applied to burst offsets. Terminal
// cells are roughly twice as tall as they are wide, so without it a round
// burst would render as a vertical ellipse.
const CellAspect = 2.0

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PolarOffset converts an angle (degrees) and radius to a rounded grid
// offset, stretching the horizontal component by aspect.
func PolarOffset(angleDeg, radius, aspect float64) (dx, dy int) {
	rad := DegToRad(angleDeg)
	dx = int(math.Round(math.Cos(rad) * radius * aspect))
	dy = int(math.Round(math.Sin(rad) * radius))
	return dx, dy
}

// ClampMin returns v, or min when v is below it.
func ClampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// Growth models how a burst's maximum radius grows with the tick index:
// max(Floor, Base + tick*Rate).
type Growth struct {
	Base  float64 `yaml:"base"`
	Rate  float64 `yaml:"rate"`
	Floor float64 `yaml:"floor"`
}

// MaxRadius returns the maximum radius at tick f.
func (g Growth) MaxRadius(f int) float64 {
	return math.Max(g.Floor, g.Base+float64(f)*g.Rate)
}
