package render

import (
	"image/color"
	"math"
)

// DefaultMinAlpha keeps sparse LOD blocks visible.
const DefaultMinAlpha = 0.15

// blockAlpha converts an LOD density (live cells in a 2^level block) into an
// opacity in [minAlpha, 1].
func blockAlpha(density float64, level int, minAlpha float64) float64 {
	if level <= 0 {
		return 1
	}
	full := math.Ldexp(1, 2*level)
	a := density / full
	if a > 1 {
		a = 1
	}
	return math.Max(minAlpha, a)
}

// withAlpha scales the colour's alpha channel by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a <= 0 {
		c.A = 0
		return c
	}
	if a >= 1 {
		return c
	}
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}

// nrgbaFloats returns the straight-alpha components of c in [0, 1].
func nrgbaFloats(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}
