// Package affine implements shape-preserving integer transforms for pattern
// placement: flips and quarter-turn rotations plus a translation.
package affine

import (
	"fmt"
	"math"

	"lifeview/internal/core"
)

// Matrix is a 2x2 integer matrix
//
//	[A B]
//	[C D]
//
// whose entries stay in {-1,0,1} with determinant ±1.
type Matrix struct {
	A, B, C, D int
}

var (
	// Identity leaves coordinates unchanged.
	Identity = Matrix{A: 1, D: 1}
	// FlipX mirrors across the vertical axis, diag(-1, 1).
	FlipX = Matrix{A: -1, D: 1}
	// FlipY mirrors across the horizontal axis, diag(1, -1).
	FlipY = Matrix{A: 1, D: -1}
)

// Rotation quantizes theta to the nearest exact quarter turn using
// round(cos θ) and round(sin θ).
func Rotation(theta float64) Matrix {
	c := int(math.Round(math.Cos(theta)))
	s := int(math.Round(math.Sin(theta)))
	return mustValid(Matrix{A: c, B: -s, C: s, D: c})
}

// Mul returns m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	return mustValid(Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	})
}

// Apply returns m·c.
func (m Matrix) Apply(c core.Cell) core.Cell {
	return core.Cell{X: m.A*c.X + m.B*c.Y, Y: m.C*c.X + m.D*c.Y}
}

// Det returns the determinant.
func (m Matrix) Det() int { return m.A*m.D - m.B*m.C }

// Validate reports whether m is a rotation/reflection with unit entries.
func (m Matrix) Validate() error {
	for _, v := range [4]int{m.A, m.B, m.C, m.D} {
		if v < -1 || v > 1 {
			return fmt.Errorf("affine: entry %d outside {-1,0,1} in %+v", v, m)
		}
	}
	if d := m.Det(); d != 1 && d != -1 {
		return fmt.Errorf("affine: determinant %d in %+v", d, m)
	}
	return nil
}

func mustValid(m Matrix) Matrix {
	if checkInvariants {
		if err := m.Validate(); err != nil {
			panic(err)
		}
	}
	return m
}
