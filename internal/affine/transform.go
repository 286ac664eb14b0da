package affine

import (
	"math"

	"lifeview/internal/core"
)

const quarterTurn = math.Pi / 2

// Transform is the pending placement transform: an accumulated flip matrix,
// a separate rotation accumulator quantized on use, and a translation.
// Apply computes Rotation(Angle)·(Matrix·c) + Offset.
type Transform struct {
	Matrix Matrix
	Angle  float64
	Offset core.Cell
}

// New returns the identity transform.
func New() Transform {
	return Transform{Matrix: Identity}
}

// Rotate advances the rotation accumulator by a quarter turn.
func (t *Transform) Rotate() {
	t.Angle = math.Mod(t.Angle+quarterTurn, 2*math.Pi)
}

// FlipH left-multiplies the accumulated matrix by diag(-1, 1).
func (t *Transform) FlipH() {
	t.Matrix = FlipX.Mul(t.Matrix)
}

// FlipV left-multiplies the accumulated matrix by diag(1, -1).
func (t *Transform) FlipV() {
	t.Matrix = FlipY.Mul(t.Matrix)
}

// Rotation returns the quantized rotation component.
func (t Transform) Rotation() Matrix {
	return Rotation(t.Angle)
}

// Linear returns the combined flip and rotation matrix.
func (t Transform) Linear() Matrix {
	return t.Rotation().Mul(t.Matrix)
}

// Apply maps a pattern cell into grid coordinates.
func (t Transform) Apply(c core.Cell) core.Cell {
	return t.Linear().Apply(c).Add(t.Offset)
}

// ApplyAll maps every cell, computing the linear part once.
func (t Transform) ApplyAll(cells []core.Cell) []core.Cell {
	m := t.Linear()
	out := make([]core.Cell, len(cells))
	for i, c := range cells {
		out[i] = m.Apply(c).Add(t.Offset)
	}
	return out
}

// Bounds returns the window covered by a w*h pattern rectangle after the
// transform.
func (t Transform) Bounds(w, h int) core.Bounds {
	if w <= 0 || h <= 0 {
		return core.Bounds{}
	}
	m := t.Linear()
	corners := [4]core.Cell{{}, {X: w - 1}, {Y: h - 1}, {X: w - 1, Y: h - 1}}
	first := m.Apply(corners[0]).Add(t.Offset)
	b := core.Bounds{X0: first.X, Y0: first.Y, X1: first.X, Y1: first.Y}
	for _, c := range corners[1:] {
		p := m.Apply(c).Add(t.Offset)
		b.X0 = min(b.X0, p.X)
		b.Y0 = min(b.Y0, p.Y)
		b.X1 = max(b.X1, p.X)
		b.Y1 = max(b.Y1, p.Y)
	}
	b.X1++
	b.Y1++
	return b
}
