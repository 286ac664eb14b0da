package core

import "math"

// Cell identifies one cell of the unbounded grid.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell { return Cell{X: c.X + o.X, Y: c.Y + o.Y} }

// Block is one LOD sample: the origin of a 2^level square and the number of
// live cells inside it.
type Block struct {
	X, Y    int
	Density float64
}

// Bounds is a half-open integer window [X0,X1) x [Y0,Y1).
type Bounds struct {
	X0, Y0, X1, Y1 int
}

// BoundsFor returns the smallest window covering the continuous rectangle
// with origin (x, y) and size (w, h).
func BoundsFor(x, y, w, h float64) Bounds {
	return Bounds{
		X0: int(math.Floor(x)),
		Y0: int(math.Floor(y)),
		X1: int(math.Ceil(x + w)),
		Y1: int(math.Ceil(y + h)),
	}
}

// Empty reports whether b contains no cells.
func (b Bounds) Empty() bool { return b.X1 <= b.X0 || b.Y1 <= b.Y0 }

// Contains reports whether (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X0 && x < b.X1 && y >= b.Y0 && y < b.Y1
}

// Align expands b outwards so every edge falls on a multiple of size.
func (b Bounds) Align(size int) Bounds {
	if size <= 1 {
		return b
	}
	return Bounds{
		X0: FloorDiv(b.X0, size) * size,
		Y0: FloorDiv(b.Y0, size) * size,
		X1: (FloorDiv(b.X1-1, size) + 1) * size,
		Y1: (FloorDiv(b.Y1-1, size) + 1) * size,
	}
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
