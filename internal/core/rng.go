package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Soup marks each cell of b alive with probability density and returns the
// number of cells set. The same seed always produces the same soup.
func Soup(s Setter, b Bounds, density float64, seed int64) int {
	if b.Empty() || density <= 0 {
		return 0
	}
	rng := NewRNG(seed)
	n := 0
	for y := b.Y0; y < b.Y1; y++ {
		for x := b.X0; x < b.X1; x++ {
			if rng.Chance(density) {
				s.SetAlive(x, y)
				n++
			}
		}
	}
	return n
}

// Centered returns the w*h window centred on the origin.
func Centered(w, h int) Bounds {
	return Bounds{X0: -w / 2, Y0: -h / 2, X1: w - w/2, Y1: h - h/2}
}
