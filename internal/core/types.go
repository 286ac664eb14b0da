package core

// Setter marks individual cells alive.
type Setter interface {
	SetAlive(x, y int)
}

// Querier answers spatial queries against the current generation.
type Querier interface {
	// Cells returns the live cells inside b.
	Cells(b Bounds) []Cell
	// Level returns aggregated live-cell counts for every 2^level block that
	// intersects b. Block origins are aligned to multiples of 2^level.
	Level(b Bounds, level int) []Block
}

// Grid is the contract a simulation engine must implement to be driven by
// the viewer.
type Grid interface {
	Setter
	Querier

	// Advance steps the simulation forward by the given number of
	// generations.
	Advance(steps int)
	// Edit runs fn with exclusive access so a batch of writes is never
	// observed half-applied by concurrent queries.
	Edit(fn func(Setter))

	Population() int
	Generation() int64
}

// Factory constructs a Grid using an optional configuration map.
type Factory func(cfg map[string]string) Grid

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}
