// Package elementary runs a one-dimensional Wolfram automaton and exposes
// its history as a two-dimensional grid: row y holds generation y.
package elementary

import (
	"cmp"
	"slices"
	"strconv"
	"sync"

	"lifeview/internal/core"
)

// MaxRows bounds the retained history; older rows are dropped.
const MaxRows = 1 << 14

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map. Odd rules turn the empty
// background on and cannot run on an unbounded row, so they are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		switch {
		case err != nil || parsed < 0 || parsed > 255:
		case parsed%2 == 1:
			core.Logger().Warn("elementary rule lights the background, keeping default", "rule", parsed)
		default:
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
type Elementary struct {
	mu    sync.RWMutex
	rule  uint8
	first int
	rows  []map[int]struct{}
	gen   int64
}

// New creates an automaton seeded with a single live cell at the origin.
func New(rule uint8) *Elementary {
	e := &Elementary{rule: rule &^ 1}
	e.rows = []map[int]struct{}{{0: {}}}
	return e
}

// Name returns the engine identifier.
func (e *Elementary) Name() string { return "elementary" }

// Rule returns the Wolfram code.
func (e *Elementary) Rule() uint8 { return e.rule }

// SetAlive marks x alive in row y, extending the history when y lies
// beyond the newest generation.
func (e *Elementary) SetAlive(x, y int) {
	e.mu.Lock()
	e.set(x, y)
	e.mu.Unlock()
}

func (e *Elementary) set(x, y int) {
	if y < e.first {
		return
	}
	for y >= e.first+len(e.rows) {
		e.rows = append(e.rows, map[int]struct{}{})
	}
	e.rows[y-e.first][x] = struct{}{}
}

// Edit runs fn while holding the write lock.
func (e *Elementary) Edit(fn func(core.Setter)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(lockedSetter{e})
}

type lockedSetter struct{ e *Elementary }

func (s lockedSetter) SetAlive(x, y int) { s.e.set(x, y) }

// Advance appends steps new rows, each computed from the one before.
func (e *Elementary) Advance(steps int) {
	if steps <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 0; i < steps; i++ {
		e.step()
	}
}

func (e *Elementary) step() {
	last := e.rows[len(e.rows)-1]
	next := make(map[int]struct{}, len(last))
	seen := make(map[int]struct{}, len(last)*3)
	for x := range last {
		for dx := -1; dx <= 1; dx++ {
			c := x + dx
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			idx := bit(last, c-1)<<2 | bit(last, c)<<1 | bit(last, c+1)
			if (e.rule>>idx)&1 == 1 {
				next[c] = struct{}{}
			}
		}
	}
	e.rows = append(e.rows, next)
	if len(e.rows) > MaxRows {
		drop := len(e.rows) - MaxRows
		e.rows = slices.Delete(e.rows, 0, drop)
		e.first += drop
	}
	e.gen++
}

func bit(row map[int]struct{}, x int) uint8 {
	if _, ok := row[x]; ok {
		return 1
	}
	return 0
}

// Population returns the live cells in the newest row.
func (e *Elementary) Population() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.rows[len(e.rows)-1])
}

// Generation returns the number of generations advanced so far.
func (e *Elementary) Generation() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gen
}

// Cells returns the live history cells inside b ordered by row then column.
func (e *Elementary) Cells(b core.Bounds) []core.Cell {
	if b.Empty() {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []core.Cell
	y0 := max(b.Y0, e.first)
	y1 := min(b.Y1, e.first+len(e.rows))
	for y := y0; y < y1; y++ {
		start := len(out)
		for x := range e.rows[y-e.first] {
			if x >= b.X0 && x < b.X1 {
				out = append(out, core.Cell{X: x, Y: y})
			}
		}
		slices.SortFunc(out[start:], func(a, b core.Cell) int { return cmp.Compare(a.X, b.X) })
	}
	return out
}

// Level aggregates history cells into 2^level blocks that intersect b.
func (e *Elementary) Level(b core.Bounds, level int) []core.Block {
	if b.Empty() {
		return nil
	}
	if level < 0 {
		level = 0
	}
	size := 1 << level
	counts := make(map[core.Cell]int)
	var order []core.Cell
	for _, c := range e.Cells(b.Align(size)) {
		key := core.Cell{X: core.FloorDiv(c.X, size) * size, Y: core.FloorDiv(c.Y, size) * size}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	slices.SortFunc(order, func(a, b core.Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	out := make([]core.Block, len(order))
	for i, k := range order {
		out[i] = core.Block{X: k.X, Y: k.Y, Density: float64(counts[k])}
	}
	return out
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Grid {
		c := FromMap(cfg)
		return New(c.Rule)
	})
}
