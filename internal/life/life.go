package life

import (
	"cmp"
	"slices"
	"sync"

	"lifeview/internal/core"
)

// Engine runs a Life-like automaton on an unbounded sparse grid. Mutations
// and queries are serialized so a query never observes a torn generation.
type Engine struct {
	mu   sync.RWMutex
	rule Rule
	cur  map[core.Cell]struct{}
	gen  int64

	counts map[core.Cell]uint8
}

// New returns an engine whose initial allocation is sized for w*h cells.
func New(w, h int, rule Rule) *Engine {
	hint := 0
	if w > 0 && h > 0 {
		hint = w * h / 8
	}
	return &Engine{
		rule:   rule,
		cur:    make(map[core.Cell]struct{}, hint),
		counts: make(map[core.Cell]uint8, hint),
	}
}

// NewWithConfig parses the configured rule and builds an engine.
func NewWithConfig(cfg Config) (*Engine, error) {
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	return New(cfg.Width, cfg.Height, rule), nil
}

// Name returns the engine identifier.
func (e *Engine) Name() string { return "life" }

// Rule returns the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// SetAlive marks (x, y) alive.
func (e *Engine) SetAlive(x, y int) {
	e.mu.Lock()
	e.cur[core.Cell{X: x, Y: y}] = struct{}{}
	e.mu.Unlock()
}

// Edit runs fn while holding the write lock.
func (e *Engine) Edit(fn func(core.Setter)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(lockedSetter{e})
}

type lockedSetter struct{ e *Engine }

func (s lockedSetter) SetAlive(x, y int) { s.e.cur[core.Cell{X: x, Y: y}] = struct{}{} }

// Population returns the number of live cells.
func (e *Engine) Population() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cur)
}

// Generation returns the number of generations advanced so far.
func (e *Engine) Generation() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gen
}

// Advance steps the simulation forward by steps generations.
func (e *Engine) Advance(steps int) {
	if steps <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 0; i < steps; i++ {
		e.step()
	}
}

func (e *Engine) step() {
	clear(e.counts)
	for c := range e.cur {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				e.counts[core.Cell{X: c.X + dx, Y: c.Y + dy}]++
			}
		}
	}
	nxt := make(map[core.Cell]struct{}, len(e.cur))
	for c, n := range e.counts {
		_, alive := e.cur[c]
		if e.rule.next(alive, n) {
			nxt[c] = struct{}{}
		}
	}
	// Cells with zero neighbours never appear in counts; B0 rules would need
	// them, and an unbounded B0 universe cannot be represented sparsely.
	e.cur = nxt
	e.gen++
}

// Cells returns the live cells inside b ordered by row then column.
func (e *Engine) Cells(b core.Bounds) []core.Cell {
	if b.Empty() {
		return nil
	}
	e.mu.RLock()
	out := make([]core.Cell, 0, min(len(e.cur), 1024))
	for c := range e.cur {
		if b.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	e.mu.RUnlock()
	slices.SortFunc(out, compareCells)
	return out
}

// Level aggregates live cells into 2^level blocks that intersect b.
func (e *Engine) Level(b core.Bounds, level int) []core.Block {
	if b.Empty() {
		return nil
	}
	if level < 0 {
		level = 0
	}
	size := 1 << level
	aligned := b.Align(size)

	e.mu.RLock()
	counts := make(map[core.Cell]int)
	for c := range e.cur {
		if !aligned.Contains(c.X, c.Y) {
			continue
		}
		key := core.Cell{X: core.FloorDiv(c.X, size) * size, Y: core.FloorDiv(c.Y, size) * size}
		counts[key]++
	}
	e.mu.RUnlock()

	out := make([]core.Block, 0, len(counts))
	for c, n := range counts {
		out = append(out, core.Block{X: c.X, Y: c.Y, Density: float64(n)})
	}
	slices.SortFunc(out, func(a, b core.Block) int {
		return compareCells(core.Cell{X: a.X, Y: a.Y}, core.Cell{X: b.X, Y: b.Y})
	})
	return out
}

func compareCells(a, b core.Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Seed fills the configured soup, if any, and returns the cells set.
func (e *Engine) Seed(c Config) int {
	n := 0
	e.Edit(func(s core.Setter) {
		n = core.Soup(s, core.Centered(c.Width, c.Height), c.Density, c.Seed)
	})
	return n
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Grid {
		c := FromMap(cfg)
		e, err := NewWithConfig(c)
		if err != nil {
			core.Logger().Warn("falling back to B3/S23", "rule", c.Rule, "err", err)
			e = New(c.Width, c.Height, Conway)
		}
		if n := e.Seed(c); n > 0 {
			core.Logger().Info("seeded soup", "cells", n, "seed", c.Seed, "density", c.Density)
		}
		return e
	})
}
