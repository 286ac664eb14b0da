// Package placement holds a decoded pattern "on deck" while the user moves,
// rotates and mirrors it, and commits it to a grid in one exclusive edit.
package placement

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"lifeview/internal/affine"
	"lifeview/internal/core"
	"lifeview/internal/rle"
)

// Controller owns the pending placement. The zero value has nothing pending.
type Controller struct {
	pattern   *rle.Pattern
	transform affine.Transform
}

// Load puts p on deck with an identity transform. A nil pattern discards.
func (c *Controller) Load(p *rle.Pattern) {
	if p == nil {
		c.Discard()
		return
	}
	c.pattern = p
	c.transform = affine.New()
}

// Pending reports whether a pattern is on deck.
func (c *Controller) Pending() bool { return c.pattern != nil }

// Pattern returns the pattern on deck, or nil.
func (c *Controller) Pattern() *rle.Pattern { return c.pattern }

// Transform returns the current transform.
func (c *Controller) Transform() affine.Transform { return c.transform }

// SetOffset moves the pattern origin to the cell containing the logical
// point p.
func (c *Controller) SetOffset(p vec.Vec2) {
	c.transform.Offset = core.Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// CenterOn positions the transformed footprint so that its centre lies on
// the cell containing p.
func (c *Controller) CenterOn(p vec.Vec2) {
	if c.pattern == nil {
		c.SetOffset(p)
		return
	}
	t := c.transform
	t.Offset = core.Cell{}
	b := t.Bounds(c.pattern.Width, c.pattern.Height)
	cx := b.X0 + (b.X1-b.X0)/2
	cy := b.Y0 + (b.Y1-b.Y0)/2
	c.transform.Offset = core.Cell{
		X: int(math.Floor(p.X)) - cx,
		Y: int(math.Floor(p.Y)) - cy,
	}
}

// Rotate turns the pending pattern a quarter turn.
func (c *Controller) Rotate() {
	if c.pattern != nil {
		c.transform.Rotate()
	}
}

// FlipH mirrors the pending pattern horizontally.
func (c *Controller) FlipH() {
	if c.pattern != nil {
		c.transform.FlipH()
	}
}

// FlipV mirrors the pending pattern vertically.
func (c *Controller) FlipV() {
	if c.pattern != nil {
		c.transform.FlipV()
	}
}

// Footprint returns the grid cells the pattern would occupy if committed now.
func (c *Controller) Footprint() []core.Cell {
	if c.pattern == nil {
		return nil
	}
	return c.transform.ApplyAll(c.pattern.Cells)
}

// Bounds returns the transformed bounding rectangle of the pattern.
func (c *Controller) Bounds() core.Bounds {
	if c.pattern == nil {
		return core.Bounds{}
	}
	return c.transform.Bounds(c.pattern.Width, c.pattern.Height)
}

// Commit writes the footprint into g inside a single Edit, so concurrent
// queries see either none or all of it, then clears the deck. It returns the
// number of cells written; with nothing pending it does nothing.
func (c *Controller) Commit(g core.Grid) int {
	if c.pattern == nil || g == nil {
		return 0
	}
	cells := c.Footprint()
	g.Edit(func(s core.Setter) {
		for _, cell := range cells {
			s.SetAlive(cell.X, cell.Y)
		}
	})
	core.Logger().Debug("placement committed", "cells", len(cells), "offset", c.transform.Offset)
	c.Discard()
	return len(cells)
}

// Discard drops the pending pattern without writing anything.
func (c *Controller) Discard() {
	c.pattern = nil
	c.transform = affine.New()
}
