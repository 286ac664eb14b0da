// Package render paints a windowed, level-of-detail view of a grid.
package render

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"lifeview/internal/core"
	"lifeview/internal/placement"
	"lifeview/internal/viewport"
)

// Frame summarizes one draw tick.
type Frame struct {
	Level   int
	Bounds  core.Bounds
	Blocks  int
	Preview int
}

// Renderer draws the grid through a viewport. It keeps no grid data between
// ticks: every Draw issues a fresh query.
type Renderer struct {
	Theme    Theme
	MinAlpha float64
}

// NewRenderer returns a Renderer using theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme, MinAlpha: DefaultMinAlpha}
}

// Draw syncs vp to the canvas, queries g for the visible window at the given
// level and paints the result followed by the placement preview. A nil
// placement controller draws no preview.
func (r *Renderer) Draw(c Canvas, g core.Querier, vp *viewport.Viewport, pl *placement.Controller, level int) Frame {
	if level < 0 {
		level = 0
	}
	sw, sh := c.Size()
	vp.Sync(sw, sh)
	c.Clear(r.Theme.Background)

	f := Frame{Level: level}
	cw, ch, ok := vp.CellSize()
	if !ok {
		return f
	}
	f.Bounds = vp.Bounds()

	if level == 0 {
		for _, cell := range g.Cells(f.Bounds) {
			r.fillCells(c, vp, cell.X, cell.Y, cw, ch, r.Theme.Live)
			f.Blocks++
		}
	} else {
		side := float64(int(1) << level)
		for _, b := range g.Level(f.Bounds, level) {
			col := withAlpha(r.Theme.Live, blockAlpha(b.Density, level, r.MinAlpha))
			r.fillCells(c, vp, b.X, b.Y, cw*side, ch*side, col)
			f.Blocks++
		}
	}

	if pl != nil && pl.Pending() {
		b := pl.Bounds()
		r.fillCells(c, vp, b.X0, b.Y0, cw*float64(b.X1-b.X0), ch*float64(b.Y1-b.Y0), r.Theme.PreviewBox)
		for _, cell := range pl.Footprint() {
			r.fillCells(c, vp, cell.X, cell.Y, cw, ch, r.Theme.Preview)
			f.Preview++
		}
	}
	return f
}

func (r *Renderer) fillCells(c Canvas, vp *viewport.Viewport, x, y int, w, h float64, col color.NRGBA) {
	p, _ := vp.ToScreen(vec.Vec2{X: float64(x), Y: float64(y)})
	c.FillRect(p.X, p.Y, w, h, col)
}
