// Package viewport maps between screen pixels and the unbounded logical cell
// space under pan and anchor-preserving zoom.
package viewport

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"lifeview/internal/core"
)

const (
	// DefaultZoomSpeed is the fraction of the rectangle consumed per wheel unit.
	DefaultZoomSpeed = 0.1
	// DefaultMinWidth is the smallest logical width zoom-in may reach.
	DefaultMinWidth = 2
	// maxZoomStep keeps a single tick from collapsing the rectangle.
	maxZoomStep = 0.9
	// panQuantum is the sub-pixel resolution of pan deltas. Quantized deltas
	// add and cancel exactly while the accumulator stays below 2^43 pixels.
	panQuantum = 1 << 10
)

// Rect is a rectangle in logical cell coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Config seeds a Viewport.
type Config struct {
	Rect      Rect
	MinWidth  float64
	ZoomSpeed float64
}

// Viewport owns the visible logical rectangle. The cell size is derived from
// the screen size on every Sync and is unspecified before the first one.
//
// The logical origin is base + pan/cellSize: drags accumulate in screen
// pixels against a rebased origin so that a drag and its reverse restore the
// rectangle exactly.
type Viewport struct {
	base vec.Vec2
	pan  vec.Vec2
	w, h float64

	minW, minH float64
	zoomSpeed  float64

	screenW, screenH float64
	cellW, cellH     float64
	synced           bool
}

// New constructs a Viewport, clamping degenerate sizes to the minimum.
func New(cfg Config) *Viewport {
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = DefaultMinWidth
	}
	if cfg.ZoomSpeed <= 0 {
		cfg.ZoomSpeed = DefaultZoomSpeed
	}
	v := &Viewport{
		base:      vec.Vec2{X: cfg.Rect.X, Y: cfg.Rect.Y},
		w:         cfg.Rect.W,
		h:         cfg.Rect.H,
		minW:      cfg.MinWidth,
		minH:      cfg.MinWidth,
		zoomSpeed: cfg.ZoomSpeed,
	}
	if v.w < v.minW {
		v.w = v.minW
	}
	if v.h < v.minH {
		v.h = v.minH
	}
	return v
}

// Rect returns the visible logical rectangle.
func (v *Viewport) Rect() Rect {
	o := v.Origin()
	return Rect{X: o.X, Y: o.Y, W: v.w, H: v.h}
}

// Origin returns the logical coordinate of the top-left screen corner.
func (v *Viewport) Origin() vec.Vec2 {
	if !v.synced {
		return v.base
	}
	return vec.Vec2{X: v.base.X + v.pan.X/v.cellW, Y: v.base.Y + v.pan.Y/v.cellH}
}

// Bounds returns the integer query window covering the visible rectangle.
func (v *Viewport) Bounds() core.Bounds {
	r := v.Rect()
	return core.BoundsFor(r.X, r.Y, r.W, r.H)
}

// Ready reports whether a draw tick has derived the cell size yet.
func (v *Viewport) Ready() bool { return v.synced }

// CellSize returns the on-screen size of one cell.
func (v *Viewport) CellSize() (w, h float64, ok bool) {
	return v.cellW, v.cellH, v.synced
}

// ZoomSpeed returns the fraction of the rectangle consumed per wheel unit.
func (v *Viewport) ZoomSpeed() float64 { return v.zoomSpeed }

// MinSize returns the zoom-in floor for width and height.
func (v *Viewport) MinSize() (w, h float64) { return v.minW, v.minH }

// Sync derives the cell size from the screen size. It runs at the start of
// every draw tick. When the screen aspect ratio changes the logical height is
// re-derived so cells stay square.
func (v *Viewport) Sync(screenW, screenH int) {
	if screenW <= 0 || screenH <= 0 {
		return
	}
	sw, sh := float64(screenW), float64(screenH)
	if v.synced && sw == v.screenW && sh == v.screenH {
		return
	}
	v.rebase()
	aspect := sh / sw
	if v.synced {
		v.h = v.w * aspect
	}
	v.minH = v.minW * aspect
	if v.h < v.minH {
		v.h = v.minH
	}
	v.screenW, v.screenH = sw, sh
	v.synced = true
	v.derive()
}

// Pan moves the view by (dx, dy) screen pixels: the origin shifts by
// dx/cellWidth and dy/cellHeight. Deltas are rounded to 1/1024 pixel. It is
// a no-op before the first Sync.
func (v *Viewport) Pan(dx, dy float64) {
	if !v.synced || math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}
	v.pan.X += quantize(dx)
	v.pan.Y += quantize(dy)
}

func quantize(d float64) float64 {
	return math.Round(d*panQuantum) / panQuantum
}

// ZoomAt zooms around a screen anchor. deltaY < 0 zooms in, deltaY > 0
// zooms out. The corners move towards (or away from) the anchor's logical
// point at a rate proportional to |deltaY|, so the point under the anchor is
// unchanged. An axis that would shrink below its minimum keeps its previous
// extent for this tick. It reports whether anything changed.
func (v *Viewport) ZoomAt(anchor vec.Vec2, deltaY float64) bool {
	if !v.synced || deltaY == 0 || math.IsNaN(deltaY) {
		return false
	}
	p, _ := v.ToLogical(anchor)
	v.rebase()

	t := math.Min(math.Abs(deltaY)*v.zoomSpeed, maxZoomStep)
	if deltaY > 0 {
		t = -t
	}

	topLeft := v.base
	bottomRight := vec.Vec2{X: v.base.X + v.w, Y: v.base.Y + v.h}
	nextTL := lerp(topLeft, p, t)
	nextBR := lerp(bottomRight, p, t)

	changed := false
	if w := nextBR.X - nextTL.X; w >= v.minW {
		v.base.X, v.w = nextTL.X, w
		changed = true
	}
	if h := nextBR.Y - nextTL.Y; h >= v.minH {
		v.base.Y, v.h = nextTL.Y, h
		changed = true
	}
	v.derive()
	return changed
}

// ToLogical maps a screen position to continuous logical coordinates.
func (v *Viewport) ToLogical(screen vec.Vec2) (vec.Vec2, bool) {
	if !v.synced {
		return vec.Vec2{}, false
	}
	o := v.Origin()
	return vec.Vec2{X: screen.X/v.cellW + o.X, Y: screen.Y/v.cellH + o.Y}, true
}

// ToScreen maps a logical position to screen pixels.
func (v *Viewport) ToScreen(cell vec.Vec2) (vec.Vec2, bool) {
	if !v.synced {
		return vec.Vec2{}, false
	}
	o := v.Origin()
	return vec.Vec2{X: (cell.X - o.X) * v.cellW, Y: (cell.Y - o.Y) * v.cellH}, true
}

// rebase folds the pixel pan accumulator into the logical origin. It must
// run before anything changes the cell size.
func (v *Viewport) rebase() {
	if !v.synced {
		return
	}
	v.base = v.Origin()
	v.pan = vec.Vec2{}
}

func (v *Viewport) derive() {
	v.cellW = v.screenW / v.w
	v.cellH = v.screenH / v.h
}

// lerp moves a towards b by fraction t; negative t moves away.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
