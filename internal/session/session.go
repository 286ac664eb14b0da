// Package session owns the viewer state (viewport, pending placement,
// settings and counters) and the three periodic tasks that read it. Input
// arrives as events on a channel; Step applies them in order through a
// single update function before polling the tasks.
package session

import (
	"context"
	"io"
	"math"
	"time"

	"seehuhn.de/go/geom/vec"

	"lifeview/internal/core"
	"lifeview/internal/loop"
	"lifeview/internal/placement"
	"lifeview/internal/render"
	"lifeview/internal/viewport"
)

// Task names.
const (
	TaskDraw    = "draw"
	TaskAdvance = "advance"
	TaskStats   = "stats"
)

// StatsRate is how often the stats task samples, per second.
const StatsRate = 2

const eventBuffer = 256

// Config seeds a Session.
type Config struct {
	Grid core.Grid
	View viewport.Config

	Width, Height int
	// NewCanvas allocates the draw target; it is called at startup and
	// again after a debounced resize. Defaults to a gogpu/gg canvas.
	NewCanvas func(w, h int) render.Canvas
	Theme     render.Theme

	FPS   float64
	IPS   float64
	Step  int
	Level float64

	ResizeDelay time.Duration
}

// DefaultConfig returns a 640x480, 30 fps, 10 ips configuration without a grid.
func DefaultConfig() Config {
	return Config{
		View:        viewport.Config{Rect: viewport.Rect{X: -32, Y: -24, W: 64, H: 48}},
		Width:       640,
		Height:      480,
		Theme:       render.Dark,
		FPS:         30,
		IPS:         10,
		ResizeDelay: core.DefaultResizeDelay,
	}
}

type size struct{ w, h int }

// Session is the explicit viewer context. Everything except Post must be
// called from the goroutine that calls Step.
type Session struct {
	grid      core.Grid
	view      *viewport.Viewport
	place     placement.Controller
	renderer  *render.Renderer
	canvas    render.Canvas
	newCanvas func(w, h int) render.Canvas

	events   chan Event
	settings *Settings
	sched    *loop.Scheduler
	resize   *core.Debouncer[size]

	dragging bool
	last     vec.Vec2

	paused  bool
	prevIPS float64

	counters Counters
	sampler  sampler
	stats    Stats
	frame    render.Frame
	started  time.Time
	now      time.Time
}

// New builds a Session around cfg.Grid.
func New(cfg Config) *Session {
	if cfg.NewCanvas == nil {
		cfg.NewCanvas = func(w, h int) render.Canvas { return render.NewGGCanvas(w, h) }
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = render.Dark
	}
	if cfg.ResizeDelay == 0 {
		cfg.ResizeDelay = core.DefaultResizeDelay
	}
	s := &Session{
		grid:      cfg.Grid,
		view:      viewport.New(cfg.View),
		renderer:  render.NewRenderer(cfg.Theme),
		newCanvas: cfg.NewCanvas,
		events:    make(chan Event, eventBuffer),
		settings:  newSettings(cfg.FPS, cfg.IPS, cfg.Step, cfg.Level),
		resize:    core.NewDebouncer[size](cfg.ResizeDelay),
	}
	s.canvas = s.newCanvas(cfg.Width, cfg.Height)
	s.sched = loop.New(
		loop.Task{Name: TaskDraw, Rate: s.settings.FPS, Run: s.draw},
		loop.Task{Name: TaskAdvance, Rate: s.settings.IPS, Run: s.advance},
		loop.Task{Name: TaskStats, Rate: func() float64 { return StatsRate }, Run: s.sample},
	)
	s.sched.Before = s.prepare
	return s
}

// Post queues ev for the next Step. It is safe for concurrent use and
// reports false when the queue is full.
func (s *Session) Post(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		core.Logger().Warn("event queue full, dropping event", "event", ev)
		return false
	}
}

// Step drains queued events, applies a settled resize and runs whichever
// tasks are due at now.
func (s *Session) Step(now time.Time) {
	s.sched.Poll(now)
}

// Run steps the session on its own schedule until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	return s.sched.Run(ctx)
}

// Redraw applies pending events and draws immediately, outside the
// schedule.
func (s *Session) Redraw(now time.Time) {
	s.prepare(now)
	s.draw(now)
}

func (s *Session) prepare(now time.Time) {
	if s.started.IsZero() {
		s.started = now
	}
	s.now = now
	for n := len(s.events); n > 0; n-- {
		s.apply(<-s.events)
	}
	if sz, ok := s.resize.Poll(now); ok {
		s.reallocate(sz)
	}
}

// Next returns when the next task is due.
func (s *Session) Next() time.Time {
	t, _ := s.sched.Next()
	return t
}

// apply is the single place session state changes in response to input.
func (s *Session) apply(ev Event) {
	switch e := ev.(type) {
	case PointerDown:
		s.dragging = true
		s.last = e.Pos
		s.follow(e.Pos)
	case PointerMove:
		if s.place.Pending() {
			s.follow(e.Pos)
		} else if s.dragging {
			d := e.Pos.Sub(s.last)
			s.view.Pan(-d.X, -d.Y)
		}
		s.last = e.Pos
	case PointerCancel:
		s.dragging = false
	case PointerUp:
		s.dragging = false
		if s.place.Pending() && s.follow(e.Pos) {
			s.commit()
		}
	case Wheel:
		if e.Modifier {
			s.settings.Set(KeyLevel, s.settings.Get(KeyLevel)-e.DeltaY*LevelWheelStep)
			return
		}
		s.view.ZoomAt(e.Pos, e.DeltaY)
	case Pinch:
		if e.Scale <= 0 || math.IsNaN(e.Scale) {
			return
		}
		s.view.ZoomAt(e.Mid, -(1-1/e.Scale)/s.view.ZoomSpeed())
	case Rotate:
		s.place.Rotate()
	case FlipH:
		s.place.FlipH()
	case FlipV:
		s.place.FlipV()
	case Discard:
		s.place.Discard()
	case Commit:
		s.commit()
	case TogglePause:
		s.togglePause()
	case Adjust:
		s.settings.Adjust(e.Key, e.Dir)
		if e.Key == KeyIPS && s.paused && s.settings.IPS() > 0 {
			s.paused = false
		}
	case Resize:
		if e.W > 0 && e.H > 0 {
			s.resize.Trigger(s.now, size{e.W, e.H})
		}
	case LoadPattern:
		s.load(e)
	}
}

// follow centres a pending pattern under the pointer. It reports false
// until the first draw tick has made screen mapping possible.
func (s *Session) follow(pos vec.Vec2) bool {
	if !s.place.Pending() {
		return false
	}
	p, ok := s.view.ToLogical(pos)
	if !ok {
		return false
	}
	s.place.CenterOn(p)
	return true
}

func (s *Session) commit() {
	if n := s.place.Commit(s.grid); n > 0 {
		s.counters.Commits++
	}
}

func (s *Session) load(e LoadPattern) {
	if e.Pattern == nil {
		return
	}
	s.place.Load(e.Pattern)
	at := e.At
	if at == nil {
		r := s.view.Rect()
		at = &vec.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
	}
	s.place.CenterOn(*at)
	core.Logger().Info("pattern on deck",
		"width", e.Pattern.Width, "height", e.Pattern.Height,
		"cells", len(e.Pattern.Cells), "rule", e.Pattern.Rule)
}

func (s *Session) togglePause() {
	if s.paused {
		s.settings.Set(KeyIPS, s.prevIPS)
		s.paused = false
		return
	}
	s.prevIPS = s.settings.IPS()
	s.settings.Set(KeyIPS, 0)
	s.paused = true
}

func (s *Session) reallocate(sz size) {
	if c, ok := s.canvas.(io.Closer); ok {
		if err := c.Close(); err != nil {
			core.Logger().Warn("closing canvas", "err", err)
		}
	}
	s.canvas = s.newCanvas(sz.w, sz.h)
	core.Logger().Debug("canvas resized", "w", sz.w, "h", sz.h)
}

func (s *Session) draw(time.Time) {
	if s.grid == nil {
		return
	}
	s.frame = s.renderer.Draw(s.canvas, s.grid, s.view, &s.place, s.settings.Level())
	s.counters.Frames++
}

func (s *Session) advance(time.Time) {
	if s.grid == nil || s.settings.IPS() <= 0 {
		return
	}
	n := s.settings.Generations()
	s.grid.Advance(n)
	s.counters.Iterations++
	s.counters.Generations += int64(n)
}

func (s *Session) sample(now time.Time) {
	fps, ips := s.sampler.sample(now, s.counters)
	st := Stats{
		FPS:    fps,
		IPS:    ips,
		Level:  s.settings.Level(),
		Paused: s.paused || s.settings.IPS() <= 0,
		Uptime: now.Sub(s.started),
	}
	if s.grid != nil {
		st.Population = s.grid.Population()
		st.Generation = s.grid.Generation()
	}
	s.stats = st
}

// Canvas returns the current draw target.
func (s *Session) Canvas() render.Canvas { return s.canvas }

// View returns the viewport.
func (s *Session) View() *viewport.Viewport { return s.view }

// Placement returns the placement controller.
func (s *Session) Placement() *placement.Controller { return &s.place }

// Settings returns the adjustable rates.
func (s *Session) Settings() *Settings { return s.settings }

// Stats returns the latest stats sample.
func (s *Session) Stats() Stats { return s.stats }

// Counters returns the running counters.
func (s *Session) Counters() Counters { return s.counters }

// Frame returns the summary of the last draw tick.
func (s *Session) Frame() render.Frame { return s.frame }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// Theme returns the active palette.
func (s *Session) Theme() render.Theme { return s.renderer.Theme }
