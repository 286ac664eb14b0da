package session

import (
	"seehuhn.de/go/geom/vec"

	"lifeview/internal/rle"
)

// Event is an immutable input record. Events are applied in the order they
// were posted.
type Event interface {
	event()
}

// PointerDown starts a drag at a screen position.
type PointerDown struct{ Pos vec.Vec2 }

// PointerMove reports the pointer's new screen position.
type PointerMove struct{ Pos vec.Vec2 }

// PointerUp ends a drag; with a pattern on deck it commits the placement.
type PointerUp struct{ Pos vec.Vec2 }

// PointerCancel ends a press without committing, as when a second touch
// turns a drag into a pinch.
type PointerCancel struct{}

// Wheel zooms around Pos. With Modifier set it adjusts the LOD level
// instead.
type Wheel struct {
	Pos      vec.Vec2
	DeltaY   float64
	Modifier bool
}

// Pinch zooms around the midpoint of two touches by the ratio of the new
// finger distance to the old one.
type Pinch struct {
	Mid   vec.Vec2
	Scale float64
}

// Rotate turns the pending pattern a quarter turn.
type Rotate struct{}

// FlipH mirrors the pending pattern horizontally.
type FlipH struct{}

// FlipV mirrors the pending pattern vertically.
type FlipV struct{}

// Discard drops the pending pattern.
type Discard struct{}

// Commit writes the pending pattern at its current offset.
type Commit struct{}

// TogglePause stops or resumes the simulation.
type TogglePause struct{}

// Adjust steps the named setting by Dir increments.
type Adjust struct {
	Key string
	Dir float64
}

// Resize reports a new canvas size in pixels.
type Resize struct{ W, H int }

// LoadPattern puts a pattern on deck. It is centred on At (logical
// coordinates) when set, otherwise on the middle of the view.
type LoadPattern struct {
	Pattern *rle.Pattern
	At      *vec.Vec2
}

func (PointerDown) event()   {}
func (PointerMove) event()   {}
func (PointerUp) event()     {}
func (PointerCancel) event() {}
func (Wheel) event()         {}
func (Pinch) event()         {}
func (Rotate) event()        {}
func (FlipH) event()         {}
func (FlipV) event()         {}
func (Discard) event()       {}
func (Commit) event()        {}
func (TogglePause) event()   {}
func (Adjust) event()        {}
func (Resize) event()        {}
func (LoadPattern) event()   {}
