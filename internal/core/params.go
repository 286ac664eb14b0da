package core

import "math"

// ControlType enumerates supported control value kinds.
type ControlType string

const (
	// ControlTypeInt denotes integer-valued controls.
	ControlTypeInt ControlType = "int"
	// ControlTypeFloat denotes floating-point controls.
	ControlTypeFloat ControlType = "float"
)

// Control describes a user-adjustable numeric setting. Steps and bounds are
// optional; HasMin/HasMax gate the bounds.
type Control struct {
	Key   string
	Label string
	Type  ControlType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Adjust applies direction steps to value and clamps the result.
func (c Control) Adjust(value float64, direction float64) float64 {
	step := c.Step
	if step == 0 {
		step = 1
	}
	return c.Clamp(value + direction*step)
}

// Clamp restricts value to the control's bounds and rounds integer controls.
func (c Control) Clamp(value float64) float64 {
	if c.Type == ControlTypeInt {
		value = math.Round(value)
	}
	if c.HasMin && value < c.Min {
		value = c.Min
	}
	if c.HasMax && value > c.Max {
		value = c.Max
	}
	return value
}

// ControlsProvider exposes the list of adjustable controls.
type ControlsProvider interface {
	Controls() []Control
}
