package session

import (
	"math"

	"lifeview/internal/core"
)

// Setting keys.
const (
	KeyFPS   = "fps"
	KeyIPS   = "ips"
	KeyStep  = "step"
	KeyLevel = "level"
)

// LevelWheelStep is how far one modifier+wheel unit moves the LOD level.
const LevelWheelStep = 0.25

var controls = []core.Control{
	{Key: KeyFPS, Label: "Frame rate", Type: core.ControlTypeFloat, Step: 5, Min: 1, Max: 240, HasMin: true, HasMax: true},
	{Key: KeyIPS, Label: "Iteration rate", Type: core.ControlTypeFloat, Step: 5, Min: 0, Max: 1000, HasMin: true, HasMax: true},
	{Key: KeyStep, Label: "Step exponent", Type: core.ControlTypeInt, Step: 1, Min: 0, Max: 16, HasMin: true, HasMax: true},
	{Key: KeyLevel, Label: "Detail level", Type: core.ControlTypeFloat, Step: 0.5, Min: 0, Max: 12, HasMin: true, HasMax: true},
}

// Settings holds the user-adjustable rates. Values are re-read by the
// scheduled tasks on every tick.
type Settings struct {
	values map[string]float64
}

func newSettings(fps, ips float64, step int, level float64) *Settings {
	s := &Settings{values: make(map[string]float64, len(controls))}
	s.Set(KeyFPS, fps)
	s.Set(KeyIPS, ips)
	s.Set(KeyStep, float64(step))
	s.Set(KeyLevel, level)
	return s
}

// Controls lists the adjustable settings.
func (s *Settings) Controls() []core.Control {
	out := make([]core.Control, len(controls))
	copy(out, controls)
	return out
}

// Get returns the current value of key.
func (s *Settings) Get(key string) float64 { return s.values[key] }

// Set clamps v to key's control and stores it. Unknown keys are ignored.
func (s *Settings) Set(key string, v float64) bool {
	c, ok := control(key)
	if !ok || math.IsNaN(v) {
		return false
	}
	s.values[key] = c.Clamp(v)
	return true
}

// Adjust moves key by dir steps.
func (s *Settings) Adjust(key string, dir float64) bool {
	c, ok := control(key)
	if !ok {
		return false
	}
	s.values[key] = c.Adjust(s.values[key], dir)
	return true
}

// FPS returns the draw rate.
func (s *Settings) FPS() float64 { return s.values[KeyFPS] }

// IPS returns the advance rate; zero means paused.
func (s *Settings) IPS() float64 { return s.values[KeyIPS] }

// Generations returns how many generations one advance tick steps.
func (s *Settings) Generations() int { return 1 << int(s.values[KeyStep]) }

// Level returns the floored LOD level.
func (s *Settings) Level() int { return int(math.Floor(s.values[KeyLevel])) }

func control(key string) (core.Control, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.Control{}, false
}
