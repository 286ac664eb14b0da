package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"lifeview/internal/session"
	"lifeview/internal/viewport"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Engine  string
	Rule    string
	Pattern string
	Width   int
	Height  int

	FPS   float64
	IPS   float64
	Step  int
	Level float64

	MinView   float64
	ZoomSpeed float64
	Theme     string
	Debug     bool

	Density float64
	Seed    int64
}

// cellPixels is the initial on-screen size of one cell.
const cellPixels = 10

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:    "life",
		Rule:      "B3/S23",
		Width:     960,
		Height:    640,
		FPS:       30,
		IPS:       10,
		MinView:   viewport.DefaultMinWidth,
		ZoomSpeed: viewport.DefaultZoomSpeed,
		Theme:     "auto",
		Seed:      42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine to run")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule, e.g. B36/S23")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE file or http(s) URL to place on start")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "frames drawn per second")
	fs.Float64Var(&c.IPS, "ips", c.IPS, "simulation advances per second (0 pauses)")
	fs.IntVar(&c.Step, "step", c.Step, "each advance steps 2^step generations")
	fs.Float64Var(&c.Level, "level", c.Level, "level of detail; blocks are 2^level cells wide")
	fs.Float64Var(&c.MinView, "min-view", c.MinView, "smallest visible width in cells")
	fs.Float64Var(&c.ZoomSpeed, "zoom-speed", c.ZoomSpeed, "fraction of the view consumed per wheel unit")
	fs.StringVar(&c.Theme, "theme", c.Theme, "colour theme: auto, dark or light")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.Float64Var(&c.Density, "density", c.Density, "fill the initial view with a random soup of this density")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v must be within [0, 1]", c.Density)
	}
	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

// EngineParams returns the string map handed to the engine factory. The
// size is the initial view in cells.
func (c *Config) EngineParams() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width / cellPixels),
		"h":       strconv.Itoa(c.Height / cellPixels),
		"rule":    c.Rule,
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

// LogLevel returns the slog level selected by -debug.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Session builds the session configuration. The initial view is centred on
// the origin.
func (c *Config) Session() session.Config {
	sc := session.DefaultConfig()
	w := float64(c.Width) / cellPixels
	h := float64(c.Height) / cellPixels
	sc.View = viewport.Config{
		Rect:      viewport.Rect{X: -w / 2, Y: -h / 2, W: w, H: h},
		MinWidth:  c.MinView,
		ZoomSpeed: c.ZoomSpeed,
	}
	sc.Width, sc.Height = c.Width, c.Height
	sc.FPS, sc.IPS = c.FPS, c.IPS
	sc.Step, sc.Level = c.Step, c.Level
	return sc
}
