//go:build !ebiten

package ui

import (
	"image/color"

	"lifeview/internal/core"
)

// Source exposes the adjustable settings the HUD displays.
type Source interface {
	core.ControlsProvider
	Get(key string) float64
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string, Source, func(string, float64), int) *HUD { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// SetTextColor is a no-op in the headless build.
func (h *HUD) SetTextColor(color.NRGBA) {}

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
