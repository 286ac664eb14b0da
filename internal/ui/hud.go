//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifeview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source exposes the adjustable settings the HUD displays.
type Source interface {
	core.ControlsProvider
	Get(key string) float64
}

// HUD renders the settings panel along the right edge of the view and a
// status line along the bottom.
type HUD struct {
	source Source
	adjust func(key string, dir float64)
	width  int
	title  string
	status string
	text   color.NRGBA

	panel      *ebiten.Image
	lastHeight int
	offsetX    int
	controls   []hudControlState

	pixel *ebiten.Image
}

// NewHUD constructs a HUD. adjust is called with ±1 when a button is
// clicked.
func NewHUD(title string, src Source, adjust func(key string, dir float64), width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{source: src, adjust: adjust, width: width, title: title, text: color.NRGBA{R: 220, G: 220, B: 230, A: 255}}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if src != nil {
		for _, ctrl := range src.Controls() {
			h.controls = append(h.controls, hudControlState{control: ctrl})
		}
		h.layoutControls()
	}
	return h
}

// SetStatus replaces the bottom status line.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// SetTextColor sets the status line colour.
func (h *HUD) SetTextColor(c color.NRGBA) {
	if h != nil {
		h.text = c
	}
}

// Contains reports whether the screen point lies over the panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	return x >= h.offsetX && y < h.lastHeight
}

// Update refreshes displayed values and handles button clicks. It reports
// whether the pointer press landed on the panel.
func (h *HUD) Update(screenW, screenH int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = screenW - h.width
	h.lastHeight = min(screenH, controlsTop+len(h.controls)*lineHeight+panelPadding)
	for i := range h.controls {
		st := &h.controls[i]
		st.value = h.source.Get(st.control.Key)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	px := mx - h.offsetX
	for i := range h.controls {
		st := &h.controls[i]
		if pointInRect(px, my, st.minusRect) && h.canAdjust(st, -1) {
			h.adjust(st.control.Key, -1)
		}
		if pointInRect(px, my, st.plusRect) && h.canAdjust(st, 1) {
			h.adjust(st.control.Key, 1)
		}
	}
	return true
}

// Draw paints the panel and the status line.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	if h.status != "" {
		y := screen.Bounds().Dy() - panelPadding
		text.Draw(screen, h.status, face, panelPadding, y, h.text)
	}
	if h.width <= 0 || h.lastHeight <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != h.lastHeight {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(h.width, h.lastHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		st := &h.controls[i]
		labelY := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := FormatValue(st.control.Step, st.control.Type == core.ControlTypeInt, st.value)
		valueX := st.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(st.minusRect, "-", h.canAdjust(st, -1))
		h.drawButton(st.plusRect, "+", h.canAdjust(st, 1))
	}
}

func (h *HUD) canAdjust(st *hudControlState, direction float64) bool {
	if h.adjust == nil {
		return false
	}
	return st.control.Adjust(st.value, direction) != st.value
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.Control
	value   float64

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
