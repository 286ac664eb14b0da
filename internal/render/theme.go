package render

import "image/color"

// Theme is the palette the renderer paints with.
type Theme struct {
	Name       string
	Background color.NRGBA
	Live       color.NRGBA
	Preview    color.NRGBA
	PreviewBox color.NRGBA
	Text       color.NRGBA
}

// Dark is white cells on black.
var Dark = Theme{
	Name:       "dark",
	Background: color.NRGBA{A: 0xff},
	Live:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Preview:    color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xc0},
	PreviewBox: color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0x30},
	Text:       color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
}

// Light is dark cells on an off-white background.
var Light = Theme{
	Name:       "light",
	Background: color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff},
	Live:       color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff},
	Preview:    color.NRGBA{R: 0xd8, G: 0x43, B: 0x15, A: 0xc0},
	PreviewBox: color.NRGBA{R: 0xd8, G: 0x43, B: 0x15, A: 0x30},
	Text:       color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
}

// ThemeFor picks the palette matching the desktop preference.
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}
