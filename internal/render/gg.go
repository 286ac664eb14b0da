package render

import (
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// GGCanvas paints into an offscreen gogpu/gg context. It backs headless
// snapshots.
type GGCanvas struct {
	dc  *gg.Context
	err error
}

// NewGGCanvas allocates a w*h canvas.
func NewGGCanvas(w, h int) *GGCanvas {
	return &GGCanvas{dc: gg.NewContext(w, h)}
}

func (c *GGCanvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *GGCanvas) Clear(col color.NRGBA) {
	r, g, b, a := nrgbaFloats(col)
	c.dc.ClearWithColor(gg.RGBA{R: r, G: g, B: b, A: a})
}

func (c *GGCanvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	if c.err != nil {
		return
	}
	c.dc.SetRGBA(nrgbaFloats(col))
	c.dc.DrawRectangle(x, y, w, h)
	c.err = c.dc.Fill()
}

// Err returns the first fill error, if any.
func (c *GGCanvas) Err() error { return c.err }

// SavePNG writes the canvas to path.
func (c *GGCanvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *GGCanvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the context.
func (c *GGCanvas) Close() error { return c.dc.Close() }
