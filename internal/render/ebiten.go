//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas paints onto an ebiten image, usually the screen.
type EbitenCanvas struct {
	Image *ebiten.Image
}

func (c EbitenCanvas) Size() (int, int) {
	b := c.Image.Bounds()
	return b.Dx(), b.Dy()
}

func (c EbitenCanvas) Clear(col color.NRGBA) {
	c.Image.Fill(col)
}

func (c EbitenCanvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	vector.DrawFilledRect(c.Image, float32(x), float32(y), float32(w), float32(h), col, false)
}

// Close releases the backing image.
func (c EbitenCanvas) Close() error {
	c.Image.Deallocate()
	return nil
}
