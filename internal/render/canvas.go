package render

import "image/color"

// Canvas is the drawing surface a Renderer paints onto. Coordinates are
// screen pixels.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
}

// Rect is one recorded FillRect call.
type Rect struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// Recorder is an in-memory Canvas that keeps every call for inspection.
type Recorder struct {
	W, H       int
	Background color.NRGBA
	Clears     int
	Rects      []Rect
}

// NewRecorder returns a Recorder of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c color.NRGBA) {
	r.Background = c
	r.Clears++
	r.Rects = r.Rects[:0]
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}
