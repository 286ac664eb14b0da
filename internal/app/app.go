//go:build ebiten

package app

import (
	"context"
	"math"
	"runtime"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"
	"seehuhn.de/go/geom/vec"
)

const hudWidth = 220

var keyNames = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyR, KeyRotate},
	{ebiten.KeyH, KeyFlipH},
	{ebiten.KeyV, KeyFlipV},
	{ebiten.KeySpace, KeyPause},
	{ebiten.KeyEscape, KeyDiscard},
	{ebiten.KeyO, KeyOpen},
	{ebiten.KeyQ, KeyQuit},
	{ebiten.KeyBracketLeft, KeySlower},
	{ebiten.KeyBracketRight, KeyFaster},
	{ebiten.KeyMinus, KeyFewerFrames},
	{ebiten.KeyEqual, KeyMoreFrames},
	{ebiten.KeyComma, KeySmallerSteps},
	{ebiten.KeyPeriod, KeyLargerSteps},
}

// NewCanvas allocates an offscreen ebiten canvas.
func NewCanvas(w, h int) render.Canvas {
	return render.EbitenCanvas{Image: ebiten.NewImage(w, h)}
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess  *session.Session
	hud   *ui.HUD
	wheel *WheelFilter
	ctx   context.Context

	touchIDs  []ebiten.TouchID
	pinchDist float64
	pointer   vec.Vec2
	pressed   bool
	onPanel   bool

	width, height int
}

// New constructs a Game driving sess.
func New(ctx context.Context, sess *session.Session, title string) *Game {
	g := &Game{
		sess:  sess,
		wheel: NewWheelFilter(runtime.GOOS == "js" && runtime.GOARCH == "wasm"),
		ctx:   ctx,
	}
	settings := sess.Settings()
	g.hud = ui.NewHUD(title, settings, func(key string, dir float64) {
		sess.Post(session.Adjust{Key: key, Dir: dir})
	}, hudWidth)
	g.hud.SetTextColor(sess.Theme().Text)
	return g
}

// Update turns this frame's input into session events and steps the
// session.
func (g *Game) Update() error {
	for _, k := range keyNames {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		switch CommandForKey(k.name) {
		case CommandQuit:
			return ebiten.Termination
		case CommandOpen:
			go g.openDialog()
		default:
			if ev, ok := EventForKey(k.name); ok {
				g.sess.Post(ev)
			}
		}
	}

	now := time.Now()
	g.updatePointer(now)
	g.sess.Step(now)
	g.hud.SetStatus(g.sess.Stats().String())
	return nil
}

func (g *Game) updatePointer(now time.Time) {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) >= 2 {
		x0, y0 := ebiten.TouchPosition(g.touchIDs[0])
		x1, y1 := ebiten.TouchPosition(g.touchIDs[1])
		mid := vec.Vec2{X: float64(x0+x1) / 2, Y: float64(y0+y1) / 2}
		dist := math.Hypot(float64(x1-x0), float64(y1-y0))
		if g.pinchDist > 0 {
			g.sess.Post(session.Pinch{Mid: mid, Scale: pinchScale(g.pinchDist, dist)})
		}
		g.pinchDist = dist
		if g.pressed {
			g.pressed = false
			g.sess.Post(session.PointerCancel{})
		}
		return
	}
	g.pinchDist = 0

	var pos vec.Vec2
	down := false
	if len(g.touchIDs) == 1 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		pos = vec.Vec2{X: float64(x), Y: float64(y)}
		down = true
	} else {
		x, y := ebiten.CursorPosition()
		pos = vec.Vec2{X: float64(x), Y: float64(y)}
		down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	if g.hud.Update(g.width, g.height) {
		g.onPanel = true
	}
	if g.onPanel {
		if !down {
			g.onPanel = false
		}
		return
	}

	switch {
	case down && !g.pressed:
		g.sess.Post(session.PointerDown{Pos: pos})
	case !down && g.pressed:
		g.sess.Post(session.PointerUp{Pos: pos})
	case pos != g.pointer:
		g.sess.Post(session.PointerMove{Pos: pos})
	}
	g.pressed = down
	g.pointer = pos

	_, wy := ebiten.Wheel()
	if dy := g.wheel.Filter(now, wy); dy != 0 {
		// ebiten reports scrolling up as positive; zooming in takes a
		// negative delta.
		g.sess.Post(session.Wheel{
			Pos:      pos,
			DeltaY:   -dy,
			Modifier: ebiten.IsKeyPressed(ebiten.KeyControl),
		})
	}
}

func (g *Game) openDialog() {
	name, err := dialog.File().Filter("RLE patterns", "rle").Title("Open pattern").Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			core.Logger().Error("open dialog", "err", err)
		}
		return
	}
	if err := LoadPattern(g.ctx, g.sess, name, nil); err != nil {
		core.Logger().Error("open pattern", "err", err)
	}
}

// Draw blits the last rendered frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if c, ok := g.sess.Canvas().(render.EbitenCanvas); ok {
		screen.DrawImage(c.Image, nil)
	}
	g.hud.Draw(screen)
}

// Layout reports the window size as the logical screen size and forwards
// changes to the session, which debounces them.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.sess.Post(session.Resize{W: outsideWidth, H: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
