package placement

import (
	"testing"

	"seehuhn.de/go/geom/vec"

	"lifeview/internal/affine"
	"lifeview/internal/core"
	"lifeview/internal/life"
	"lifeview/internal/rle"
)

type fakeGrid struct {
	inEdit  bool
	edits   int
	outside int
	cells   []core.Cell
}

func (g *fakeGrid) SetAlive(x, y int) {
	if !g.inEdit {
		g.outside++
	}
	g.cells = append(g.cells, core.Cell{X: x, Y: y})
}

func (g *fakeGrid) Edit(fn func(core.Setter)) {
	g.edits++
	g.inEdit = true
	fn(g)
	g.inEdit = false
}

func (g *fakeGrid) Cells(core.Bounds) []core.Cell       { return nil }
func (g *fakeGrid) Level(core.Bounds, int) []core.Block { return nil }
func (g *fakeGrid) Advance(int)                         {}
func (g *fakeGrid) Population() int                     { return len(g.cells) }
func (g *fakeGrid) Generation() int64                   { return 0 }

func glider(t *testing.T) *rle.Pattern {
	t.Helper()
	p, err := rle.Parse("x = 3, y = 3\nbo$2bo$3o!")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return p
}

func TestCommitIsOneEdit(t *testing.T) {
	var c Controller
	c.Load(glider(t))
	c.SetOffset(vec.Vec2{X: 10.7, Y: -3.2})
	g := &fakeGrid{}
	n := c.Commit(g)
	if n != 5 || len(g.cells) != 5 {
		t.Fatalf("committed %d cells, grid saw %d", n, len(g.cells))
	}
	if g.edits != 1 || g.outside != 0 {
		t.Fatalf("edits=%d outside=%d, want one edit and no stray writes", g.edits, g.outside)
	}
	if g.cells[0] != (core.Cell{X: 11, Y: -4}) {
		t.Fatalf("first cell=%v, want floored offset applied", g.cells[0])
	}
	if c.Pending() {
		t.Fatal("commit must clear the deck")
	}
}

func TestCommitWithNothingPending(t *testing.T) {
	var c Controller
	g := &fakeGrid{}
	if n := c.Commit(g); n != 0 || g.edits != 0 {
		t.Fatalf("empty commit wrote %d cells in %d edits", n, g.edits)
	}
	c.Rotate()
	c.FlipH()
	if c.Footprint() != nil || !c.Bounds().Empty() {
		t.Fatal("empty controller must have no footprint")
	}
}

func TestRotatedCommitIntoEngine(t *testing.T) {
	var c Controller
	c.Load(glider(t))
	for i := 0; i < 4; i++ {
		c.Rotate()
	}
	c.FlipH()
	c.FlipH()
	want := c.Footprint()
	e := life.New(0, 0, life.Conway)
	c.Commit(e)
	got := e.Cells(core.Bounds{X0: -10, Y0: -10, X1: 10, Y1: 10})
	if len(got) != len(want) {
		t.Fatalf("engine has %d cells, want %d", len(got), len(want))
	}
	set := map[core.Cell]bool{}
	for _, cell := range got {
		set[cell] = true
	}
	for _, cell := range want {
		if !set[cell] {
			t.Fatalf("cell %v missing after commit", cell)
		}
	}
}

func TestFootprintStaysInsideBounds(t *testing.T) {
	var c Controller
	c.Load(glider(t))
	c.SetOffset(vec.Vec2{X: -4, Y: 9})
	ops := []func(){c.Rotate, c.FlipH, c.Rotate, c.FlipV, c.Rotate}
	for i, op := range ops {
		op()
		b := c.Bounds()
		for _, cell := range c.Footprint() {
			if !b.Contains(cell.X, cell.Y) {
				t.Fatalf("step %d: cell %v outside %+v", i, cell, b)
			}
		}
	}
}

func TestCenterOn(t *testing.T) {
	var c Controller
	c.Load(glider(t))
	c.CenterOn(vec.Vec2{X: 100.5, Y: 50.5})
	b := c.Bounds()
	if b != (core.Bounds{X0: 99, Y0: 49, X1: 102, Y1: 52}) {
		t.Fatalf("Bounds=%+v", b)
	}
}

func TestDiscard(t *testing.T) {
	var c Controller
	c.Load(glider(t))
	c.Rotate()
	c.Discard()
	if c.Pending() {
		t.Fatal("discard left a pattern pending")
	}
	c.Load(glider(t))
	if c.Transform() != affine.New() {
		t.Fatal("loading after discard must start from identity")
	}
}
