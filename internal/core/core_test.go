package core

import (
	"testing"
	"time"
)

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 4, 0},
		{-1, 4, -1},
		{3, 4, 0},
	}
	for _, tc := range cases {
		if got := FloorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("FloorDiv(%d,%d)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestBoundsForCoversPartialCells(t *testing.T) {
	b := BoundsFor(-0.5, 1.25, 3, 2)
	want := Bounds{X0: -1, Y0: 1, X1: 3, Y1: 4}
	if b != want {
		t.Fatalf("BoundsFor=%+v, want %+v", b, want)
	}
	if !b.Contains(-1, 3) || b.Contains(3, 3) {
		t.Fatalf("Contains disagrees with half-open bounds %+v", b)
	}
}

func TestBoundsAlign(t *testing.T) {
	b := Bounds{X0: -3, Y0: 1, X1: 5, Y1: 4}.Align(4)
	want := Bounds{X0: -4, Y0: 0, X1: 8, Y1: 4}
	if b != want {
		t.Fatalf("Align=%+v, want %+v", b, want)
	}
	same := Bounds{X0: 1, Y0: 2, X1: 3, Y1: 4}
	if same.Align(1) != same {
		t.Fatal("Align(1) must be identity")
	}
}

func TestDebouncerTrailingEdge(t *testing.T) {
	start := time.Unix(0, 0)
	d := NewDebouncer[int](150 * time.Millisecond)

	d.Trigger(start, 1)
	d.Trigger(start.Add(100*time.Millisecond), 2)
	if _, ok := d.Poll(start.Add(200 * time.Millisecond)); ok {
		t.Fatal("debouncer fired before the burst went quiet")
	}
	v, ok := d.Poll(start.Add(250 * time.Millisecond))
	if !ok || v != 2 {
		t.Fatalf("Poll=(%d,%v), want (2,true)", v, ok)
	}
	if _, ok := d.Poll(start.Add(time.Second)); ok {
		t.Fatal("debouncer fired twice for one burst")
	}
}

func TestControlAdjustClamps(t *testing.T) {
	c := Control{Key: "step", Type: ControlTypeInt, Step: 1, Min: 0, Max: 3, HasMin: true, HasMax: true}
	if got := c.Adjust(3, 1); got != 3 {
		t.Fatalf("Adjust above max = %v, want 3", got)
	}
	if got := c.Adjust(0, -1); got != 0 {
		t.Fatalf("Adjust below min = %v, want 0", got)
	}
	f := Control{Key: "level", Type: ControlTypeFloat, Step: 0.25, HasMin: true}
	if got := f.Adjust(1, 2); got != 1.5 {
		t.Fatalf("float Adjust = %v, want 1.5", got)
	}
}

type setCounter map[Cell]bool

func (s setCounter) SetAlive(x, y int) { s[Cell{X: x, Y: y}] = true }

func TestSoupIsDeterministic(t *testing.T) {
	b := Centered(40, 30)
	if b != (Bounds{X0: -20, Y0: -15, X1: 20, Y1: 15}) {
		t.Fatalf("Centered=%+v", b)
	}
	a, c := setCounter{}, setCounter{}
	na := Soup(a, b, 0.3, 7)
	nc := Soup(c, b, 0.3, 7)
	if na != nc || na != len(a) {
		t.Fatalf("same seed gave %d and %d cells", na, nc)
	}
	for cell := range a {
		if !c[cell] {
			t.Fatalf("cell %v missing from second soup", cell)
		}
		if !b.Contains(cell.X, cell.Y) {
			t.Fatalf("cell %v outside %+v", cell, b)
		}
	}
	if na < 200 || na > 520 {
		t.Fatalf("density 0.3 over 1200 cells gave %d", na)
	}
	if Soup(setCounter{}, b, 0, 7) != 0 {
		t.Fatal("zero density must set nothing")
	}
}
