package rle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"lifeview/internal/core"
)

func toSet(cells []core.Cell) map[core.Cell]bool {
	m := make(map[core.Cell]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}
	return m
}

func TestDecodeGlider(t *testing.T) {
	p, err := Parse("x = 3, y = 3\nbo$2bo$3o!")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Width != 3 || p.Height != 3 {
		t.Fatalf("dims=%dx%d, want 3x3", p.Width, p.Height)
	}
	want := []core.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	got := toSet(p.Cells)
	if len(p.Cells) != len(want) {
		t.Fatalf("cells=%v, want %v", p.Cells, want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("missing %v in %v", c, p.Cells)
		}
	}
}

func TestDecodeHeaderRuleAndComments(t *testing.T) {
	src := "#N Blinker\n#C a comment\nx = 3, y = 1, rule = B3/S23\n3o!\n"
	p, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Rule != "B3/S23" {
		t.Fatalf("rule=%q", p.Rule)
	}
	if len(p.Cells) != 3 {
		t.Fatalf("cells=%v", p.Cells)
	}
}

func TestDecodeBlankRowsFromRepeatedNewline(t *testing.T) {
	p, err := Parse("x = 1, y = 4\no3$o!")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := toSet(p.Cells)
	if !got[core.Cell{X: 0, Y: 0}] || !got[core.Cell{X: 0, Y: 3}] || len(got) != 2 {
		t.Fatalf("cells=%v, want (0,0) and (0,3)", p.Cells)
	}
}

func TestDecodeBodySpansLinesAndStopsAtBang(t *testing.T) {
	p, err := Parse("x = 4, y = 2\n2o\n2o$\n4o!\nthis is ignored")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Cells) != 8 {
		t.Fatalf("cells=%v, want 8", p.Cells)
	}
}

func TestDecodeDoesNotClipToHeader(t *testing.T) {
	p, err := Parse("x = 1, y = 1\n3o!")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !toSet(p.Cells)[core.Cell{X: 2, Y: 0}] {
		t.Fatalf("cells=%v, want overflow cell kept", p.Cells)
	}
}

func TestDecodeUnexpectedToken(t *testing.T) {
	p, err := Parse("x = 2, y = 1\noz!")
	if p != nil {
		t.Fatal("partial pattern returned on error")
	}
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("err=%v, want *TokenError", err)
	}
	if te.Token != "z" || te.Line != 2 || te.Column != 2 {
		t.Fatalf("token error=%+v", te)
	}
}

func TestDecodeDanglingRunLength(t *testing.T) {
	_, err := Parse("x = 2, y = 1\n2o3")
	var te *TokenError
	if !errors.As(err, &te) || te.Token != "3" {
		t.Fatalf("err=%v, want token error naming the run length", err)
	}
}

func TestDecodeRejectsRunsPastCellBudget(t *testing.T) {
	p, err := Parse("x = 1, y = 1\n20000000o!")
	if p != nil {
		t.Fatal("pattern returned past the cell budget")
	}
	var le *LimitError
	if !errors.As(err, &le) || le.Limit != MaxCells || !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err=%v, want cell LimitError", err)
	}

	src := fmt.Sprintf("x = %d, y = 2\n%do$%do!", MaxCells/2+1, MaxCells/2, MaxCells/2+1)
	if _, err := Parse(src); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("budget must count cells across runs, err=%v", err)
	}
}

func TestDecodeLongSingleLine(t *testing.T) {
	const n = 600000
	p, err := Parse(fmt.Sprintf("x = %d, y = 1\n%s!", 2*n, strings.Repeat("bo", n)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Cells) != n || p.Cells[n-1] != (core.Cell{X: 2*n - 1, Y: 0}) {
		t.Fatalf("decoded %d cells, last %v", len(p.Cells), p.Cells[len(p.Cells)-1])
	}
}

func TestDecodeMissingHeader(t *testing.T) {
	for _, src := range []string{"", "#C only comments\n", "bo$2bo$3o!", "x = 3\nbo!", "y = 3, x = 3\nbo!"} {
		if _, err := Parse(src); !errors.Is(err, ErrMissingHeader) {
			t.Errorf("Parse(%q) err=%v, want ErrMissingHeader", src, err)
		}
	}
}

// encodeGrid renders a boolean grid as '$'-separated o/b runs.
func encodeGrid(grid [][]bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "x = %d, y = %d\n", len(grid[0]), len(grid))
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('$')
		}
		for x := 0; x < len(row); {
			n := 1
			for x+n < len(row) && row[x+n] == row[x] {
				n++
			}
			tag := byte('b')
			if row[x] {
				tag = 'o'
			}
			if n > 1 {
				fmt.Fprintf(&b, "%d", n)
			}
			b.WriteByte(tag)
			x += n
		}
	}
	b.WriteByte('!')
	return b.String()
}

func TestDecodeRoundTripsRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for trial := 0; trial < 50; trial++ {
		w, h := 1+rng.IntN(12), 1+rng.IntN(12)
		grid := make([][]bool, h)
		want := map[core.Cell]bool{}
		for y := range grid {
			grid[y] = make([]bool, w)
			for x := range grid[y] {
				if rng.IntN(3) == 0 {
					grid[y][x] = true
					want[core.Cell{X: x, Y: y}] = true
				}
			}
		}
		src := encodeGrid(grid)
		p, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		got := toSet(p.Cells)
		if len(got) != len(want) || len(p.Cells) != len(want) {
			t.Fatalf("Parse(%q) cells=%v, want %v", src, p.Cells, want)
		}
		for c := range want {
			if !got[c] {
				t.Fatalf("Parse(%q) missing %v", src, c)
			}
		}
	}
}
