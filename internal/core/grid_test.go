package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}, {0, 0}}
	for _, c := range cases {
		g, err := NewGrid(c[0], c[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d,%d) err=%v, want ErrInvalidSize", c[0], c[1], err)
		}
		if g != nil {
			t.Fatalf("NewGrid(%d,%d) returned a grid", c[0], c[1])
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(20, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Cells()) != 100 {
		t.Fatalf("len(cells)=%d, want 100", len(g.Cells()))
	}
	if g.Alive() != 0 {
		t.Fatalf("new grid has %d live cells", g.Alive())
	}
}

func TestIndexOf(t *testing.T) {
	g, _ := NewGrid(4, 3)
	cases := []struct {
		row, col int
		want     int
		ok       bool
	}{
		{0, 0, 0, true},
		{0, 3, 3, true},
		{1, 0, 4, true},
		{2, 3, 11, true},
		{-1, 0, -1, false},
		{0, -1, -1, false},
		{3, 0, -1, false},
		{0, 4, -1, false},
		// Would alias to (0,3) with bare row*w+col arithmetic.
		{1, -1, -1, false},
	}
	for _, c := range cases {
		got, ok := g.IndexOf(c.row, c.col)
		if got != c.want || ok != c.ok {
			t.Fatalf("IndexOf(%d,%d)=(%d,%v), want (%d,%v)", c.row, c.col, got, ok, c.want, c.ok)
		}
		if ok {
			r, col := g.Size().Coords(got)
			if r != c.row || col != c.col {
				t.Fatalf("Coords(%d)=(%d,%d), want (%d,%d)", got, r, col, c.row, c.col)
			}
		}
	}
}

func TestSetAndGet(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if err := g.Set(1, 2, true); err != nil {
		t.Fatal(err)
	}
	alive, err := g.Get(1, 2)
	if err != nil || !alive {
		t.Fatalf("Get(1,2)=(%v,%v), want alive", alive, err)
	}
	if !g.Data()[5] {
		t.Fatal("Set(1,2) did not write flat index 5")
	}
	if err := g.Set(3, 0, true); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Set out of bounds err=%v", err)
	}
	if _, err := g.Get(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Get out of bounds err=%v", err)
	}
}

func TestSetIdempotent(t *testing.T) {
	g, _ := NewGrid(5, 5)
	_ = g.Set(2, 2, true)
	first := g.Cells()
	_ = g.Set(2, 2, true)
	if !slices.Equal(first, g.Cells()) {
		t.Fatal("repeating Set with the same value changed the grid")
	}
}

func TestCellsIsSnapshot(t *testing.T) {
	g, _ := NewGrid(2, 2)
	snap := g.Cells()
	snap[0] = true
	if g.Data()[0] {
		t.Fatal("mutating the snapshot leaked into the grid")
	}
}

func TestReplaceLengthMismatchPanics(t *testing.T) {
	g, _ := NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("Replace with short buffer did not panic")
		}
	}()
	g.Replace(make([]bool, 3))
}

func TestClear(t *testing.T) {
	g, _ := NewGrid(3, 2)
	g.Replace([]bool{true, false, true, true, false, true})
	if g.Alive() != 4 {
		t.Fatalf("Alive()=%d, want 4", g.Alive())
	}
	g.Clear()
	if g.Alive() != 0 {
		t.Fatal("Clear left live cells")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := make([]bool, 256)
	b := make([]bool, 256)
	NewRNG(7).FillBool(a, 0.4)
	NewRNG(7).FillBool(b, 0.4)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	empty := make([]bool, 64)
	NewRNG(7).FillBool(empty, 0)
	if slices.Contains(empty, true) {
		t.Fatal("density 0 produced live cells")
	}
}

func TestFixedStep(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first call should tick immediately")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("ticked before the interval elapsed")
	}
	now = now.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not tick after the interval elapsed")
	}

	// A long stall yields at most two back-to-back ticks.
	now = now.Add(5 * time.Second)
	ticks := 0
	for fs.ShouldStep() {
		ticks++
	}
	if ticks > 2 {
		t.Fatalf("stall produced %d ticks", ticks)
	}

	fs.SetRate(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("fallback interval=%v", fs.Interval())
	}
}
