package patterns

import (
	"errors"
	"slices"
	"testing"
)

func TestParseGlider(t *testing.T) {
	p, err := Parse("glider", "! a comment\n.O.\n..O\nOOO\n")
	if err != nil {
		t.Fatal(err)
	}
	if p.W != 3 || p.H != 3 {
		t.Fatalf("size=%dx%d, want 3x3", p.W, p.H)
	}
	want := []bool{false, true, false, false, false, true, true, true, true}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells=%v", p.Cells)
	}
}

func TestParsePadsShortRows(t *testing.T) {
	p, err := Parse("ragged", "O\n..O")
	if err != nil {
		t.Fatal(err)
	}
	if p.W != 3 || !p.Alive(0, 0) || p.Alive(0, 2) || !p.Alive(1, 2) {
		t.Fatalf("unexpected pattern %+v", p)
	}
	if p.Alive(5, 5) {
		t.Fatal("out-of-range cell reported alive")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("empty", "\n!only comments\n\n"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err=%v, want ErrEmpty", err)
	}
	if _, err := Parse("bad", ".X."); err == nil {
		t.Fatal("expected error for unknown cell character")
	}
}

func TestBuiltins(t *testing.T) {
	for _, name := range Names() {
		p, ok := Builtin(name)
		if !ok {
			t.Fatalf("builtin %q missing", name)
		}
		if len(p.Cells) != p.W*p.H {
			t.Fatalf("%s: %d cells for %dx%d", name, len(p.Cells), p.W, p.H)
		}
	}
	if _, ok := Builtin("nope"); ok {
		t.Fatal("unknown builtin reported present")
	}
}
