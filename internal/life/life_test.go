package life

import (
	"fmt"
	"slices"
	"testing"

	"gridlife/internal/core"
)

func engines() []core.Engine {
	return []core.Engine{
		NewScalar(),
		NewParallel(Config{Workers: 4, Tile: 2}),
	}
}

func gridFrom(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatal(err)
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch == 'O' {
				if err := g.Set(r, c, true); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	return g
}

func render(g *core.Grid) []string {
	size := g.Size()
	cells := g.Data()
	out := make([]string, size.H)
	for r := 0; r < size.H; r++ {
		line := make([]byte, size.W)
		for c := 0; c < size.W; c++ {
			idx, _ := size.Index(r, c)
			line[c] = '.'
			if cells[idx] {
				line[c] = 'O'
			}
		}
		out[r] = string(line)
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []string{".O.", ".O.", ".O."}
	horizontal := []string{"...", "OOO", "..."}
	for _, e := range engines() {
		g := gridFrom(t, vertical...)
		e.Step(g)
		if got := render(g); !slices.Equal(got, horizontal) {
			t.Fatalf("%s: after one generation got %v, want %v", e.Name(), got, horizontal)
		}
		e.Step(g)
		if got := render(g); !slices.Equal(got, vertical) {
			t.Fatalf("%s: after two generations got %v, want %v", e.Name(), got, vertical)
		}
	}
}

func TestTransitionRules(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		alive bool
	}{
		{"isolated cell dies", []string{"...", ".O.", "..."}, false},
		{"one neighbor dies", []string{"O..", ".O.", "..."}, false},
		{"two neighbors survive", []string{"O.O", ".O.", "..."}, true},
		{"three neighbors survive", []string{"OOO", ".O.", "..."}, true},
		{"four neighbors die", []string{"OOO", "OO.", "..."}, false},
		{"five neighbors die", []string{"OOO", "OOO", "..."}, false},
		{"six neighbors die", []string{"OOO", "OOO", "O.."}, false},
		{"seven neighbors die", []string{"OOO", "OOO", "OO."}, false},
		{"eight neighbors die", []string{"OOO", "OOO", "OOO"}, false},
		{"dead with three is born", []string{"OOO", "...", "..."}, true},
		{"dead with two stays dead", []string{"O.O", "...", "..."}, false},
		{"dead with four stays dead", []string{"OOO", "O..", "..."}, false},
		{"dead with eight stays dead", []string{"OOO", "O.O", "OOO"}, false},
	}
	for _, tc := range cases {
		for _, e := range engines() {
			g := gridFrom(t, tc.rows...)
			e.Step(g)
			got, err := g.Get(1, 1)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.alive {
				t.Fatalf("%s/%s: center alive=%v, want %v", tc.name, e.Name(), got, tc.alive)
			}
		}
	}
}

func TestCountNeighborsCapsAtFour(t *testing.T) {
	g := gridFrom(t, "OOO", "OOO", "OOO")
	if n := countNeighbors(g.Data(), g.Size(), 1, 1); n != countCap {
		t.Fatalf("count=%d, want %d", n, countCap)
	}
	g = gridFrom(t, "OO.", "O..", "...")
	if n := countNeighbors(g.Data(), g.Size(), 1, 1); n != 3 {
		t.Fatalf("count=%d, want 3", n)
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// On a torus (0,0) would see three live neighbors across the far edges
	// and be born.
	rows := []string{
		"....O",
		".....",
		".....",
		"O...O",
	}
	for _, e := range engines() {
		g := gridFrom(t, rows...)
		if n := countNeighbors(g.Data(), g.Size(), 0, 0); n != 0 {
			t.Fatalf("corner counted %d neighbors across the edge", n)
		}
		e.Step(g)
		if alive, _ := g.Get(0, 0); alive {
			t.Fatalf("%s: corner was born from wrapped neighbors", e.Name())
		}
	}
}

func TestRunDefaultsToOneGeneration(t *testing.T) {
	for _, n := range []int{0, -4} {
		g := gridFrom(t, ".O.", ".O.", ".O.")
		if ran := Run(NewScalar(), g, n); ran != 1 {
			t.Fatalf("Run(%d) ran %d generations", n, ran)
		}
		if got := render(g); !slices.Equal(got, []string{"...", "OOO", "..."}) {
			t.Fatalf("Run(%d) produced %v", n, got)
		}
	}
}

func TestScalarDeterministic(t *testing.T) {
	seedGrid := func() *core.Grid {
		g, _ := core.NewGrid(37, 23)
		core.NewRNG(11).FillBool(g.Data(), 0.35)
		return g
	}
	a, b := seedGrid(), seedGrid()
	Run(NewScalar(), a, 40)
	Run(NewScalar(), b, 40)
	if !slices.Equal(a.Data(), b.Data()) {
		t.Fatal("scalar engine is not deterministic")
	}
}

func TestEnginesAgree(t *testing.T) {
	sizes := []core.Size{
		{W: 1, H: 1}, {W: 1, H: 9}, {W: 9, H: 1}, {W: 3, H: 3},
		{W: 20, H: 5}, {W: 17, H: 31}, {W: 64, H: 48},
	}
	configs := []Config{{Workers: 1, Tile: 1}, {Workers: 3, Tile: 5}, {Workers: 8, Tile: 8}, {Workers: 2, Tile: 100}}
	for si, size := range sizes {
		for _, density := range []float64{0.15, 0.4, 0.75} {
			for ci, cfg := range configs {
				name := fmt.Sprintf("%dx%d/d%.2f/cfg%d", size.W, size.H, density, ci)
				t.Run(name, func(t *testing.T) {
					seed := int64(si*1000 + ci)
					scalar, _ := core.NewGrid(size.W, size.H)
					core.NewRNG(seed).FillBool(scalar.Data(), density)
					parallel, _ := core.NewGrid(size.W, size.H)
					parallel.Replace(scalar.Data())

					se, pe := NewScalar(), NewParallel(cfg)
					for gen := 1; gen <= 25; gen++ {
						se.Step(scalar)
						pe.Step(parallel)
						if !slices.Equal(scalar.Data(), parallel.Data()) {
							t.Fatalf("engines diverged at generation %d", gen)
						}
					}
				})
			}
		}
	}
}

func TestParallelReusesBuffersAcrossSizes(t *testing.T) {
	p := NewParallel(Config{Workers: 2, Tile: 4})
	small := gridFrom(t, ".O.", ".O.", ".O.")
	p.Step(small)
	big, _ := core.NewGrid(10, 10)
	_ = big.Set(4, 5, true)
	_ = big.Set(5, 5, true)
	_ = big.Set(6, 5, true)
	p.Step(big)
	if big.Alive() != 3 {
		t.Fatalf("alive=%d after resize, want 3", big.Alive())
	}
	if alive, _ := big.Get(5, 4); !alive {
		t.Fatal("blinker did not rotate on the larger grid")
	}
}

func TestTilesCoverGridOnce(t *testing.T) {
	size := core.Size{W: 13, H: 7}
	for _, n := range []int{1, 3, 8, 20} {
		seen := make([]int, size.Len())
		for _, tl := range tiles(size, n) {
			for r := tl.r0; r < tl.r1; r++ {
				for c := tl.c0; c < tl.c1; c++ {
					idx, ok := size.Index(r, c)
					if !ok {
						t.Fatalf("tile %+v leaves the grid", tl)
					}
					seen[idx]++
				}
			}
		}
		for i, s := range seen {
			if s != 1 {
				t.Fatalf("tile=%d: cell %d covered %d times", n, i, s)
			}
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"workers": "3", "tile": "16"})
	if c.Workers != 3 || c.Tile != 16 {
		t.Fatalf("FromMap = %+v", c)
	}
	def := DefaultConfig()
	c = FromMap(map[string]string{"workers": "zero", "tile": "-2"})
	if c != def {
		t.Fatalf("invalid values not ignored: %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{ScalarName, ParallelName} {
		f, ok := core.Engines()[name]
		if !ok {
			t.Fatalf("engine %q not registered", name)
		}
		if got := f(nil).Name(); got != name {
			t.Fatalf("factory %q built %q", name, got)
		}
	}
}

func benchmarkEngine(b *testing.B, e core.Engine) {
	g, _ := core.NewGrid(256, 256)
	core.NewRNG(1).FillBool(g.Data(), 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step(g)
	}
}

func BenchmarkScalar(b *testing.B) { benchmarkEngine(b, NewScalar()) }

func BenchmarkParallel(b *testing.B) {
	for _, tile := range []int{8, 32, 64} {
		b.Run(fmt.Sprintf("tile%d", tile), func(b *testing.B) {
			benchmarkEngine(b, NewParallel(Config{Workers: DefaultConfig().Workers, Tile: tile}))
		})
	}
}
