package life

import "gridlife/internal/core"

// ScalarName identifies the sequential engine in the registry.
const ScalarName = "cpu"

// Scalar computes a generation with a single row-major scan. Transitions are
// queued during the scan and applied afterwards so every count sees the
// previous generation.
type Scalar struct {
	kill      []int
	resurrect []int
}

// NewScalar returns a sequential engine.
func NewScalar() *Scalar { return &Scalar{} }

// Name returns the engine identifier.
func (s *Scalar) Name() string { return ScalarName }

// Step advances g by one generation.
func (s *Scalar) Step(g *core.Grid) {
	size := g.Size()
	cells := g.Data()
	s.kill = s.kill[:0]
	s.resurrect = s.resurrect[:0]

	row, col := 0, 0
	for i, alive := range cells {
		n := countNeighbors(cells, size, row, col)
		next := nextState(alive, n)
		switch {
		case alive && !next:
			s.kill = append(s.kill, i)
		case !alive && next:
			s.resurrect = append(s.resurrect, i)
		}
		col++
		if col == size.W {
			col = 0
			row++
		}
	}

	for _, i := range s.kill {
		cells[i] = false
	}
	for _, i := range s.resurrect {
		cells[i] = true
	}
}
