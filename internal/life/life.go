// Package life implements Conway's Game of Life on a bounded (non-wrapping)
// grid with two interchangeable engines: a sequential scan and a tiled
// parallel dispatch. Both produce bit-identical generations.
package life

import "gridlife/internal/core"

// Offset is a relative (row, col) neighbor position.
type Offset struct {
	DRow, DCol int
}

// Offsets is the Moore neighborhood in the order both engines consult it.
// The order only matters for where counting stops early.
var Offsets = [8]Offset{
	{0, 1}, {0, -1},
	{1, 0}, {-1, 0},
	{1, 1}, {-1, -1},
	{1, -1}, {-1, 1},
}

// countCap is the neighbor count at which counting stops. The rule never
// distinguishes 4 from anything larger.
const countCap = 4

// countNeighbors counts live neighbors of (row, col) in cells, stopping at
// countCap. Neighbors outside the grid contribute nothing.
func countNeighbors(cells []bool, size core.Size, row, col int) int {
	n := 0
	for _, o := range Offsets {
		idx, ok := size.Index(row+o.DRow, col+o.DCol)
		if !ok {
			continue
		}
		if cells[idx] {
			n++
			if n == countCap {
				break
			}
		}
	}
	return n
}

// nextState applies the transition rule to a capped neighbor count.
func nextState(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Run advances g by n generations with e. Counts below one run a single
// generation.
func Run(e core.Engine, g *core.Grid, n int) int {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		e.Step(g)
	}
	return n
}

func init() {
	core.Register(ScalarName, func(cfg map[string]string) core.Engine {
		return NewScalar()
	})
	core.Register(ParallelName, func(cfg map[string]string) core.Engine {
		return NewParallel(FromMap(cfg))
	})
}
