package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Grid stores one boolean per cell in row-major order.
type Grid struct {
	size Size
	data []bool
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{size: Size{W: w, H: h}, data: make([]bool, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return g.size }

// IndexOf returns the flat index for (row, col), or false when out of bounds.
func (g *Grid) IndexOf(row, col int) (int, bool) { return g.size.Index(row, col) }

// Set overwrites a single cell.
func (g *Grid) Set(row, col int, alive bool) error {
	idx, ok := g.IndexOf(row, col)
	if !ok {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, g.size.W, g.size.H)
	}
	g.data[idx] = alive
	return nil
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	idx, ok := g.IndexOf(row, col)
	if !ok {
		return false, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, g.size.W, g.size.H)
	}
	return g.data[idx], nil
}

// Cells returns a snapshot copy of the whole grid.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.data))
	copy(out, g.data)
	return out
}

// Data exposes the backing slice so engines can read and write in place.
func (g *Grid) Data() []bool { return g.data }

// Replace copies a full generation into the grid.
func (g *Grid) Replace(next []bool) {
	if len(next) != len(g.data) {
		panic(fmt.Sprintf("core: replace with %d cells, grid holds %d", len(next), len(g.data)))
	}
	copy(g.data, next)
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
