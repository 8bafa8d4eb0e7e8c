package core

import "sort"

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Len returns the number of cells.
func (s Size) Len() int { return s.W * s.H }

// Index translates (row, col) to a flat row-major index. The second result is
// false when the coordinate lies outside the grid; edges never wrap.
func (s Size) Index(row, col int) (int, bool) {
	if row < 0 || row >= s.H || col < 0 || col >= s.W {
		return -1, false
	}
	return row*s.W + col, true
}

// Coords is the inverse of Index.
func (s Size) Coords(i int) (row, col int) { return i / s.W, i % s.W }

// Engine advances a grid by one generation.
type Engine interface {
	Name() string
	Step(g *Grid)
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
