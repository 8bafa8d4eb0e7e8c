// Package controller sits between the presentation layer and the engines. It
// owns the grid, applies single-cell toggles, and runs batches of generations
// on a named engine.
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"gridlife/internal/core"
	"gridlife/internal/life"
	"gridlife/internal/patterns"
)

// ErrUnknownEngine is returned when Compute names an unregistered engine.
var ErrUnknownEngine = errors.New("unknown engine")

// Config controls the grid dimensions and engine tunables.
type Config struct {
	Width  int
	Height int

	// EngineOptions is passed to every registered engine factory
	// (see life.FromMap for recognised keys).
	EngineOptions map[string]string

	// Logger receives one line per batch. Nil uses log.Default().
	Logger *log.Logger
}

// DefaultConfig returns a 20 column by 5 row board.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 5}
}

// Batch records the outcome of one Compute call.
type Batch struct {
	Engine     string
	Iterations int
	Elapsed    time.Duration
	Alive      int
	Generation int
}

// tunable is implemented by engines whose concurrency can be adjusted.
type tunable interface {
	Config() life.Config
	SetWorkers(n int)
	SetTile(n int)
}

// Controller serializes toggles against batches. Every exported method is
// safe for concurrent use.
type Controller struct {
	mu         sync.Mutex
	grid       *core.Grid
	engines    map[string]core.Engine
	generation int
	last       Batch
	logger     *log.Logger
}

// New builds a controller with an all-dead grid and one instance of every
// registered engine.
func New(cfg Config) (*Controller, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{grid: grid, engines: map[string]core.Engine{}, logger: logger}
	for name, factory := range core.Engines() {
		c.engines[name] = factory(cfg.EngineOptions)
	}
	return c, nil
}

// ParseIterations converts free-form text into a generation count. Anything
// that is not a positive unsigned 32-bit integer yields 1.
func ParseIterations(text string) int {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil || n == 0 {
		return 1
	}
	return int(n)
}

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// Generation returns the number of generations computed since the last reset.
func (c *Controller) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// LastBatch returns the most recent batch record.
func (c *Controller) LastBatch() Batch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Cells returns a row-major snapshot of the grid.
func (c *Controller) Cells() []bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Cells()
}

// Toggle sets a single cell outside of any generation step.
func (c *Controller) Toggle(row, col int, alive bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Set(row, col, alive)
}

// Flip inverts a single cell and returns its new state.
func (c *Controller) Flip(row, col int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	alive, err := c.grid.Get(row, col)
	if err != nil {
		return false, err
	}
	return !alive, c.grid.Set(row, col, !alive)
}

// Compute runs a batch of generations on the named engine. The count is
// parsed with ParseIterations.
func (c *Controller) Compute(engine, countText string) (Batch, error) {
	n := ParseIterations(countText)

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.engines[engine]
	if !ok {
		return Batch{}, fmt.Errorf("%w %q", ErrUnknownEngine, engine)
	}
	start := time.Now()
	n = life.Run(e, c.grid, n)
	c.generation += n
	c.last = Batch{
		Engine:     e.Name(),
		Iterations: n,
		Elapsed:    time.Since(start),
		Alive:      c.grid.Alive(),
		Generation: c.generation,
	}
	c.logger.Printf("batch engine=%s iterations=%d elapsed=%s alive=%d generation=%d",
		c.last.Engine, c.last.Iterations, c.last.Elapsed, c.last.Alive, c.last.Generation)
	return c.last, nil
}

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear()
	c.generation = 0
	c.last = Batch{}
}

// Randomize fills the grid with live cells at the given density and resets
// the generation counter.
func (c *Controller) Randomize(seed int64, density float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	core.NewRNG(seed).FillBool(c.grid.Data(), density)
	c.generation = 0
	c.last = Batch{}
}

// Stamp writes p with its top-left corner at (row, col). Pattern cells that
// fall outside the grid are dropped.
func (c *Controller) Stamp(row, col int, p patterns.Pattern) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.grid.IndexOf(row, col); !ok {
		return fmt.Errorf("stamp %s: %w", p.Name, core.ErrOutOfBounds)
	}
	cells := c.grid.Data()
	for r := 0; r < p.H; r++ {
		for pc := 0; pc < p.W; pc++ {
			idx, ok := c.grid.IndexOf(row+r, col+pc)
			if !ok {
				continue
			}
			cells[idx] = p.Alive(r, pc)
		}
	}
	return nil
}

// EngineNames lists the engines Compute accepts.
func (c *Controller) EngineNames() []string { return core.EngineNames() }
