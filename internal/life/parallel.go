package life

import (
	"gridlife/internal/core"

	"golang.org/x/sync/errgroup"
)

// ParallelName identifies the tiled parallel engine in the registry.
const ParallelName = "gpu"

// Parallel computes a generation by dispatching square tiles of the grid to
// independent workers. Workers read a private snapshot of the current
// generation and write disjoint slots of the next one, so no locking is
// needed within a generation.
type Parallel struct {
	cfg Config
	cur []bool
	nxt []bool
}

// NewParallel returns a parallel engine.
func NewParallel(cfg Config) *Parallel {
	return &Parallel{cfg: cfg.normalized()}
}

// Name returns the engine identifier.
func (p *Parallel) Name() string { return ParallelName }

// Config returns the active configuration.
func (p *Parallel) Config() Config { return p.cfg }

// SetWorkers changes the concurrency limit for subsequent generations.
func (p *Parallel) SetWorkers(n int) {
	p.cfg.Workers = n
	p.cfg = p.cfg.normalized()
}

// SetTile changes the tile edge length for subsequent generations.
func (p *Parallel) SetTile(n int) {
	p.cfg.Tile = n
	p.cfg = p.cfg.normalized()
}

// tile is a half-open rectangle of cells [r0,r1) x [c0,c1).
type tile struct {
	r0, r1 int
	c0, c1 int
}

// tiles partitions the grid into tiles of edge n. Edge tiles are clipped.
func tiles(size core.Size, n int) []tile {
	rows := (size.H + n - 1) / n
	cols := (size.W + n - 1) / n
	out := make([]tile, 0, rows*cols)
	for r := 0; r < size.H; r += n {
		for c := 0; c < size.W; c += n {
			out = append(out, tile{r0: r, r1: min(r+n, size.H), c0: c, c1: min(c+n, size.W)})
		}
	}
	return out
}

// Step advances g by one generation.
func (p *Parallel) Step(g *core.Grid) {
	size := g.Size()
	total := size.Len()
	if len(p.cur) != total {
		p.cur = make([]bool, total)
		p.nxt = make([]bool, total)
	}
	copy(p.cur, g.Data())

	cur, nxt := p.cur, p.nxt
	var eg errgroup.Group
	eg.SetLimit(p.cfg.Workers)
	for _, t := range tiles(size, p.cfg.Tile) {
		t := t
		eg.Go(func() error {
			for row := t.r0; row < t.r1; row++ {
				for col := t.c0; col < t.c1; col++ {
					idx, _ := size.Index(row, col)
					nxt[idx] = nextState(cur[idx], countNeighbors(cur, size, row, col))
				}
			}
			return nil
		})
	}
	// Wait is the generation barrier; kernels cannot fail.
	_ = eg.Wait()

	g.Replace(nxt)
}
