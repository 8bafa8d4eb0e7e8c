package app

import (
	"flag"
	"io"
	"log"
	"strconv"

	"gridlife/internal/controller"
	"gridlife/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	Gap     int
	TPS     int
	Rate    int
	Seed    int64
	Density float64
	Engine  string
	Workers int
	Tile    int
	Pattern string
	Quiet   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:   20,
		Height:  5,
		Scale:   32,
		Gap:     2,
		TPS:     60,
		Rate:    10,
		Seed:    42,
		Density: 0.3,
		Engine:  life.ParallelName,
		Workers: def.Workers,
		Tile:    def.Tile,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Gap, "gap", c.Gap, "pixels between cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while autoplaying")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random fills")
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine used for autoplay (cpu or gpu)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel engine concurrency")
	fs.IntVar(&c.Tile, "tile", c.Tile, "parallel engine tile edge in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern stamped at the centre on start")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress per-batch log lines")
}

// Controller derives the controller configuration.
func (c *Config) Controller() controller.Config {
	cfg := controller.Config{
		Width:  c.Width,
		Height: c.Height,
		EngineOptions: map[string]string{
			"workers": strconv.Itoa(c.Workers),
			"tile":    strconv.Itoa(c.Tile),
		},
	}
	if c.Quiet {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return cfg
}
