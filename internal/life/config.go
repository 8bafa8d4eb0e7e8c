package life

import (
	"runtime"
	"strconv"
)

// Config holds tunables for the parallel engine.
type Config struct {
	// Workers bounds how many tiles are computed concurrently.
	Workers int
	// Tile is the edge length of the square tiles handed to each worker.
	Tile int
}

// DefaultConfig returns the default configuration: one worker per CPU and
// 8x8 tiles.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU(), Tile: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Tile = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Tile <= 0 {
		c.Tile = DefaultConfig().Tile
	}
	return c
}
