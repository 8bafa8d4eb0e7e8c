package app

import (
	"fmt"

	"gridlife/internal/controller"
	"gridlife/internal/patterns"
)

// Setup builds a controller from cfg and seeds it: a named built-in pattern
// is stamped at the centre, "random" fills the grid from cfg.Seed, and an
// empty name leaves every cell dead.
func Setup(cfg *Config) (*controller.Controller, error) {
	c, err := controller.New(cfg.Controller())
	if err != nil {
		return nil, err
	}
	switch cfg.Pattern {
	case "":
	case "random":
		c.Randomize(cfg.Seed, cfg.Density)
	default:
		p, ok := patterns.Builtin(cfg.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (have %v)", cfg.Pattern, patterns.Names())
		}
		size := c.Size()
		if err := c.Stamp((size.H-p.H)/2, (size.W-p.W)/2, p); err != nil {
			return nil, err
		}
	}
	return c, nil
}
