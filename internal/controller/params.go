package controller

import (
	"strconv"

	"gridlife/internal/core"
)

const (
	keyWorkers = "workers"
	keyTile    = "tile"
)

// Parameters reports grid and batch statistics for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := c.grid.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("generation", "Generation", c.generation),
				intParam("alive", "Alive", c.grid.Alive()),
			},
		},
		{
			Name: "Last batch",
			Params: []core.Parameter{
				stringParam("engine", "Engine", c.last.Engine),
				intParam("iterations", "Iterations", c.last.Iterations),
				stringParam("elapsed", "Elapsed", c.last.Elapsed.String()),
			},
		},
	}
	if t := c.tunableLocked(); t != nil {
		cfg := t.Config()
		groups = append(groups, core.ParameterGroup{
			Name: "Parallel",
			Params: []core.Parameter{
				intParam(keyWorkers, "Workers", cfg.Workers),
				intParam(keyTile, "Tile", cfg.Tile),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the parallel engine tunables.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyWorkers, Label: "Workers", Step: 1, Min: 1, HasMin: true, Max: 256, HasMax: true},
		{Key: keyTile, Label: "Tile", Step: 1, Min: 1, HasMin: true, Max: 256, HasMax: true},
	}
}

// SetIntParameter updates a parallel engine tunable. It reports whether the
// key was recognised.
func (c *Controller) SetIntParameter(key string, value int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.tunableLocked()
	if t == nil {
		return false
	}
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case keyWorkers:
			t.SetWorkers(value)
		case keyTile:
			t.SetTile(value)
		}
		return true
	}
	return false
}

func (c *Controller) tunableLocked() tunable {
	for _, name := range core.EngineNames() {
		if t, ok := c.engines[name].(tunable); ok {
			return t
		}
	}
	return nil
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
