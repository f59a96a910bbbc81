package app

import (
	"errors"
	"flag"
	"time"

	"game-of-life/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows int
	Cols int

	WindowWidth  int
	WindowHeight int
	Fullscreen   bool

	Tick  time.Duration
	Frame time.Duration

	Seed int64
	HUD  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:         80,
		Cols:         120,
		WindowWidth:  1280,
		WindowHeight: 800,
		Tick:         100 * time.Millisecond,
		Frame:        8 * time.Millisecond,
		HUD:          true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "minimum time between generations")
	fs.DurationVar(&c.Frame, "frame", c.Frame, "minimum time between rendered frames")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for a random starting soup (0 starts empty)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}

// Validate rejects settings the loop cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.New("grid dimensions must be positive")
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.New("window size must be positive")
	case c.Tick <= 0 || c.Frame <= 0:
		return errors.New("tick and frame intervals must be positive")
	}
	return nil
}

// NewGrid builds the starting grid described by the configuration.
func (c *Config) NewGrid() (*core.Grid, error) {
	grid, err := core.NewGrid(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	if c.Seed != 0 {
		grid.Randomize(c.Seed)
	}
	return grid, nil
}
