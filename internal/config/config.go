// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Player    PlayerConfig    `yaml:"player"`
	Fruit     FruitConfig     `yaml:"fruit"`
	Loop      LoopConfig      `yaml:"loop"`
	Placement PlacementConfig `yaml:"placement"`
}

// BoardConfig defines the board geometry in pixels.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// PlayerConfig defines the player's starting body.
type PlayerConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// FruitConfig defines fruit scoring.
type FruitConfig struct {
	Value int `yaml:"value"`
}

// LoopConfig defines simulation timing.
type LoopConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// PlacementConfig bounds random fruit placement.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// GridWidth returns the number of cells along the x axis, wall included.
func (c SnakeConfig) GridWidth() int {
	if c.Board.CellSize <= 0 {
		return 0
	}
	return c.Board.Width / c.Board.CellSize
}

// GridHeight returns the number of cells along the y axis, wall included.
func (c SnakeConfig) GridHeight() int {
	if c.Board.CellSize <= 0 {
		return 0
	}
	return c.Board.Height / c.Board.CellSize
}

// FitTerminal resizes the board to the largest grid that fits a terminal of
// cols x rows characters. Each cell takes two columns; reserved rows are kept
// free for the help line.
func (c *SnakeConfig) FitTerminal(cols, rows, reserved int) {
	gridW := cols / 2
	gridH := rows - reserved
	if gridW < 1 || gridH < 1 || c.Board.CellSize <= 0 {
		return
	}
	c.Board.Width = gridW * c.Board.CellSize
	c.Board.Height = gridH * c.Board.CellSize
}

// Validate reports the first configuration problem, wrapped with ErrInvalid.
// A valid config has a board the starting body fits into.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width <= 0:
		return fmt.Errorf("%w: board.width must be positive, got %d", ErrInvalid, b.Width)
	case b.Height <= 0:
		return fmt.Errorf("%w: board.height must be positive, got %d", ErrInvalid, b.Height)
	case b.CellSize <= 0:
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalid, b.CellSize)
	case b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0:
		return fmt.Errorf("%w: board.cell_size %d must divide %dx%d", ErrInvalid, b.CellSize, b.Width, b.Height)
	case c.GridHeight() < 3:
		return fmt.Errorf("%w: board needs at least 3 rows, got %d", ErrInvalid, c.GridHeight())
	case c.Player.InitialLength <= 0:
		return fmt.Errorf("%w: player.initial_length must be positive, got %d", ErrInvalid, c.Player.InitialLength)
	case c.Player.InitialLength > c.GridWidth()-2:
		return fmt.Errorf("%w: player.initial_length %d does not fit %d inner columns",
			ErrInvalid, c.Player.InitialLength, c.GridWidth()-2)
	case c.Fruit.Value <= 0:
		return fmt.Errorf("%w: fruit.value must be positive, got %d", ErrInvalid, c.Fruit.Value)
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("%w: loop.tick_interval must be positive, got %s", ErrInvalid, c.Loop.TickInterval)
	case c.Placement.MaxAttempts <= 0:
		return fmt.Errorf("%w: placement.max_attempts must be positive, got %d", ErrInvalid, c.Placement.MaxAttempts)
	}
	return nil
}
