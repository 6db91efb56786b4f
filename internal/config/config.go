// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
	Food  FoodConfig  `yaml:"food"`
	Audio AudioConfig `yaml:"audio"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Width    int `yaml:"width"`     // cells
	Height   int `yaml:"height"`    // cells
	CellSize int `yaml:"cell_size"` // pixels per cell for pixel hosts
}

// SpeedConfig defines the tick interval curve:
// max(min_interval_ms, base_interval_ms - speed_factor*sqrt(score)).
type SpeedConfig struct {
	BaseIntervalMS float64 `yaml:"base_interval_ms"`
	SpeedFactor    float64 `yaml:"speed_factor"`
	MinIntervalMS  float64 `yaml:"min_interval_ms"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"` // retry placement off the snake's body
}

// AudioConfig defines the initial audio state.
type AudioConfig struct {
	MusicOn bool `yaml:"music_on"`
}

// Validate reports the first problem that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width < 2 || c.Board.Height < 1:
		return fmt.Errorf("config: board must be at least 2x1, got %dx%d", c.Board.Width, c.Board.Height)
	case c.Board.Width > math.MaxInt16 || c.Board.Height > math.MaxInt16:
		return fmt.Errorf("config: board %dx%d exceeds %d cells per side", c.Board.Width, c.Board.Height, math.MaxInt16)
	case c.Board.CellSize <= 0:
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Board.CellSize)
	case c.Speed.BaseIntervalMS < 0 || c.Speed.MinIntervalMS < 0:
		return errors.New("config: intervals must not be negative")
	case c.Speed.SpeedFactor < 0:
		return fmt.Errorf("config: speed_factor must not be negative, got %g", c.Speed.SpeedFactor)
	}
	return nil
}

// GameConfig converts the file configuration into the simulation's config.
func (c SnakeConfig) GameConfig() snake.Config {
	return snake.Config{
		BoardWidth:     c.Board.Width,
		BoardHeight:    c.Board.Height,
		CellSize:       c.Board.CellSize,
		BaseIntervalMS: c.Speed.BaseIntervalMS,
		SpeedFactor:    c.Speed.SpeedFactor,
		MinIntervalMS:  c.Speed.MinIntervalMS,
		AvoidSnake:     c.Food.AvoidSnake,
		MusicOn:        c.Audio.MusicOn,
	}
}

// FitToScreen shrinks the board so it fits a terminal of the given size with
// its frame and status line. It never grows the board.
func (c *SnakeConfig) FitToScreen(screenW, screenH int) {
	c.Board.Width = core.Clamp(c.Board.Width, 2, max(screenW-2, 2))
	c.Board.Height = core.Clamp(c.Board.Height, 1, max(screenH-4, 1))
}
