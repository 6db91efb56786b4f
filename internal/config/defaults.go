package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    56,
			Height:   30,
			CellSize: 32,
		},
		Speed: SpeedConfig{
			BaseIntervalMS: 100,
			SpeedFactor:    8,
			MinIntervalMS:  0,
		},
		Food: FoodConfig{
			AvoidSnake: false,
		},
		Audio: AudioConfig{
			MusicOn: true,
		},
	}
}

// DefaultSnakeYAML returns the embedded default YAML, suitable as a starting
// point for ~/.snake/configs/snake.yaml.
func DefaultSnakeYAML() []byte {
	return defaultSnakeYAML
}
