package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  0, // fit to terminal
			Height: 0,
		},
		Snake: SnakeSnake{
			HatchSize: 3,
		},
		Speed: SnakeSpeed{
			MoveEveryTicks:    8, // 7.5 moves per second at 60fps
			MinMoveEveryTicks: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 5,
			},
		},
	}
}

// DefaultSnakeYAML returns the embedded default YAML, e.g. for writing a
// starter file to the user config directory.
func DefaultSnakeYAML() []byte {
	return defaultSnakeYAML
}
