// Package config provides YAML-based game configuration loading and
// difficulty management for snaky.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Snake      SnakeSnake       `yaml:"snake"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the board size. Zero means fit to the terminal.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSnake defines parameters of a freshly hatched snake.
type SnakeSnake struct {
	HatchSize int `yaml:"hatch_size"` // Growth owed by a new snake
}

// SnakeSpeed defines how many frames pass between engine steps.
type SnakeSpeed struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid %dx%d has a negative side", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.HatchSize < 0 {
		return fmt.Errorf("%w: hatch_size %d is negative", ErrInvalidConfig, c.Snake.HatchSize)
	}
	if c.Speed.MoveEveryTicks < 1 {
		return fmt.Errorf("%w: move_every_ticks must be at least 1, got %d", ErrInvalidConfig, c.Speed.MoveEveryTicks)
	}
	if c.Speed.MinMoveEveryTicks < 1 || c.Speed.MinMoveEveryTicks > c.Speed.MoveEveryTicks {
		return fmt.Errorf("%w: min_move_every_ticks must be in [1, %d], got %d",
			ErrInvalidConfig, c.Speed.MoveEveryTicks, c.Speed.MinMoveEveryTicks)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: initial_level %.2f outside [0, 1]", ErrInvalidConfig, c.Difficulty.InitialLevel)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Frames removed from the move interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
