package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads snake configuration.
// Search order: customPath -> ~/.snaky/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("snake.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid
// files are skipped so the next source in the search order applies.
func tryLoad(path string) (SnakeConfig, bool) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// UserConfigPath returns the path to user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaky", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the snake based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveEveryTicks = max(cfg.Speed.MoveEveryTicks, 10)
	case DifficultyHard:
		cfg.Snake.HatchSize = max(cfg.Snake.HatchSize, 5)
	}
}
