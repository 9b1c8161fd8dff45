package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlimeJump loads Slime Jump configuration.
// Search order: customPath -> ~/.arcade/configs/slimejump.yaml -> ./configs/slimejump.yaml -> embedded default
func LoadSlimeJump(customPath string) (SlimeJumpConfig, error) {
	return load("slimejump.yaml", customPath, defaultSlimeJumpYAML, DefaultSlimeJumpConfig)
}

// LoadRunningMan loads Running Man configuration.
// Search order: customPath -> ~/.arcade/configs/runningman.yaml -> ./configs/runningman.yaml -> embedded default
func LoadRunningMan(customPath string) (RunningManConfig, error) {
	return load("runningman.yaml", customPath, defaultRunningManYAML, DefaultRunningManConfig)
}

// load resolves one game config. Files are decoded on top of the hardcoded
// defaults, so a file only needs the keys it changes.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath, defaults); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", filename), defaults); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes an optional config file. Missing or broken files are
// skipped so the next source in the search order is used.
func tryFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults(), false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySlimeJumpPreset modifies the config based on a difficulty preset.
func ApplySlimeJumpPreset(cfg *SlimeJumpConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyRunningManPreset modifies the config based on a difficulty preset.
func ApplyRunningManPreset(cfg *RunningManConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.InitialFollowers = 3
	case DifficultyHard:
		cfg.Player.InitialFollowers = 1
		cfg.Economy.UpgradeCost = 150
	}
}
