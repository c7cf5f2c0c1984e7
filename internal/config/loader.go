package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name looked up in the config search path.
const ConfigFileName = "mazeshift.yaml"

// LoadMazeShift loads the game configuration.
// Search order: customPath -> ~/.mazeshift/configs/mazeshift.yaml -> ./configs/mazeshift.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is validated before it is returned.
func LoadMazeShift(customPath string) (MazeShiftConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeShiftConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return MazeShiftConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMazeShiftYAML)
	if err != nil {
		return DefaultMazeShiftConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
func Parse(data []byte) (MazeShiftConfig, error) {
	cfg := DefaultMazeShiftConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeShiftConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MazeShiftConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg MazeShiftConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazeshift", "configs", filename)
}

// ParsePreset converts a flag value into a preset.
// An empty string yields an empty preset, which leaves the config untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyMazeShiftPreset modifies the config based on a difficulty preset.
func ApplyMazeShiftPreset(cfg *MazeShiftConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust maze pressure based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Walls.StartDensity = 0.05
		cfg.Walls.MaxDensity = 0.15
		cfg.Shift.IntervalMs = 15_000
		cfg.Phase.MaxCharges = 3
	case DifficultyHard:
		cfg.Walls.StartDensity = 0.12
		cfg.Walls.MaxDensity = 0.3
		cfg.Shift.IntervalMs = 9_000
		cfg.Shift.WarningMs = 450
	}
}
