package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "letterfall.yaml"

// Load loads letterfall configuration.
// Search order: customPath -> ~/.letterfall/configs/letterfall.yaml -> ./configs/letterfall.yaml -> embedded default
//
// Files are decoded on top of the defaults, so partial files only override
// the keys they name. The result is validated before it is returned.
func Load(customPath string) (Letterfall, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Letterfall{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Letterfall{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLetterfallYAML)
	if err != nil {
		return DefaultLetterfall(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Letterfall, error) {
	cfg := DefaultLetterfall()
	// A weights table in the file replaces the default one instead of merging.
	cfg.Letters.Weights = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Letterfall{}, fmt.Errorf("failed to parse: %w", err)
	}
	if cfg.Letters.Weights == nil {
		cfg.Letters.Weights = DefaultWeights()
	}
	if err := cfg.Validate(); err != nil {
		return Letterfall{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".letterfall", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Letterfall, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Letters.Speed = 0.08
		cfg.Letters.SpawnRate = 100
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Letters.Speed = 0.18
		cfg.Letters.SpawnRate = 60
	}
}
