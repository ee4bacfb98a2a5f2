package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const t2048File = "t2048.yaml"

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.term2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadT2048(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultT2048Config()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(t2048File); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", t2048File)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid files are skipped.
func tryLoad(path string) (T2048Config, bool) {
	cfg := DefaultT2048Config()
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

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".term2048", "configs", filename)
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Size = 5
		cfg.Rules.Spawn4Prob = 0.05
	case DifficultyHard:
		cfg.Board.Size = 4
		cfg.Rules.Spawn4Prob = 0.25
	case DifficultyFixed:
		*cfg = DefaultT2048Config()
	}
}
