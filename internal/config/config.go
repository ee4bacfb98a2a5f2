// Package config provides YAML-based game configuration loading and
// difficulty presets for term2048.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board T2048Board `yaml:"board"`
	Rules T2048Rules `yaml:"rules"`
}

// T2048Board defines the board geometry.
type T2048Board struct {
	Size         int `yaml:"size"`
	InitialTiles int `yaml:"initial_tiles"`
}

// T2048Rules defines the goal and spawn parameters.
type T2048Rules struct {
	Target     int     `yaml:"target"`      // 0 = endless
	Spawn4Prob float64 `yaml:"spawn4_prob"` // chance of spawning a 4
}

// EngineRules converts the config to engine rules.
func (c T2048Config) EngineRules() t2048.Rules {
	return t2048.Rules{
		Size:         c.Board.Size,
		Target:       c.Rules.Target,
		Spawn4Prob:   c.Rules.Spawn4Prob,
		InitialTiles: c.Board.InitialTiles,
	}
}

// Validate checks the config against the engine's rule constraints.
func (c T2048Config) Validate() error {
	if err := c.EngineRules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Settings returns game settings for the registry.
// The high score store is left for the caller to attach.
func (c T2048Config) Settings() core.GameSettings {
	// zero in settings means "default"
	s := core.GameSettings{
		BoardSize:    c.Board.Size,
		Target:       c.Rules.Target,
		Spawn4Prob:   c.Rules.Spawn4Prob,
		InitialTiles: c.Board.InitialTiles,
	}
	if s.Target == 0 {
		s.Target = -1
	}
	if s.Spawn4Prob == 0 {
		s.Spawn4Prob = -1
	}
	if s.InitialTiles == 0 {
		s.InitialTiles = -1
	}
	return s
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // classic rules, file overrides ignored
)

// ParseDifficulty returns the preset named s. An empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
