package config

import (
	_ "embed"

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size:         t2048.BoardSize,
			InitialTiles: t2048.DefaultInitialTiles,
		},
		Rules: T2048Rules{
			Target:     t2048.DefaultTarget,
			Spawn4Prob: t2048.DefaultSpawn4Prob,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case t2048.IDClassic, t2048.IDEndless:
		return defaultT2048YAML
	default:
		return nil
	}
}
