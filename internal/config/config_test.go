package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultT2048Config())
	}
	if len(GetDefaultYAML(t2048.IDClassic)) == 0 {
		t.Error("embedded YAML should not be empty")
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  size: 5
rules:
  target: 1024
`)

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Board.Size != 5 || cfg.Rules.Target != 1024 {
		t.Errorf("cfg = %+v, want size 5 target 1024", cfg)
	}
	// Missing keys keep defaults.
	if cfg.Board.InitialTiles != t2048.DefaultInitialTiles || cfg.Rules.Spawn4Prob != t2048.DefaultSpawn4Prob {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".term2048", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "t2048.yaml"), []byte("rules:\n  target: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Rules.Target != 0 {
		t.Errorf("Target = %d, want 0 from user config", cfg.Rules.Target)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"bad target", "rules:\n  target: 1000\n", t2048.ErrInvalidTarget},
		{"board too big", "board:\n  size: 9\n", t2048.ErrInvalidSize},
		{"board too small", "board:\n  size: 1\n", t2048.ErrInvalidSize},
		{"spawn prob", "rules:\n  spawn4_prob: 1.5\n", t2048.ErrInvalidSpawnProb},
		{"initial tiles", "board:\n  size: 2\n  initial_tiles: 5\n", t2048.ErrInvalidInitial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadT2048(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadT2048 error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMissingAndMalformed(t *testing.T) {
	if _, err := LoadT2048(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}
	if _, err := LoadT2048(writeConfig(t, "board: [1, 2")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestInvalidUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".term2048", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "t2048.yaml"), []byte("rules:\n  target: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("invalid user config should fall back to defaults, got %+v", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultT2048Config()
	ApplyT2048Preset(&cfg, DifficultyEasy)
	if cfg.Board.Size != 5 || cfg.Rules.Spawn4Prob >= t2048.DefaultSpawn4Prob {
		t.Errorf("easy = %+v", cfg)
	}

	cfg = DefaultT2048Config()
	ApplyT2048Preset(&cfg, DifficultyHard)
	if cfg.Rules.Spawn4Prob <= t2048.DefaultSpawn4Prob {
		t.Errorf("hard should spawn more 4s, got %v", cfg.Rules.Spawn4Prob)
	}

	cfg.Board.Size = 7
	ApplyT2048Preset(&cfg, DifficultyFixed)
	if cfg != DefaultT2048Config() {
		t.Errorf("fixed should restore classic rules, got %+v", cfg)
	}

	cfg = DefaultT2048Config()
	ApplyT2048Preset(&cfg, DifficultyNormal)
	if cfg != DefaultT2048Config() {
		t.Errorf("normal should not change defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestSettingsZeroSpawnProb(t *testing.T) {
	cfg := DefaultT2048Config()
	cfg.Rules.Spawn4Prob = 0

	s := cfg.Settings()
	if s.Spawn4Prob >= 0 {
		t.Errorf("zero spawn prob should map to a negative setting, got %v", s.Spawn4Prob)
	}
	if rules := t2048.RulesFromSettings(s, t2048.ModeClassic); rules.Spawn4Prob != 0 {
		t.Errorf("engine Spawn4Prob = %v, want 0", rules.Spawn4Prob)
	}
}

func TestSettingsKeepExplicitZeros(t *testing.T) {
	cfg := DefaultT2048Config()
	cfg.Board.InitialTiles = 0
	cfg.Rules.Target = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	settings := cfg.Settings()
	if got := t2048.ResolveID(t2048.IDClassic, settings); got != t2048.IDEndless {
		t.Errorf("ResolveID = %q, want %q", got, t2048.IDEndless)
	}

	g := t2048.New(settings)
	rc := core.DefaultConfig()
	rc.Seed = 1
	g.Reset(rc)

	rules := g.Session().Rules()
	if rules != cfg.EngineRules() {
		t.Errorf("session rules = %+v, want %+v", rules, cfg.EngineRules())
	}
	if got := g.Session().Grid().Occupied(); got != 0 {
		t.Errorf("occupied = %d, want an empty board", got)
	}
}
