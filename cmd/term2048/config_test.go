package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/games/t2048"
)

func TestConfigYAMLDefaults(t *testing.T) {
	out, err := configYAML(t2048.IDEndless, false)
	if err != nil {
		t.Fatalf("configYAML: %v", err)
	}
	if !strings.Contains(string(out), "spawn4_prob") {
		t.Errorf("default YAML missing spawn4_prob:\n%s", out)
	}

	if _, err := configYAML("snake", false); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestConfigYAMLEffective(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig = ""
	flagDifficulty = "easy"
	defer func() { flagDifficulty = "" }()

	out, err := configYAML(t2048.IDClassic, true)
	if err != nil {
		t.Fatalf("configYAML: %v", err)
	}

	var got config.T2048Config
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := config.DefaultT2048Config()
	config.ApplyT2048Preset(&want, config.DifficultyEasy)
	if got != want {
		t.Errorf("effective config = %+v, want %+v", got, want)
	}
}
