package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/storage"
)

// loadRules reads the rules config and applies the difficulty preset.
func loadRules() (config.T2048Config, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.T2048Config{}, err
	}

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyT2048Preset(&cfg, preset)

	return cfg, cfg.Validate()
}

// newLogger returns a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// newFileLogger logs to ~/.term2048/term2048.log so the full-screen UI stays clean.
// Falls back to discarding output if the file cannot be opened.
func newFileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "term2048"), func() {}
	}

	dir := filepath.Join(home, ".term2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "term2048"), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "term2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "term2048"), func() {}
	}
	return newLogger(f, "term2048"), func() { f.Close() }
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// settingsFor attaches the store's high score keeper to settings.
func settingsFor(settings core.GameSettings, store *storage.Store, gameID string, logger *log.Logger) core.GameSettings {
	if store != nil {
		settings.HighScores = storage.NewHighScoreKeeper(store, gameID, logger)
	}
	return settings
}
