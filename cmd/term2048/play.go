package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing 2048. Without a mode, a goal picker is shown first.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - New game
  Esc              - Leave game
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5x5 board, fewer 4s
  normal - Rules from the config file
  hard   - More 4s spawn
  fixed  - Classic 4x4 rules, config file ignored

Examples:
  term2048 play
  term2048 play 2048
  term2048 play 2048_endless --difficulty easy
  term2048 play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings := rules.Settings()

	cfg := runtimeConfig()

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'term2048 modes' to see available modes.")
			os.Exit(1)
		}
		gameID = t2048.ResolveID(gameID, settings)
	} else {
		// Show goal selector
		selection, selErr := tui.RunGoalSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = selection.GameID()
		settings = selection.Apply(settings)
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	// Open score storage
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID, settingsFor(settings, store, gameID, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sessionID := uuid.NewString()
	logger.Info("game started", "game", gameID, "session", sessionID)

	// Run the game
	if err := tui.Run(game, tui.StoreRecorder(store), cfg, sessionID, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
