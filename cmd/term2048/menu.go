package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start term2048 with an interactive menu",
	Long: `Start term2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  term2048 menu
  term2048 menu --difficulty hard
  term2048 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	// Open score storage
	store := openStore(logger)

	cfg := runtimeConfig()
	sessionID := uuid.NewString()
	logger.Info("menu session started", "session", sessionID)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		settings := rules.Settings()
		gameID := menuResult.GameID

		if menuResult.ChooseGoal {
			selection, selErr := tui.RunGoalSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}

			// User pressed back or quit
			if selection == nil {
				continue
			}

			gameID = selection.GameID()
			settings = selection.Apply(settings)
		}

		if gameID == "" {
			break
		}
		gameID = t2048.ResolveID(gameID, settings)

		// Create game instance
		game, err := registry.Create(gameID, settingsFor(settings, store, gameID, logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game unless one was given
		gameCfg := cfg
		if gameCfg.Seed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		// Run the game
		if err := tui.Run(game, tui.StoreRecorder(store), gameCfg, sessionID, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
