package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode, or for every mode.

Examples:
  term2048 scores
  term2048 scores 2048 --limit 20
  term2048 scores 2048 --all
  term2048 scores 2048_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded game")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	var modes []registry.GameInfo
	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'term2048 modes' to see available modes.")
			os.Exit(1)
		}
		for _, g := range registry.List() {
			if g.ID == gameID {
				modes = append(modes, g)
			}
		}
	} else {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		modes = registry.List()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	opts := scoresOptions{limit: flagScoresLimit, all: flagScoresAll, clear: flagScoresClear, summary: len(args) == 0}
	err = showScores(os.Stdout, store, modes, opts)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type scoresOptions struct {
	limit   int
	all     bool // ignore limit
	clear   bool
	summary bool // totals table after the per-mode lists
}

// showScores clears or prints the scores of modes.
func showScores(w io.Writer, store *storage.Store, modes []registry.GameInfo, opts scoresOptions) error {
	if opts.clear {
		for _, mode := range modes {
			if err := store.ClearScores(mode.ID); err != nil {
				return fmt.Errorf("clearing scores: %w", err)
			}
			fmt.Fprintf(w, "Cleared scores for %s\n", mode.Title)
		}
		return nil
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := printScores(w, store, mode, opts); err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
	}

	if opts.summary {
		fmt.Fprintln(w)
		if err := printSummary(w, store, modes); err != nil {
			return fmt.Errorf("retrieving stats: %w", err)
		}
	}
	return nil
}

func printScores(w io.Writer, store *storage.Store, mode registry.GameInfo, opts scoresOptions) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if opts.all {
		scores, err = store.AllScores(mode.ID)
	} else {
		scores, err = store.TopScores(mode.ID, opts.limit)
	}
	if err != nil {
		return err
	}

	highScore, err := store.HighScore(mode.ID)
	if err != nil {
		return err
	}

	// Display scores
	fmt.Fprintf(w, "High Scores - %s\n", mode.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		if highScore > 0 {
			fmt.Fprintf(w, "Best: %d\n", highScore)
		}
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "Play 'term2048 play %s' to set the first high score!\n", mode.ID)
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		tile := fmt.Sprintf("%d", entry.MaxTile)
		if entry.Won {
			tile += "*"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-6s  %-6d  %s\n", i+1, entry.Score, tile, entry.Moves, dateStr)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", highScore)
	if stats, err := store.GetGameStats(mode.ID); err == nil {
		fmt.Fprintf(w, "Games: %d  Wins: %d  Average: %.0f\n", stats.GamesCount, stats.Wins, stats.AvgScore)
	}

	return nil
}

// printSummary prints one totals line per mode that has been played.
func printSummary(w io.Writer, store *storage.Store, modes []registry.GameInfo) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}

	fmt.Fprintln(w, "Summary")
	fmt.Fprintf(w, "  %-14s  %-6s  %-8s  %-6s  %s\n", "Mode", "Games", "Best", "Tile", "Last played")
	for _, mode := range modes {
		stats, ok := all[mode.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-14s  %-6d  %-8d  %-6d  %s\n",
			mode.ID, stats.GamesCount, stats.HighScore, stats.BestTile, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
