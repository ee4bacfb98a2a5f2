// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048 play [mode]        - Play (pick a goal if no mode is given)
//	term2048 menu               - Start menu to pick modes interactively
//	term2048 modes              - List available modes
//	term2048 serve              - Start SSH server for remote play
//	term2048 scores [mode]      - Show high scores
//	term2048 replay             - Replay a seeded game headlessly
//	term2048 config [mode]      - Print the rules config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.term2048/scores.db)
//	--config <path>       - Custom rules YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/term2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles, merge equal neighbours and reach the target tile.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  modes    - Show all game modes
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Replay a seeded game without a terminal UI
  config   - Print the rules config

Examples:
  term2048 play
  term2048 play 2048_endless
  term2048 menu --difficulty easy
  term2048 serve --ssh :2222
  term2048 replay --seed 42 --moves LLURDD`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.term2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
