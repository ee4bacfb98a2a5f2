package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

var (
	flagReplayMoves   string
	flagReplayVerbose bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a seeded game without the UI",
	Long: `Run a sequence of moves against a seeded game and print the result.

Moves are letters (LRUD) or names separated by commas or spaces.
The same --seed and moves always produce the same board.

Examples:
  term2048 replay --seed 42 --moves LLURDD
  term2048 replay --seed 7 --moves "left, up, right" --verbose`,
	Run: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayMoves, "moves", "", "Moves to apply (e.g. LLURD or left,up)")
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Print the board after every move")
}

func runReplay(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dirs, err := parseMoves(flagReplayMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := t2048.Init(rules.EngineRules(), t2048.WithSeed(flagSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReplayVerbose {
		fmt.Println("start")
		fmt.Println(boardView(session.Snapshot()))
	}

	for i, dir := range dirs {
		res := session.Move(dir)
		if flagReplayVerbose {
			line := fmt.Sprintf("%d. %s", i+1, dir)
			if !res.Changed {
				line += " (no change)"
			} else if res.ScoreGained > 0 {
				line += fmt.Sprintf(" +%d", res.ScoreGained)
			}
			if res.JustWon {
				line += " - target reached!"
			}
			fmt.Println(line)
			fmt.Println(boardView(session.Snapshot()))
		}
		if res.GameOver {
			if i < len(dirs)-1 {
				fmt.Printf("Game over after %d of %d moves\n", i+1, len(dirs))
			}
			break
		}
	}

	snap := session.Snapshot()
	if !flagReplayVerbose {
		fmt.Println(boardView(snap))
	}
	fmt.Printf("Score: %d\n", snap.Score)
	fmt.Printf("Moves: %d\n", snap.Moves)
	fmt.Printf("Max tile: %d\n", snap.MaxTile)
	fmt.Printf("State: %s\n", snap.State)
}

// parseMoves accepts "LLUR", "l,l,u,r" or "left up".
func parseMoves(s string) ([]t2048.Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tokens []string
	if strings.ContainsAny(s, ", ") {
		tokens = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	} else if _, ok := t2048.ParseDirection(s); ok {
		tokens = []string{s}
	} else {
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
	}

	dirs := make([]t2048.Direction, 0, len(tokens))
	for _, tok := range tokens {
		d, ok := t2048.ParseDirection(tok)
		if !ok {
			return nil, fmt.Errorf("invalid move %q", tok)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

var replayBoardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

func boardView(snap t2048.Snapshot) string {
	width := len(strconv.Itoa(snap.MaxTile))
	if width < 4 {
		width = 4
	}

	rows := make([]string, len(snap.Board))
	for r, row := range snap.Board {
		cells := make([]string, len(row))
		for c, v := range row {
			if v == 0 {
				cells[c] = fmt.Sprintf("%*s", width, ".")
			} else {
				cells[c] = fmt.Sprintf("%*d", width, v)
			}
		}
		rows[r] = strings.Join(cells, " ")
	}
	return replayBoardStyle.Render(strings.Join(rows, "\n"))
}
