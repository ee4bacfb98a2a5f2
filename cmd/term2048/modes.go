package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List all game modes and goals",
	Long:    `Shows the registered game modes and the selectable goals.`,
	Run:     runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print modes
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Goals:")
	for i, goal := range t2048.Goals {
		fmt.Printf("  %d. %-18s %5d\n", i+1, goal.Name, goal.Target)
	}

	if game, err := registry.Create(t2048.IDClassic, core.GameSettings{}); err == nil {
		fmt.Println()
		fmt.Println("Controls:", game.Controls())
	}

	fmt.Println()
	fmt.Println("Run 'term2048 play <id>' to play a mode.")
}
