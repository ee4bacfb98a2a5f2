package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/registry"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the rules config",
	Long: `Print the built-in rules YAML, a starting point for a custom config.

With --effective, prints the rules after loading --config and applying
--difficulty instead.

Examples:
  term2048 config > ~/.term2048/configs/t2048.yaml
  term2048 config --effective --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the loaded rules instead of the defaults")
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := t2048.IDClassic
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			os.Exit(1)
		}
	}

	out, err := configYAML(gameID, flagConfigEffective)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// configYAML returns the embedded defaults for gameID, or the loaded rules.
func configYAML(gameID string, effective bool) ([]byte, error) {
	if !effective {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			return nil, fmt.Errorf("no default config for %q", gameID)
		}
		return data, nil
	}

	rules, err := loadRules()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(rules)
}
