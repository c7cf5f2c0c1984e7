// mazeshift is a snake game on a maze that shifts under you, played in the terminal.
//
// Usage:
//
//	mazeshift list              - List available modes
//	mazeshift play [mode]       - Play (without a mode, pick one from a menu)
//	mazeshift scores [mode]     - Show high scores, recent runs and stats
//	mazeshift sim               - Run a headless game and print a summary
//	mazeshift config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.mazeshift/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/mazeshift/internal/games/mazeshift"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazeshift",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazeshift",
	Short: "Maze Shift - snake on a maze that keeps moving",
	Long: `Maze Shift is a terminal snake game. The walls drift every few seconds,
items come with side effects, and phase charges let you slip through
a wall when the maze closes in.

Available commands:
  list     - Show the available modes
  play     - Play a mode (or pick one from the menu)
  scores   - View high scores, recent runs and stats
  sim      - Run a headless game from a seed
  config   - Print the effective configuration

Examples:
  mazeshift play
  mazeshift play mazeshift_seeded --seed 42
  mazeshift scores --recent
  mazeshift sim --seed 42 --ticks 2000`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazeshift/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
