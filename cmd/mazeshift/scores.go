package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazeshift/internal/platform/tui"
	"github.com/vovakirdan/mazeshift/internal/registry"
	"github.com/vovakirdan/mazeshift/internal/storage"
)

var (
	flagRecent      bool
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the best runs for a mode (default: mazeshift), its stats,
or the most recent runs.

Examples:
  mazeshift scores
  mazeshift scores mazeshift_seeded --limit 20
  mazeshift scores --recent
  mazeshift scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run for the mode")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "mazeshift"
	if len(args) == 1 {
		gameID = args[0]
	}
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'mazeshift list' to see available modes)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		logger.Info("cleared runs", "mode", gameID)
		return nil
	}

	var runs []storage.Run
	heading := "High Scores"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazeshift play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-7s  %-8s  %s\n", "Rank", "Score", "Len", "Time", "Cause", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-7s  %-8s  %s\n", "----", "-----", "---", "----", "-----", "----")

	for i, r := range runs {
		secs := r.ElapsedMs / 1000
		fmt.Printf("  %-4d  %-8.0f  %-4d  %-7s  %-8s  %s\n",
			i+1, r.Score, r.Length, fmt.Sprintf("%d:%02d", secs/60, secs%60), r.DeathCause,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %.0f  |  Average: %.1f  |  Runs: %d  |  Longest snake: %d\n",
			stats.BestScore, stats.AvgScore, stats.Runs, stats.LongestSnake)
	}
	return nil
}
