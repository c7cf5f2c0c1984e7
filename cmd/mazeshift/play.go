package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/games/mazeshift"
	"github.com/vovakirdan/mazeshift/internal/platform/audio"
	"github.com/vovakirdan/mazeshift/internal/platform/tui"
	"github.com/vovakirdan/mazeshift/internal/registry"
	"github.com/vovakirdan/mazeshift/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode a menu lets you pick one.

Controls:
  Arrows/WASD  - Turn
  Space/Z/X    - Burst (clear walls around the head)
  P/Esc        - Pause
  R            - Restart (after game over)
  M            - Mute
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Sparse walls, slow shifts
  normal - Default pressure, speed ramps from 30%
  hard   - Dense walls, frequent shifts
  fixed  - No speed progression

Examples:
  mazeshift play
  mazeshift play mazeshift --difficulty easy
  mazeshift play mazeshift_seeded --seed 42
  mazeshift play mazeshift --config ./my-maze.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogPath, "log-file", tui.DefaultLogPath, "Where the game writes its log while running")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q (run 'mazeshift list' to see available modes)", gameID)
		}
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	mazeshift.SetConfigPath(flagConfig)
	mazeshift.SetDifficultyPreset(flagDifficulty)

	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	for gameID == "" {
		res, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			return fmt.Errorf("menu: %w", menuErr)
		}
		if res.Quit {
			return nil
		}
		cfg = res.Config
		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if !goBack {
				return nil
			}
			continue
		}
		gameID = res.GameID
		if res.Difficulty != "" {
			mazeshift.SetDifficultyPreset(string(res.Difficulty))
		}
	}

	// Surface config problems before the alternate screen hides them
	if _, err := mazeshift.LoadConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	hostLog, closer, err := tui.OpenLogFile(flagLogPath, logger.GetLevel())
	if err != nil {
		logger.Warn("game log disabled", "error", err)
		hostLog = nil
	} else {
		defer closer.Close()
	}

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer(audio.DefaultVolume)
		if audioErr := player.Initialize(); audioErr != nil {
			logger.Warn("audio disabled", "error", audioErr)
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	model, err := tui.Run(game, cfg, tui.Options{Store: store, Audio: player, Logger: hostLog})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	state := game.State()
	fmt.Printf("%s  |  Score %.0f  |  Time %.1fs  |  Best %.0f\n",
		game.Title(), state.Score, float64(state.ElapsedMs)/1000, model.BestScore())
	return nil
}
