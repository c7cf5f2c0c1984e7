package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/games/mazeshift"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.
The search order is --config, ~/.mazeshift/configs/mazeshift.yaml,
./configs/mazeshift.yaml, then the built-in defaults.

Examples:
  mazeshift config
  mazeshift config --difficulty hard
  mazeshift config --defaults > ~/.mazeshift/configs/mazeshift.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	mazeshift.SetConfigPath(flagConfig)
	mazeshift.SetDifficultyPreset(flagDifficulty)
	cfg, err := mazeshift.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
