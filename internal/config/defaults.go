package config

import (
	_ "embed"
)

//go:embed defaults/mazeshift.yaml
var defaultMazeShiftYAML []byte

// DefaultMazeShiftConfig returns the default configuration.
// It mirrors defaults/mazeshift.yaml and is used when the embedded file
// cannot be parsed.
func DefaultMazeShiftConfig() MazeShiftConfig {
	return MazeShiftConfig{
		Grid: GridConfig{
			Size:     20,
			CellSize: 2,
		},
		Speed: SpeedConfig{
			BaseTickMs: 120,
			MinTickMs:  95,
		},
		Shift: ShiftConfig{
			IntervalMs:    12_000,
			WarningMs:     600,
			RetryMs:       2_000,
			ItemsPerShift: 4,
		},
		Flow: FlowConfig{
			WindowMs:    5_000,
			Multipliers: []float64{1.0, 1.5, 2.0},
		},
		Phase: PhaseConfig{
			MaxCharges:     2,
			WindowMoves:    2,
			ItemsPerCharge: 3,
			BonusScore:     25,
			ClearWalls:     4,
		},
		Burst: BurstConfig{
			MaxCharges: 2,
			Radius:     2,
		},
		Slow: SlowConfig{
			DurationMs: 4_000,
			Multiplier: 1.5,
		},
		Walls: WallsConfig{
			StartDensity:     0.08,
			MaxDensity:       0.22,
			DensityPerLength: 0.004,
			SpawnPerShift:    6,
			BorderClearance:  1,
		},
		Items: ItemsConfig{
			MoverChance:     0.35,
			AcornClearWalls: 6,
			Apple:           ItemConfig{Score: 10, Target: 2},
			Bird:            ItemConfig{Score: 30, Target: 1},
			Banana:          ItemConfig{Score: 5, Target: 1},
			Strawberry:      ItemConfig{Score: 50, Target: 1},
			Clover:          ItemConfig{Score: 15, Target: 1},
			Acorn:           ItemConfig{Score: 20, Target: 1},
			Pepper:          ItemConfig{Score: 15, Target: 1},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 8 * 60 * 1000, // 8 minutes of play
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMazeShiftYAML
}
