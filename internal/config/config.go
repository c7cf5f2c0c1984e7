// Package config provides YAML-based game configuration loading and
// difficulty management for mazeshift.
package config

// MazeShiftConfig contains all tunables of the simulation core.
// Values are fixed at process start and never mutated while a game runs.
type MazeShiftConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Shift      ShiftConfig      `yaml:"shift"`
	Flow       FlowConfig       `yaml:"flow"`
	Phase      PhaseConfig      `yaml:"phase"`
	Burst      BurstConfig      `yaml:"burst"`
	Slow       SlowConfig       `yaml:"slow"`
	Walls      WallsConfig      `yaml:"walls"`
	Items      ItemsConfig      `yaml:"items"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size     int `yaml:"size"`      // Cells per side (board is square)
	CellSize int `yaml:"cell_size"` // Rendering width of one cell in columns
}

// SpeedConfig defines the tick duration range.
// The ramp between the two is driven by the difficulty progression.
type SpeedConfig struct {
	BaseTickMs int `yaml:"base_tick_ms"`
	MinTickMs  int `yaml:"min_tick_ms"`
}

// ShiftConfig defines the maze shift cadence.
type ShiftConfig struct {
	IntervalMs    int `yaml:"interval_ms"`
	WarningMs     int `yaml:"warning_ms"`
	RetryMs       int `yaml:"retry_ms"` // Countdown after an unsafe shift was discarded
	ItemsPerShift int `yaml:"items_per_shift"`
}

// FlowConfig defines the scoring streak window.
type FlowConfig struct {
	WindowMs    int       `yaml:"window_ms"`
	Multipliers []float64 `yaml:"multipliers"` // Ascending, first entry is the base
}

// PhaseConfig defines wall-passing charges.
type PhaseConfig struct {
	MaxCharges     int `yaml:"max_charges"`
	WindowMoves    int `yaml:"window_moves"`
	ItemsPerCharge int `yaml:"items_per_charge"`
	BonusScore     int `yaml:"bonus_score"`
	ClearWalls     int `yaml:"clear_walls"` // Walls removed when the interval bonus fires
}

// BurstConfig defines the wall-clearing burst.
type BurstConfig struct {
	MaxCharges int `yaml:"max_charges"`
	Radius     int `yaml:"radius"` // Chebyshev radius around the head
}

// SlowConfig defines the slowing effect.
type SlowConfig struct {
	DurationMs int     `yaml:"duration_ms"`
	Multiplier float64 `yaml:"multiplier"` // Applied to the tick duration while active
}

// WallsConfig defines wall density and churn.
type WallsConfig struct {
	StartDensity     float64 `yaml:"start_density"`
	MaxDensity       float64 `yaml:"max_density"`
	DensityPerLength float64 `yaml:"density_per_length"`
	SpawnPerShift    int     `yaml:"spawn_per_shift"`
	BorderClearance  int     `yaml:"border_clearance"`
}

// ItemsConfig defines per-kind scoring and population targets.
type ItemsConfig struct {
	MoverChance     float64    `yaml:"mover_chance"` // Per-tick chance a mobile item tries to step
	AcornClearWalls int        `yaml:"acorn_clear_walls"`
	Apple           ItemConfig `yaml:"apple"`
	Bird            ItemConfig `yaml:"bird"`
	Banana          ItemConfig `yaml:"banana"`
	Strawberry      ItemConfig `yaml:"strawberry"`
	Clover          ItemConfig `yaml:"clover"`
	Acorn           ItemConfig `yaml:"acorn"`
	Pepper          ItemConfig `yaml:"pepper"`
}

// ItemConfig is the score value and standing population of one item kind.
type ItemConfig struct {
	Score  int `yaml:"score"`
	Target int `yaml:"target"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed milliseconds at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
