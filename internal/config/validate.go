package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about a rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the configuration can drive a game.
// All problems are reported together.
func (c MazeShiftConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		}
	}

	check(c.Grid.Size >= 6, "grid.size", "must be at least 6, got %d", c.Grid.Size)
	check(c.Grid.CellSize >= 1, "grid.cell_size", "must be positive, got %d", c.Grid.CellSize)

	check(c.Speed.MinTickMs > 0, "speed.min_tick_ms", "must be positive, got %d", c.Speed.MinTickMs)
	check(c.Speed.BaseTickMs >= c.Speed.MinTickMs, "speed.base_tick_ms",
		"must be >= min_tick_ms (%d), got %d", c.Speed.MinTickMs, c.Speed.BaseTickMs)

	check(c.Shift.IntervalMs > 0, "shift.interval_ms", "must be positive, got %d", c.Shift.IntervalMs)
	check(c.Shift.WarningMs > 0, "shift.warning_ms", "must be positive, got %d", c.Shift.WarningMs)
	check(c.Shift.RetryMs > 0, "shift.retry_ms", "must be positive, got %d", c.Shift.RetryMs)
	check(c.Shift.ItemsPerShift > 0, "shift.items_per_shift", "must be positive, got %d", c.Shift.ItemsPerShift)

	check(c.Flow.WindowMs > 0, "flow.window_ms", "must be positive, got %d", c.Flow.WindowMs)
	check(len(c.Flow.Multipliers) > 0, "flow.multipliers", "must not be empty")
	for i := 1; i < len(c.Flow.Multipliers); i++ {
		check(c.Flow.Multipliers[i] > c.Flow.Multipliers[i-1], "flow.multipliers",
			"must be strictly ascending, entry %d is %.2f after %.2f", i, c.Flow.Multipliers[i], c.Flow.Multipliers[i-1])
	}

	check(c.Phase.MaxCharges >= 0, "phase.max_charges", "must not be negative, got %d", c.Phase.MaxCharges)
	check(c.Phase.WindowMoves >= 1, "phase.window_moves", "must be at least 1, got %d", c.Phase.WindowMoves)
	check(c.Phase.ItemsPerCharge > 0, "phase.items_per_charge", "must be positive, got %d", c.Phase.ItemsPerCharge)

	check(c.Burst.MaxCharges >= 0, "burst.max_charges", "must not be negative, got %d", c.Burst.MaxCharges)
	check(c.Burst.Radius >= 0, "burst.radius", "must not be negative, got %d", c.Burst.Radius)

	check(c.Slow.DurationMs >= 0, "slow.duration_ms", "must not be negative, got %d", c.Slow.DurationMs)
	check(c.Slow.Multiplier >= 1, "slow.multiplier", "must be >= 1, got %.2f", c.Slow.Multiplier)

	check(c.Walls.StartDensity >= 0 && c.Walls.StartDensity < 1, "walls.start_density",
		"must be in [0, 1), got %.3f", c.Walls.StartDensity)
	check(c.Walls.MaxDensity >= c.Walls.StartDensity && c.Walls.MaxDensity < 1, "walls.max_density",
		"must be in [start_density, 1), got %.3f", c.Walls.MaxDensity)
	check(c.Walls.SpawnPerShift > 0, "walls.spawn_per_shift", "must be positive, got %d", c.Walls.SpawnPerShift)
	check(c.Walls.BorderClearance >= 0 && c.Walls.BorderClearance*2 < c.Grid.Size, "walls.border_clearance",
		"must leave an interior, got %d", c.Walls.BorderClearance)

	check(c.Items.MoverChance >= 0 && c.Items.MoverChance <= 1, "items.mover_chance",
		"must be in [0, 1], got %.2f", c.Items.MoverChance)
	targets := c.Items.Apple.Target + c.Items.Bird.Target + c.Items.Banana.Target +
		c.Items.Strawberry.Target + c.Items.Clover.Target + c.Items.Acorn.Target + c.Items.Pepper.Target
	check(c.Items.Apple.Target >= 1, "items.apple.target", "at least one apple must be on the board")
	check(targets < c.Grid.Size*c.Grid.Size/4, "items", "population targets (%d) crowd the board", targets)

	return errors.Join(errs...)
}
