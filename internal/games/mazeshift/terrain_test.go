package mazeshift

import (
	"testing"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/rng"
)

func TestParseTerrainRoundTrip(t *testing.T) {
	rows := []string{
		"#...",
		".#..",
		"....",
		"...#",
	}
	terrain := ParseTerrain(rows...)

	if terrain.Size() != 4 {
		t.Fatalf("Size() = %d, expected 4", terrain.Size())
	}
	if got := CountWalls(terrain); got != 3 {
		t.Errorf("CountWalls = %d, expected 3", got)
	}
	expected := "#...\n.#..\n....\n...#"
	if got := terrain.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if terrain.Wall(core.Pt(-1, 0)) || terrain.Wall(core.Pt(4, 0)) {
		t.Error("out-of-bounds cells should not be walls")
	}
}

func TestApplyShiftRoundTrip(t *testing.T) {
	original := ParseTerrain(
		"#....",
		"..#..",
		"....#",
		".....",
		"#...#",
	)

	tests := []struct {
		name      string
		there     ShiftDirection
		backAgain ShiftDirection
	}{
		{"left then right", ShiftLeft, ShiftRight},
		{"right then left", ShiftRight, ShiftLeft},
		{"up then down", ShiftUp, ShiftDown},
		{"down then up", ShiftDown, ShiftUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moved := ApplyShift(original, tc.there)
			if moved.Equal(original) {
				t.Fatal("shift should change the terrain")
			}
			if CountWalls(moved) != CountWalls(original) {
				t.Errorf("shift changed wall count: %d -> %d", CountWalls(original), CountWalls(moved))
			}
			if back := ApplyShift(moved, tc.backAgain); !back.Equal(original) {
				t.Errorf("round trip failed:\n%s", back)
			}
		})
	}
}

func TestApplyShiftWraps(t *testing.T) {
	terrain := NewTerrain(10)
	terrain = AddWalls(terrain, rng.NewScripted(0.0, 0.35), nil, nil, 1, 1, 0) // wall at (0,3)
	if !terrain.Wall(core.Pt(0, 3)) {
		t.Fatalf("setup: expected wall at (0,3), got\n%s", terrain)
	}

	tests := []struct {
		dir      ShiftDirection
		expected core.Point
	}{
		{ShiftLeft, core.Pt(9, 3)},
		{ShiftRight, core.Pt(1, 3)},
		{ShiftUp, core.Pt(0, 2)},
		{ShiftDown, core.Pt(0, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			moved := ApplyShift(terrain, tc.dir)
			if !moved.Wall(tc.expected) {
				t.Errorf("expected wall at %v after %s shift, got %v", tc.expected, tc.dir, moved.Walls())
			}
			if !terrain.Wall(core.Pt(0, 3)) {
				t.Error("ApplyShift must not modify its input")
			}
		})
	}
}

func TestIsSafeShift(t *testing.T) {
	terrain := ParseTerrain(
		"......",
		"......",
		"#.....",
		"......",
		"......",
		"......",
	)
	snake := []core.Point{core.Pt(3, 2), core.Pt(2, 2), core.Pt(1, 2)}

	tests := []struct {
		dir  ShiftDirection
		safe bool
	}{
		{ShiftRight, false}, // (0,2) -> (1,2) is the tail
		{ShiftLeft, true},   // wraps to (5,2)
		{ShiftUp, true},
		{ShiftDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := IsSafeShift(terrain, snake, tc.dir); got != tc.safe {
				t.Errorf("IsSafeShift(%s) = %v, expected %v", tc.dir, got, tc.safe)
			}
		})
	}

	wrapped := ParseTerrain(
		"......",
		"......",
		".....#",
		"......",
		"......",
		"......",
	)
	if IsSafeShift(wrapped, []core.Point{core.Pt(0, 2)}, ShiftRight) {
		t.Error("a wall wrapping onto the snake should be unsafe")
	}
}

func TestInitWalls(t *testing.T) {
	snake := StartingSnake(12)

	t.Run("full density fills the interior", func(t *testing.T) {
		terrain := InitWalls(12, rng.NewMulberry32(1), snake, 1.0, 1)
		for y := 0; y < 12; y++ {
			for x := 0; x < 12; x++ {
				p := core.Pt(x, y)
				border := x < 1 || y < 1 || x >= 11 || y >= 11
				expected := !border && !occupies(snake, p)
				if terrain.Wall(p) != expected {
					t.Fatalf("Wall(%v) = %v, expected %v", p, terrain.Wall(p), expected)
				}
			}
		}
	})

	t.Run("zero density is empty", func(t *testing.T) {
		terrain := InitWalls(12, rng.NewMulberry32(1), snake, 0, 1)
		if n := CountWalls(terrain); n != 0 {
			t.Errorf("CountWalls = %d, expected 0", n)
		}
	})

	t.Run("same seed same walls", func(t *testing.T) {
		a := InitWalls(12, rng.NewMulberry32(99), snake, 0.3, 1)
		b := InitWalls(12, rng.NewMulberry32(99), snake, 0.3, 1)
		if !a.Equal(b) {
			t.Error("InitWalls should be deterministic for a seed")
		}
	})
}

func TestPlanShift(t *testing.T) {
	tests := []struct {
		draw     float64
		expected ShiftDirection
	}{
		{0.0, ShiftLeft},
		{0.3, ShiftRight},
		{0.6, ShiftUp},
		{0.9, ShiftDown},
	}

	for _, tc := range tests {
		if got := PlanShift(rng.NewScripted(tc.draw)); got != tc.expected {
			t.Errorf("PlanShift(%.1f) = %s, expected %s", tc.draw, got, tc.expected)
		}
	}
}

func TestTargetWallCount(t *testing.T) {
	walls := config.WallsConfig{StartDensity: 0.08, MaxDensity: 0.22, DensityPerLength: 0.004}

	tests := []struct {
		name     string
		size     int
		length   int
		expected int
	}{
		{"starting length", 10, 3, 8},
		{"shorter clamps to start", 10, 1, 8},
		{"long snake capped", 10, 100, 22},
		{"capped on large grid", 20, 100, 88},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TargetWallCount(tc.size, tc.length, walls); got != tc.expected {
				t.Errorf("TargetWallCount(%d, %d) = %d, expected %d", tc.size, tc.length, got, tc.expected)
			}
		})
	}
}

func TestAddWalls(t *testing.T) {
	snake := []core.Point{core.Pt(5, 5), core.Pt(4, 5), core.Pt(3, 5)}
	avoid := []core.Point{core.Pt(6, 5)}

	t.Run("respects batch limit", func(t *testing.T) {
		terrain := AddWalls(NewTerrain(10), rng.NewMulberry32(3), snake, avoid, 50, 6, 1)
		if n := CountWalls(terrain); n != 6 {
			t.Errorf("CountWalls = %d, expected 6", n)
		}
	})

	t.Run("stops at target", func(t *testing.T) {
		terrain := AddWalls(NewTerrain(10), rng.NewMulberry32(3), snake, avoid, 2, 6, 1)
		if n := CountWalls(terrain); n != 2 {
			t.Errorf("CountWalls = %d, expected 2", n)
		}
	})

	t.Run("never blocks snake, anchors or border", func(t *testing.T) {
		terrain := AddWalls(NewTerrain(10), rng.NewMulberry32(8), snake, avoid, 100, 100, 1)
		for _, p := range terrain.Walls() {
			if occupies(snake, p) || occupies(avoid, p) {
				t.Errorf("wall placed on protected cell %v", p)
			}
			if p.X < 1 || p.Y < 1 || p.X > 8 || p.Y > 8 {
				t.Errorf("wall placed inside border clearance at %v", p)
			}
		}
	})

	t.Run("already at target", func(t *testing.T) {
		start := ParseTerrain("#.", "..")
		if got := AddWalls(start, rng.NewMulberry32(1), nil, nil, 1, 5, 0); !got.Equal(start) {
			t.Error("terrain at target should be unchanged")
		}
	})
}

func TestRemoveWalls(t *testing.T) {
	full := InitWalls(8, rng.NewMulberry32(5), nil, 1.0, 0)

	removed := RemoveWalls(full, rng.NewMulberry32(5), 4)
	if n := CountWalls(removed); n != 60 {
		t.Errorf("CountWalls = %d, expected 60", n)
	}
	if CountWalls(full) != 64 {
		t.Error("RemoveWalls must not modify its input")
	}

	empty := RemoveWalls(NewTerrain(8), rng.NewMulberry32(5), 4)
	if n := CountWalls(empty); n != 0 {
		t.Errorf("removing from an empty grid left %d walls", n)
	}
}

func TestClearRadius(t *testing.T) {
	full := InitWalls(9, rng.NewMulberry32(1), nil, 1.0, 0)
	center := core.Pt(1, 1)

	cleared := ClearRadius(full, center, 2)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			p := core.Pt(x, y)
			inside := p.Chebyshev(center) <= 2
			if cleared.Wall(p) == inside {
				t.Errorf("Wall(%v) = %v with Chebyshev distance %d", p, cleared.Wall(p), p.Chebyshev(center))
			}
		}
	}
}

func TestClearCell(t *testing.T) {
	terrain := ParseTerrain("#.", "..")
	cleared := ClearCell(terrain, core.Pt(0, 0))
	if cleared.Wall(core.Pt(0, 0)) {
		t.Error("ClearCell should remove the wall")
	}
	if !terrain.Wall(core.Pt(0, 0)) {
		t.Error("ClearCell must not modify its input")
	}
}
