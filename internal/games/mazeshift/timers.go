package mazeshift

import (
	"math"

	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/rng"
)

// decay lowers a countdown by dt, stopping at zero.
func decay(ms, dt int) int {
	return max(ms-dt, 0)
}

// tickDuration returns the tick length for s: the difficulty ramp between the
// base and minimum durations, stretched while the slow effect runs.
func (e *Engine) tickDuration(s *State) int {
	tick := e.difficulty.TickMs(e.cfg.Speed.BaseTickMs, e.cfg.Speed.MinTickMs, s.Score, s.ElapsedMs)
	if s.SlowTimerMs > 0 {
		tick = int(math.Round(float64(tick) * e.cfg.Slow.Multiplier))
	}
	return max(tick, 1)
}

// decayFlow counts the streak window down and drops the multiplier to the
// base entry once it lapses.
func (e *Engine) decayFlow(s *State, dt int) {
	s.FlowTimerMs = decay(s.FlowTimerMs, dt)
	if s.FlowTimerMs == 0 {
		s.FlowMultiplier = e.baseMultiplier()
	}
}

func (e *Engine) baseMultiplier() float64 {
	if len(e.cfg.Flow.Multipliers) == 0 {
		return 1
	}
	return e.cfg.Flow.Multipliers[0]
}

// nextMultiplier returns the table entry after current, capped at the top.
func (e *Engine) nextMultiplier(current float64) float64 {
	table := e.cfg.Flow.Multipliers
	if len(table) == 0 {
		return 1
	}
	idx := 0
	for i, m := range table {
		if m <= current {
			idx = i
		}
	}
	return table[min(idx+1, len(table)-1)]
}

// runShift advances the shift state machine by dt.
//
// IDLE counts ShiftTimerMs down; when it expires or enough items were eaten a
// shift is planned and WARNING starts. When the warning expires the shift is
// applied if safe, otherwise discarded with a short retry countdown.
func (e *Engine) runShift(s *State, dt int, src rng.Source) {
	if s.ShiftWarningMs > 0 {
		s.ShiftWarningMs = decay(s.ShiftWarningMs, dt)
		if s.ShiftWarningMs == 0 {
			e.executeShift(s, src)
		}
		return
	}

	s.ShiftTimerMs = decay(s.ShiftTimerMs, dt)
	if s.ShiftTimerMs > 0 && s.ItemsSinceShift < e.cfg.Shift.ItemsPerShift {
		return
	}
	s.PendingShift = PlanShift(src)
	s.ShiftWarningMs = e.cfg.Shift.WarningMs
	s.ShiftTimerMs = e.cfg.Shift.IntervalMs
	s.ItemsSinceShift = 0
}

func (e *Engine) executeShift(s *State, src rng.Source) {
	dir := s.PendingShift
	s.PendingShift = ShiftNone
	if dir == ShiftNone {
		return
	}
	if !IsSafeShift(s.Terrain, s.Snake, dir) {
		s.ShiftTimerMs = e.cfg.Shift.RetryMs
		s.ShiftDiscarded = true
		return
	}

	size := e.cfg.Grid.Size
	s.Terrain = ApplyShift(s.Terrain, dir)
	target := TargetWallCount(size, len(s.Snake), e.cfg.Walls)
	s.Terrain = AddWalls(s.Terrain, src, s.Snake, e.anchors(s), target, e.cfg.Walls.SpawnPerShift, e.cfg.Walls.BorderClearance)
	s.LastShift = dir
}

// anchors are cells new walls must avoid: every item and the cell ahead of
// the head.
func (e *Engine) anchors(s *State) []core.Point {
	out := make([]core.Point, 0, len(s.Items)+1)
	for _, it := range s.Items {
		out = append(out, it.Pos)
	}
	if len(s.Snake) > 0 {
		dir, _ := popTurn(s.Direction, s.PendingTurns)
		out = append(out, NextHead(s.Snake[0], dir))
	}
	return out
}
