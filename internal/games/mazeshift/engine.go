// Package mazeshift implements a snake game on a shifting maze: walls slide
// across the board on a schedule, items carry effects, and a streak multiplier
// rewards eating quickly.
//
// The Engine is pure. InitGame builds a State, and Step and ApplyAction each
// return a new State without mutating their input. Randomness is drawn from
// an explicit rng.Source so tests and replays can control it.
package mazeshift

import (
	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/rng"
)

// startRunway is the number of cells ahead of the starting head kept free.
const startRunway = 3

// Engine runs the simulation rules for one configuration.
type Engine struct {
	cfg        config.MazeShiftConfig
	difficulty *config.DifficultyManager
}

// NewEngine creates an engine. The configuration is copied and never changes.
func NewEngine(cfg config.MazeShiftConfig) *Engine {
	cfg.Flow.Multipliers = append([]float64(nil), cfg.Flow.Multipliers...)
	return &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() config.MazeShiftConfig {
	return e.cfg
}

// GridSize returns the board side length.
func (e *Engine) GridSize() int {
	return e.cfg.Grid.Size
}

// InitGameSeeded builds the initial state from a seeded Mulberry32 stream.
// The same seed always yields the same snake, terrain and items.
func (e *Engine) InitGameSeeded(seed uint32) State {
	return e.InitGame(rng.NewMulberry32(seed))
}

// InitGame builds the initial state drawing layout randomness from src.
func (e *Engine) InitGame(src rng.Source) State {
	size := e.cfg.Grid.Size
	snake := StartingSnake(size)

	terrain := InitWalls(size, src, snake, e.cfg.Walls.StartDensity, e.cfg.Walls.BorderClearance)
	ahead := snake[0]
	for range startRunway {
		ahead = NextHead(ahead, core.DirRight)
		terrain = ClearCell(terrain, ahead)
	}

	s := State{
		Snake:          snake,
		Direction:      core.DirRight,
		Terrain:        terrain,
		ShiftTimerMs:   e.cfg.Shift.IntervalMs,
		FlowMultiplier: e.baseMultiplier(),
	}
	s.Items = EnsurePopulationTargets(size, src, s.Snake, s.Terrain, nil, e.cfg.Items)
	s.TickMs = e.tickDuration(&s)
	return s
}

// ApplyAction applies a player intent between ticks.
// Rejected actions return the state unchanged.
func (e *Engine) ApplyAction(s State, a Action) State {
	if s.GameOver {
		return s
	}

	switch a.Kind {
	case ActionTurn:
		if !canQueueTurn(s.Direction, s.PendingTurns, a.Dir) {
			return s
		}
		next := s.Clone()
		next.PendingTurns = append(next.PendingTurns, a.Dir)
		return next

	case ActionBurst:
		if s.BurstCharges <= 0 {
			return s
		}
		next := s.Clone()
		next.Terrain = ClearRadius(next.Terrain, next.Head(), e.cfg.Burst.Radius)
		next.BurstCharges--
		next.BurstUsed = true
		return next
	}

	return s
}

// Step advances the simulation by one tick. The tick that elapses is the
// duration stored in s.TickMs.
func (e *Engine) Step(s State, src rng.Source) State {
	if s.GameOver {
		return s
	}

	next := s.Clone()
	next.LastEaten = KindNone
	next.LastShift = ShiftNone
	next.ShiftDiscarded = false
	next.BurstUsed = false
	next.PhaseSpent = false

	dt := s.TickMs
	next.Ticks++
	next.ElapsedMs += dt
	next.TickMs = e.tickDuration(&next)

	e.decayFlow(&next, dt)
	e.runShift(&next, dt, src)
	next.SlowTimerMs = decay(next.SlowTimerMs, dt)

	size := e.cfg.Grid.Size
	next.Items = MoveMobileItems(next.Items, src, next.Snake, next.Terrain, size, e.cfg.Items.MoverChance)

	next.Direction, next.PendingTurns = popTurn(next.Direction, next.PendingTurns)
	newHead := NextHead(next.Head(), next.Direction)

	if !newHead.InBounds(size) {
		return die(next, DeathBoundary)
	}

	windowBefore := next.PhaseWindowMoves
	if next.Terrain.Wall(newHead) {
		switch {
		case windowBefore > 0:
			// bypass window still open
		case next.PhaseCharges > 0:
			next.PhaseCharges--
			next.PhaseSpent = true
			next.PhaseWindowMoves = max(e.cfg.Phase.WindowMoves-1, 0)
		default:
			return die(next, DeathWall)
		}
		next.Terrain = ClearCell(next.Terrain, newHead)
	}

	eat := next.ItemAt(newHead)
	growing := eat >= 0
	if hitsBody(next.Snake, newHead, growing) {
		return die(next, DeathSelf)
	}

	next.Snake = advance(next.Snake, newHead, growing)
	if windowBefore > 0 {
		next.PhaseWindowMoves = windowBefore - 1
	}

	if growing {
		e.consume(&next, eat, src)
	}

	next.Items = RemoveBlockedItems(next.Items, next.Terrain)
	next.Items = EnsurePopulationTargets(size, src, next.Snake, next.Terrain, next.Items, e.cfg.Items)
	return next
}

// consume resolves eating the item at index i.
func (e *Engine) consume(s *State, i int, src rng.Source) {
	item := s.Items[i]
	s.Items = removeItem(s.Items, i)

	if s.FlowTimerMs > 0 {
		s.FlowMultiplier = e.nextMultiplier(s.FlowMultiplier)
	} else {
		s.FlowMultiplier = e.baseMultiplier()
	}
	s.FlowTimerMs = e.cfg.Flow.WindowMs
	s.Score += float64(itemSettings(e.cfg.Items, item.Kind).Score) * s.FlowMultiplier

	switch item.Kind.traits().effect {
	case effectSlow:
		s.SlowTimerMs = e.cfg.Slow.DurationMs
	case effectPhase:
		s.PhaseCharges = min(s.PhaseCharges+1, e.cfg.Phase.MaxCharges)
	case effectClearWalls:
		s.Terrain = RemoveWalls(s.Terrain, src, e.cfg.Items.AcornClearWalls)
	case effectBurst:
		s.BurstCharges = min(s.BurstCharges+1, e.cfg.Burst.MaxCharges)
	}

	s.LastEaten = item.Kind
	s.ItemsSinceShift++
	s.ItemsSincePhase++

	if e.cfg.Phase.ItemsPerCharge > 0 && s.ItemsSincePhase >= e.cfg.Phase.ItemsPerCharge {
		s.ItemsSincePhase = 0
		s.PhaseCharges = min(s.PhaseCharges+1, e.cfg.Phase.MaxCharges)
		s.Score += float64(e.cfg.Phase.BonusScore)
		s.Terrain = RemoveWalls(s.Terrain, src, e.cfg.Phase.ClearWalls)
	}
}

// die marks s terminal. The snake is left where it was.
func die(s State, cause DeathCause) State {
	s.GameOver = true
	s.DeathCause = cause
	return s
}
