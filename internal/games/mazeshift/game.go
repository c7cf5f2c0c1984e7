package mazeshift

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/registry"
	"github.com/vovakirdan/mazeshift/internal/rng"
)

// Mode selects where per-tick randomness comes from.
type Mode string

const (
	// ModeClassic seeds only the initial layout; ticks draw from an ambient stream.
	ModeClassic Mode = "classic"
	// ModeSeeded draws every random value from the seeded stream, so a seed
	// and an input sequence replay exactly.
	ModeSeeded Mode = "seeded"
)

// maxCatchUpSteps bounds how many engine ticks one platform frame may run.
const maxCatchUpSteps = 4

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the YAML file loaded on Reset. Empty uses the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// LoadConfig loads the configuration the next game will use.
func LoadConfig() (config.MazeShiftConfig, error) {
	cfg, err := config.LoadMazeShift(configPath)
	if err != nil {
		return config.DefaultMazeShiftConfig(), err
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyMazeShiftPreset(&cfg, preset)
	return cfg, nil
}

// Game adapts the Engine to the platform's frame loop.
type Game struct {
	mode      Mode
	engine    *Engine
	state     State
	tickSrc   rng.Source
	seed      int64
	frameMs   float64
	accumMs   float64
	frame     uint64
	paused    bool
	tooSmall  bool
	signals   Signals
	configErr error

	screenW int
	screenH int
}

// New creates a game that reproduces only its initial layout from the seed.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSeeded creates a fully replayable game.
func NewSeeded() *Game {
	return &Game{mode: ModeSeeded}
}

func init() {
	registry.Register("mazeshift", func() registry.Game {
		return New()
	})
	registry.Register("mazeshift_seeded", func() registry.Game {
		return NewSeeded()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSeeded {
		return "mazeshift_seeded"
	}
	return "mazeshift"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSeeded {
		return "Maze Shift (Seeded)"
	}
	return "Maze Shift"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeSeeded {
		return "Shifting-maze snake; every tick replays from the seed"
	}
	return "Shifting-maze snake; the seed fixes the opening layout"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mcfg, err := LoadConfig()
	g.configErr = err

	g.engine = NewEngine(mcfg)
	g.seed = cfg.Seed
	g.frameMs = cfg.FrameMs()
	g.accumMs = 0
	g.frame = 0
	g.paused = false
	g.signals = Signals{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	seeded := rng.NewMulberry32(uint32(cfg.Seed))
	g.state = g.engine.InitGame(seeded)
	if g.mode == ModeSeeded {
		g.tickSrc = seeded
	} else {
		g.tickSrc = rng.NewAmbient()
	}

	g.checkFit()
}

// checkFit decides whether the board fits the screen.
func (g *Game) checkFit() {
	w, h := g.requiredSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Resize records a new screen size without restarting the run. A board that
// no longer fits holds the simulation until the window grows again.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.engine != nil {
		g.checkFit()
	}
}

// requiredSize returns the screen size needed for HUD, board and status line.
func (g *Game) requiredSize() (int, int) {
	grid := g.engine.cfg.Grid
	return grid.Size*grid.CellSize + 2, grid.Size + 4
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++
	g.signals = Signals{}

	// Handle restart
	if input.Has(core.ActionRestart) && g.state.GameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     int64(rng.NewMulberry32(uint32(g.seed)).Next()),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate(),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.state.GameOver {
		g.paused = !g.paused
	}

	if g.state.GameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Actions {
		act, ok := ActionFromInput(a)
		if !ok {
			continue
		}
		prev := g.state
		g.state = g.engine.ApplyAction(g.state, act)
		g.signals = g.signals.Merge(DetectSignals(prev, g.state))
	}

	g.accumMs += g.frameMs
	advanced := false
	for range maxCatchUpSteps {
		if g.state.GameOver || g.accumMs < float64(g.state.TickMs) {
			break
		}
		g.accumMs -= float64(g.state.TickMs)
		prev := g.state
		g.state = g.engine.Step(g.state, g.tickSrc)
		g.signals = g.signals.Merge(DetectSignals(prev, g.state))
		advanced = true
	}
	if g.state.GameOver {
		g.accumMs = 0
	}

	return core.StepResult{State: g.State(), Advanced: advanced}
}

func (g *Game) tickRate() int {
	if g.frameMs <= 0 {
		return core.DefaultConfig().TickRate
	}
	return int(1000/g.frameMs + 0.5)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		ElapsedMs: g.state.ElapsedMs,
		GameOver:  g.state.GameOver,
		Paused:    g.paused,
	}
}

// EngineState returns the full simulation state.
func (g *Game) EngineState() State {
	return g.state
}

// Signals returns the edges detected during the last frame.
func (g *Game) Signals() Signals {
	return g.signals
}

// Elapsed returns simulated play time in milliseconds.
func (g *Game) Elapsed() int {
	return g.state.ElapsedMs
}

// Length returns the snake length.
func (g *Game) Length() int {
	return g.state.Length()
}

// Seed returns the seed the current run started from.
func (g *Game) Seed() int64 {
	return g.seed
}

// DeathCause returns what ended the run, or DeathNone while it is alive.
func (g *Game) DeathCause() DeathCause {
	return g.state.DeathCause
}

// ConfigError returns the error hit while loading configuration, if any.
// The game falls back to defaults in that case.
func (g *Game) ConfigError() error {
	return g.configErr
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.state
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Elapsed: %dms, Score: %.1f\n", s.Ticks, s.ElapsedMs, s.Score)
	fmt.Fprintf(&b, "Snake len: %d, Head: %v, Direction: %s, Queue: %v\n", s.Length(), s.Head(), s.Direction, s.PendingTurns)
	fmt.Fprintf(&b, "Walls: %d, Items: %d, Shift: %s in %dms\n", CountWalls(s.Terrain), len(s.Items), s.PendingShift, s.ShiftWarningMs)
	fmt.Fprintf(&b, "GameOver: %v (%s), Paused: %v\n", s.GameOver, s.DeathCause, g.paused)
	return b.String()
}
