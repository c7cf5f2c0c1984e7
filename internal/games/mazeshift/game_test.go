package mazeshift

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/registry"
)

// useDefaultConfig points the game at a file holding the embedded defaults so
// a user's own config cannot leak into tests.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, config.GetDefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	useDefaultConfig(t)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	if err := g.ConfigError(); err != nil {
		t.Fatalf("config error: %v", err)
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	var in core.InputFrame
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"mazeshift", "mazeshift_seeded"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if info, ok := registry.Info(id); !ok || info.Description == "" {
			t.Errorf("Info(%q) = %+v", id, info)
		}
	}
}

func TestGameAdvancesOnTickBoundary(t *testing.T) {
	g := newTestGame(t, NewSeeded(), 5)
	frameMs := core.DefaultConfig().FrameMs()
	frames := int(math.Ceil(float64(g.EngineState().TickMs) / frameMs))

	for i := 1; i < frames; i++ {
		if res := g.Step(core.NewInputFrame()); res.Advanced {
			t.Fatalf("advanced early at frame %d", i)
		}
	}
	res := g.Step(core.NewInputFrame())
	if !res.Advanced {
		t.Fatalf("expected an engine tick at frame %d", frames)
	}
	if g.EngineState().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", g.EngineState().Ticks)
	}
	if g.Elapsed() == 0 {
		t.Error("Elapsed should grow after a tick")
	}
}

func TestGameQueuesTurns(t *testing.T) {
	g := newTestGame(t, NewSeeded(), 5)

	g.Step(input(core.ActionUp, core.ActionLeft))

	expected := []core.Direction{core.DirUp, core.DirLeft}
	if got := g.EngineState().PendingTurns; !reflect.DeepEqual(got, expected) {
		t.Errorf("PendingTurns = %v, expected %v", got, expected)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, NewSeeded(), 5)

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.EngineState().Ticks != 0 {
		t.Errorf("paused game advanced %d ticks", g.EngineState().Ticks)
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Snapshot state = %s, expected paused", g.Snapshot().State)
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameSeededReplay(t *testing.T) {
	a := newTestGame(t, NewSeeded(), 99)
	b := newTestGame(t, NewSeeded(), 99)

	script := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionRight, core.ActionBurst}
	for frame := 0; frame < 1500; frame++ {
		in := core.NewInputFrame()
		if frame%45 == 0 {
			in.Set(script[(frame/45)%len(script)])
		}
		a.Step(in)
		b.Step(in.Clone())

		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("frame %d: snapshots diverged\n%+v\n%+v", frame, a.Snapshot(), b.Snapshot())
		}
	}
	if !reflect.DeepEqual(a.EngineState(), b.EngineState()) {
		t.Error("final states differ")
	}
}

func TestGameClassicSharesOpeningLayout(t *testing.T) {
	a := newTestGame(t, New(), 31)
	b := newTestGame(t, New(), 31)

	if !reflect.DeepEqual(a.EngineState(), b.EngineState()) {
		t.Error("classic mode should reproduce the opening layout from the seed")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, NewSeeded(), 3)

	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("a snake running straight should eventually crash")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot state = %s", g.Snapshot().State)
	}

	ticks := g.EngineState().Ticks
	g.Step(core.NewInputFrame())
	if g.EngineState().Ticks != ticks {
		t.Error("a finished game should not advance")
	}

	g.Step(input(core.ActionRestart))
	if g.State().GameOver {
		t.Fatal("restart should start a new run")
	}
	if g.Seed() == 3 {
		t.Error("restart should derive a new seed")
	}
	if g.EngineState().Ticks != 0 || g.State().Score != 0 {
		t.Errorf("restarted state not fresh: %+v", g.Snapshot())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, NewSeeded(), 8)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Maze Shift") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "Phase") {
		t.Error("status line should show phase charges")
	}
	if strings.Contains(screen.String(), "too small") {
		t.Error("default screen should fit the board")
	}

	head := g.EngineState().Head()
	board := g.boardRect(screen)
	x, y := g.cellOrigin(board, head)
	if cell := screen.GetCell(x, y); cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", cell)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	useDefaultConfig(t)
	g := NewSeeded()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 12, TickRate: 60, Seed: 1})

	screen := core.NewScreen(30, 12)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice, got\n%s", screen.String())
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot state = %s", g.Snapshot().State)
	}
	if res := g.Step(core.NewInputFrame()); res.Advanced {
		t.Error("a game that does not fit should not advance")
	}
}

func TestGameRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t, NewSeeded(), 8)
	g.Step(input(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for y := 0; y < screen.Height()-1; y++ {
		if !strings.Contains(screen.Row(y), "Paused") {
			continue
		}
		if divider := screen.Row(y + 1); !strings.Contains(divider, "─────") {
			t.Errorf("row under the overlay title = %q, expected a divider", divider)
		}
		return
	}
	t.Errorf("paused overlay missing:\n%s", screen.String())
}

func TestLoadConfigPreset(t *testing.T) {
	useDefaultConfig(t)
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shift.IntervalMs != 9000 {
		t.Errorf("hard preset interval = %d, expected 9000", cfg.Shift.IntervalMs)
	}

	SetDifficultyPreset("brutal")
	if _, err := LoadConfig(); err == nil {
		t.Error("unknown preset should fail")
	}
}
