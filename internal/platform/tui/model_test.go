package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/games/mazeshift"
	"github.com/vovakirdan/mazeshift/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) *Model {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, config.GetDefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	mazeshift.SetConfigPath(path)
	mazeshift.SetDifficultyPreset("")
	t.Cleanup(func() { mazeshift.SetConfigPath("") })

	cfg := core.DefaultConfig()
	cfg.Seed = 11
	return NewModel(mazeshift.NewSeeded(), cfg, Options{Store: store})
}

func tick(m *Model) {
	m.Update(TickMsg(time.Now()))
}

func TestModelSavesRunOnceAtGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	for i := 0; i < 5000 && !m.gameState.GameOver; i++ {
		tick(m)
	}
	if !m.gameState.GameOver {
		t.Fatal("a snake running straight should eventually crash")
	}
	for range 10 {
		tick(m)
	}

	runs, err := store.RecentRuns("mazeshift_seeded", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != m.LastRunID() || r.Seed != 11 || r.Length < 3 || r.DeathCause == "none" || r.ElapsedMs == 0 {
		t.Errorf("saved run = %+v", r)
	}

	// Restart and die again: a second run is stored.
	m.Update(runeKey('r'))
	tick(m)
	if m.gameState.GameOver {
		t.Fatal("restart should begin a new run")
	}
	for i := 0; i < 5000 && !m.gameState.GameOver; i++ {
		tick(m)
	}
	runs, _ = store.RecentRuns("mazeshift_seeded", 10)
	if len(runs) != 2 {
		t.Errorf("expected two runs after restart, got %d", len(runs))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 5000 && !m.gameState.GameOver; i++ {
		tick(m)
	}
	if !m.gameState.GameOver || m.LastRunID() != "" {
		t.Errorf("game over = %v, last run = %q", m.gameState.GameOver, m.LastRunID())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelPauseKey(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(runeKey('p'))
	tick(m)
	if !m.gameState.Paused {
		t.Fatal("p should pause")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	tick(m)
	if m.gameState.Paused {
		t.Error("esc should resume")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)
	for range 120 {
		tick(m)
	}
	before := m.gameState.ElapsedMs
	if before == 0 {
		t.Fatal("no ticks ran")
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.gameState.ElapsedMs != before || m.game.State().ElapsedMs != before {
		t.Error("resizing should not restart the run")
	}
	if !strings.Contains(m.View(), "Maze Shift") {
		t.Error("view should render the HUD")
	}

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "too small") {
		t.Error("a tiny window should show the too-small notice")
	}
}
