package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/games/mazeshift"
	"github.com/vovakirdan/mazeshift/internal/platform/audio"
	"github.com/vovakirdan/mazeshift/internal/registry"
	"github.com/vovakirdan/mazeshift/internal/storage"
)

// eventSource is implemented by games that report per-frame edges.
type eventSource interface {
	Signals() mazeshift.Signals
}

// runDetails is implemented by games that expose what a finished run saves.
type runDetails interface {
	Length() int
	Seed() int64
	DeathCause() mazeshift.DeathCause
}

// resizer is implemented by games that adapt to a new window without a reset.
type resizer interface {
	Resize(width, height int)
}

// Options holds the collaborators of a play session. All are optional.
type Options struct {
	Store  *storage.Store
	Audio  *audio.Player
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the run has been saved for the current game over
	lastRunID  string
	bestScore  float64
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	m := &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sound:      opts.Audio,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.loadBest()
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)

	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "m" && m.sound != nil {
		m.sound.SetMuted(!m.sound.Muted())
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one platform frame.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.lastRunID = ""
		if d, ok := m.game.(runDetails); ok {
			m.logger.Info("run restarted", "game", m.game.ID(), "seed", d.Seed())
		}
	}

	if src, ok := m.game.(eventSource); ok {
		sig := src.Signals()
		if m.sound != nil && sig.Any() {
			m.sound.Play(sig)
		}
		if sig.Shifted {
			m.logger.Debug("maze shifted", "elapsed_ms", m.gameState.ElapsedMs)
		}
		if sig.ShiftDiscarded {
			m.logger.Debug("unsafe shift discarded", "elapsed_ms", m.gameState.ElapsedMs)
		}
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and play continues.
func (m *Model) saveRun() {
	run := storage.Run{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		ElapsedMs: m.gameState.ElapsedMs,
	}
	if d, ok := m.game.(runDetails); ok {
		run.Length = d.Length()
		run.Seed = d.Seed()
		run.DeathCause = d.DeathCause().String()
	}

	m.logger.Info("game over",
		"game", run.GameID,
		"score", run.Score,
		"length", run.Length,
		"cause", run.DeathCause,
		"elapsed_ms", run.ElapsedMs,
	)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
	if run.Score > m.bestScore {
		m.bestScore = run.Score
	}
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
		return
	}
	m.bestScore = best
}

// BestScore returns the best stored score, including the current session.
func (m *Model) BestScore() float64 {
	return m.bestScore
}

// LastRunID returns the ID of the run saved at the last game over.
func (m *Model) LastRunID() string {
	return m.lastRunID
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".mazeshift", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game and returns the
// model after the program exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return model, err
	}
	return model, nil
}
