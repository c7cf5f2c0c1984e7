package mazeshift

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWarning     GameStateType = "shift_warning"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot is a compact, comparable summary of the game for determinism
// testing and headless runs.
type Snapshot struct {
	Frame        uint64
	Tick         int
	Mode         string
	Score        float64
	ElapsedMs    int
	TickMs       int
	SnakeLen     int
	HeadX        int
	HeadY        int
	Dir          string
	Walls        int
	Items        int
	PhaseCharges int
	BurstCharges int
	Multiplier   float64
	DeathCause   string
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.state.ShiftWarning():
		state = StateWarning
	}

	snap := SnapshotOf(g.state)
	snap.Frame = g.frame
	snap.Mode = string(g.mode)
	snap.State = state
	return snap
}

// SnapshotOf summarizes an engine state.
func SnapshotOf(s State) Snapshot {
	head := s.Head()
	state := StatePlaying
	switch {
	case s.GameOver:
		state = StateGameOver
	case s.ShiftWarning():
		state = StateWarning
	}
	return Snapshot{
		Tick:         s.Ticks,
		Score:        s.Score,
		ElapsedMs:    s.ElapsedMs,
		TickMs:       s.TickMs,
		SnakeLen:     s.Length(),
		HeadX:        head.X,
		HeadY:        head.Y,
		Dir:          s.Direction.String(),
		Walls:        CountWalls(s.Terrain),
		Items:        len(s.Items),
		PhaseCharges: s.PhaseCharges,
		BurstCharges: s.BurstCharges,
		Multiplier:   s.FlowMultiplier,
		DeathCause:   s.DeathCause.String(),
		State:        state,
	}
}
