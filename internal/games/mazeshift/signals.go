package mazeshift

// Signals are the edges a host reacts to (sounds, flashes, persistence)
// between two consecutive states.
type Signals struct {
	GameOver       bool
	ShiftWarning   bool // A shift was planned and the warning started
	Shifted        bool
	ShiftDiscarded bool
	Ate            ItemKind
	PhaseGained    bool
	PhaseUsed      bool
	Bonus          bool // The every-Nth-item bonus fired
	BurstUsed      bool
}

// DetectSignals compares two consecutive states.
func DetectSignals(prev, next State) Signals {
	spent := next.PhaseSpent && next.Ticks != prev.Ticks
	gainedFrom := prev.PhaseCharges
	if spent {
		gainedFrom--
	}
	return Signals{
		GameOver:       !prev.GameOver && next.GameOver,
		ShiftWarning:   prev.ShiftWarningMs == 0 && next.ShiftWarningMs > 0,
		Shifted:        next.LastShift != ShiftNone && next.Ticks != prev.Ticks,
		ShiftDiscarded: next.ShiftDiscarded && next.Ticks != prev.Ticks,
		Ate:            eatenEdge(prev, next),
		PhaseGained:    next.PhaseCharges > gainedFrom,
		PhaseUsed:      spent,
		Bonus:          eatenEdge(prev, next) != KindNone && next.ItemsSincePhase == 0,
		BurstUsed:      next.BurstUsed && next.BurstCharges < prev.BurstCharges,
	}
}

func eatenEdge(prev, next State) ItemKind {
	if next.Ticks == prev.Ticks {
		return KindNone
	}
	return next.LastEaten
}

// Merge combines signals from several transitions within one frame.
func (s Signals) Merge(o Signals) Signals {
	s.GameOver = s.GameOver || o.GameOver
	s.ShiftWarning = s.ShiftWarning || o.ShiftWarning
	s.Shifted = s.Shifted || o.Shifted
	s.ShiftDiscarded = s.ShiftDiscarded || o.ShiftDiscarded
	if o.Ate != KindNone {
		s.Ate = o.Ate
	}
	s.PhaseGained = s.PhaseGained || o.PhaseGained
	s.PhaseUsed = s.PhaseUsed || o.PhaseUsed
	s.Bonus = s.Bonus || o.Bonus
	s.BurstUsed = s.BurstUsed || o.BurstUsed
	return s
}

// Any reports whether any edge fired.
func (s Signals) Any() bool {
	return s != Signals{}
}
