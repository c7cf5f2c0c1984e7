package mazeshift

import "github.com/vovakirdan/mazeshift/internal/rng"

// SimResult summarizes a headless run.
type SimResult struct {
	Final     State
	Eaten     map[ItemKind]int
	Shifts    int
	Discarded int
	Bonuses   int
	Bursts    int
}

// Simulate plays a seeded game without a host for at most maxTicks ticks.
// With pilot set the snake steers toward items and bursts when boxed in;
// otherwise it runs straight. Init and ticks share one stream, so the result
// is a pure function of the arguments.
func (e *Engine) Simulate(seed uint32, maxTicks int, pilot bool) SimResult {
	return e.SimulateEach(seed, maxTicks, pilot, 0, nil)
}

// SimulateEach is Simulate that also hands observe the state after every
// tick that is a multiple of every, and the state that ended the run.
func (e *Engine) SimulateEach(seed uint32, maxTicks int, pilot bool, every int, observe func(State)) SimResult {
	src := rng.NewMulberry32(seed)
	s := e.InitGame(src)
	res := SimResult{Eaten: make(map[ItemKind]int)}

	for range maxTicks {
		if s.GameOver {
			break
		}
		if pilot {
			prev := s
			if a, ok := Autopilot(s); ok {
				s = e.ApplyAction(s, a)
			}
			if wouldCrash(s) {
				s = e.ApplyAction(s, Burst())
			}
			res.count(DetectSignals(prev, s))
		}

		prev := s
		s = e.Step(s, src)
		res.count(DetectSignals(prev, s))

		if observe != nil && every > 0 && (s.Ticks%every == 0 || s.GameOver) {
			observe(s)
		}
	}

	res.Final = s
	return res
}

// wouldCrash reports whether the next head cell is a wall with no phase
// protection left.
func wouldCrash(s State) bool {
	dir, _ := popTurn(s.Direction, s.PendingTurns)
	next := NextHead(s.Head(), dir)
	return next.InBounds(s.Terrain.Size()) && s.Terrain.Wall(next) &&
		s.PhaseWindowMoves == 0 && s.PhaseCharges == 0
}

func (r *SimResult) count(sig Signals) {
	if sig.Ate != KindNone {
		r.Eaten[sig.Ate]++
	}
	if sig.Shifted {
		r.Shifts++
	}
	if sig.ShiftDiscarded {
		r.Discarded++
	}
	if sig.Bonus {
		r.Bonuses++
	}
	if sig.BurstUsed {
		r.Bursts++
	}
}

// ItemsEaten returns the total number of items consumed.
func (r SimResult) ItemsEaten() int {
	n := 0
	for _, c := range r.Eaten {
		n += c
	}
	return n
}
