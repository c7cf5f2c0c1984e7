package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/mazeshift/internal/games/mazeshift"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueBird
	CueSlow
	CuePhase
	CuePhaseUsed
	CueWarning
	CueShift
	CueBonus
	CueBurst
	CueGameOver
)

var cueNames = [...]string{
	CueNone:      "none",
	CueEat:       "eat",
	CueBird:      "bird",
	CueSlow:      "slow",
	CuePhase:     "phase",
	CuePhaseUsed: "phase_used",
	CueWarning:   "warning",
	CueShift:     "shift",
	CueBonus:     "bonus",
	CueBurst:     "burst",
	CueGameOver:  "gameover",
}

func (c Cue) String() string {
	if int(c) < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// CuesFor lists the cues for one frame of signals, most important first.
// A game over silences everything else.
func CuesFor(sig mazeshift.Signals) []Cue {
	if sig.GameOver {
		return []Cue{CueGameOver}
	}

	var cues []Cue
	add := func(c Cue) {
		for _, got := range cues {
			if got == c {
				return
			}
		}
		cues = append(cues, c)
	}

	switch sig.Ate {
	case mazeshift.KindNone:
	case mazeshift.KindBird:
		add(CueBird)
	case mazeshift.KindBanana:
		add(CueSlow)
	case mazeshift.KindClover:
		add(CuePhase)
	default:
		add(CueEat)
	}
	if sig.Bonus {
		add(CueBonus)
	}
	if sig.PhaseGained {
		add(CuePhase)
	}
	if sig.PhaseUsed {
		add(CuePhaseUsed)
	}
	if sig.BurstUsed {
		add(CueBurst)
	}
	if sig.Shifted {
		add(CueShift)
	}
	if sig.ShiftWarning {
		add(CueWarning)
	}
	return cues
}

// Sound builds the streamer for a cue at the given volume.
func Sound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueEat:
		s = tone(660, 70*time.Millisecond, WaveSquare, rate)
	case CueBird:
		s = beep.Seq(
			tone(1046.5, 50*time.Millisecond, WaveSine, rate),
			tone(1568, 80*time.Millisecond, WaveSine, rate),
		)
	case CueSlow:
		s = beep.Seq(
			tone(440, 90*time.Millisecond, WaveSine, rate),
			tone(330, 90*time.Millisecond, WaveSine, rate),
			tone(220, 140*time.Millisecond, WaveSine, rate),
		)
	case CuePhase:
		s = beep.Mix(
			withVolume(tone(880, 200*time.Millisecond, WaveSine, rate), 0.7),
			withVolume(tone(1760, 200*time.Millisecond, WaveSine, rate), 0.3),
		)
	case CuePhaseUsed:
		s = withVolume(tone(1320, 120*time.Millisecond, WaveSaw, rate), 0.5)
	case CueWarning:
		s = beep.Seq(
			tone(300, 60*time.Millisecond, WaveSquare, rate),
			beep.Silence(rate.N(40*time.Millisecond)),
			tone(300, 60*time.Millisecond, WaveSquare, rate),
		)
	case CueShift:
		s = NewEnvelope(NewOscillator(0, 250*time.Millisecond, WaveNoise, rate), 250*time.Millisecond, 10*time.Millisecond, 200*time.Millisecond, rate)
	case CueBonus:
		s = beep.Seq(
			tone(987.77, 80*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 220*time.Millisecond, WaveSquare, rate),
		)
	case CueBurst:
		s = beep.Mix(
			withVolume(NewEnvelope(NewOscillator(0, 180*time.Millisecond, WaveNoise, rate), 180*time.Millisecond, 0, 150*time.Millisecond, rate), 0.6),
			withVolume(tone(110, 180*time.Millisecond, WaveSaw, rate), 0.4),
		)
	case CueGameOver:
		s = beep.Seq(
			tone(392, 150*time.Millisecond, WaveSaw, rate),
			tone(311.13, 150*time.Millisecond, WaveSaw, rate),
			tone(196, 400*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}
