// Package rng provides the random streams used by the simulation.
// Every stream yields floats in [0, 1); the simulation never touches a global
// generator, so tests can substitute a scripted stream.
package rng

import (
	"math/rand"
	"time"
)

// Source is a stream of floats in [0, 1).
type Source interface {
	Float64() float64
}

// Mulberry32 is a deterministic multiply-xorshift generator with 32 bits of state.
// The same seed always yields the same sequence.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a generator for the given seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next generates the next random uint32.
func (m *Mulberry32) Next() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a random float64 in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Next()) / 4294967296.0
}

// Ambient is an unseeded stream for effects that need not be reproducible.
type Ambient struct {
	r *rand.Rand
}

// NewAmbient creates a time-seeded stream.
func NewAmbient() *Ambient {
	return &Ambient{r: rand.New(rand.NewSource(time.Now().UnixNano()))} //#nosec G404 -- gameplay randomness
}

// Float64 returns a random float64 in [0, 1).
func (a *Ambient) Float64() float64 {
	return a.r.Float64()
}

// Scripted replays a fixed list of values, cycling when exhausted.
// Values are clamped into [0, 1).
type Scripted struct {
	values []float64
	pos    int
}

// NewScripted creates a stream that yields values in order.
// An empty list yields zeros.
func NewScripted(values ...float64) *Scripted {
	clamped := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0:
			v = 0
		case v >= 1:
			v = 0.999999
		}
		clamped[i] = v
	}
	return &Scripted{values: clamped}
}

// Float64 returns the next scripted value.
func (s *Scripted) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Intn returns floor(src * n), an int in [0, n). Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Chance reports whether a draw falls below p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
