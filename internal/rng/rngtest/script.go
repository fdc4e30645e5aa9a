// Package rngtest provides a scripted rng.Rand for tests.
package rngtest

import "github.com/vovakirdan/tui-pipes/internal/rng"

// Script replays queued draws in order. When a queue runs dry it falls back
// to a seeded source, so tests only script the draws they care about.
type Script struct {
	Ints   []int
	Floats []float64
	Bools  []bool

	fallback *rng.Source
}

// New creates a script whose unscripted draws come from a fixed seed.
func New() *Script {
	return &Script{fallback: rng.NewSeeded(1)}
}

// IntRange returns the next scripted int, clamped into [lo, hi).
func (s *Script) IntRange(lo, hi int) int {
	if len(s.Ints) == 0 {
		return s.source().IntRange(lo, hi)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < lo {
		return lo
	}
	if v >= hi {
		return hi - 1
	}
	return v
}

// FloatRange returns the next scripted float, clamped into [lo, hi].
func (s *Script) FloatRange(lo, hi float64) float64 {
	if len(s.Floats) == 0 {
		return s.source().FloatRange(lo, hi)
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bool returns the next scripted bool. Probabilities 0 and 1 are certain
// and do not consume the queue.
func (s *Script) Bool(p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}
	if len(s.Bools) == 0 {
		return s.source().Bool(p)
	}
	v := s.Bools[0]
	s.Bools = s.Bools[1:]
	return v
}

func (s *Script) source() *rng.Source {
	if s.fallback == nil {
		s.fallback = rng.NewSeeded(1)
	}
	return s.fallback
}

var _ rng.Rand = (*Script)(nil)
