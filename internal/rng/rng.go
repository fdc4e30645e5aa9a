// Package rng provides the random source the simulation draws from.
// Every consumer receives a Rand explicitly; there is no process-wide generator.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Rand is the set of draws the simulation needs.
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi). Panics if hi <= lo.
	IntRange(lo, hi int) int

	// FloatRange returns a uniform float in [lo, hi].
	FloatRange(lo, hi float64) float64

	// Bool returns true with probability p. Panics if p is outside [0, 1].
	Bool(p float64) bool
}

// Source is a Rand backed by a math/rand generator it owns.
// A Source is not safe for concurrent use.
type Source struct {
	r    *rand.Rand
	seed int64
}

// New creates a Source seeded from OS entropy.
// Falls back to the wall clock when entropy is unavailable.
func New() *Source {
	return NewSeeded(entropySeed())
}

// NewSeeded creates a Source with a fixed seed, for reproducible runs.
func NewSeeded(seed int64) *Source {
	return &Source{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// IntRange returns a uniform integer in [lo, hi).
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", lo, hi))
	}
	return lo + s.r.Intn(hi-lo)
}

// FloatRange returns a uniform float in [lo, hi].
func (s *Source) FloatRange(lo, hi float64) float64 {
	if hi < lo {
		panic(fmt.Sprintf("rng: inverted range [%v, %v]", lo, hi))
	}
	return lo + s.r.Float64()*(hi-lo)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	if p < 0 || p > 1 || p != p {
		panic(fmt.Sprintf("rng: probability %v outside [0, 1]", p))
	}
	switch p {
	case 0:
		return false
	case 1:
		return true
	}
	return s.r.Float64() < p
}

// entropySeed reads a seed from crypto/rand.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
