// Package rng provides the pluggable randomness used to diversify the
// tiling search: a deterministic seeded stream for reproducible runs
// and an ambient stream for everything else. Consumers see only the
// Source interface and cannot tell the two apart.
package rng

import (
	"math/rand"
	"time"
)

// Source yields successive pseudo-random values in [0,1).
type Source interface {
	Float64() float64
}

// Linear-congruential parameters (Numerical Recipes).
const (
	lcgA uint64 = 1664525
	lcgC uint64 = 1013904223
	lcgM uint64 = 1 << 32
)

// Seeded is a deterministic linear-congruential source. The same seed
// reproduces the same entire stream for a given call sequence.
type Seeded struct {
	state uint64
}

// NewSeeded returns a source seeded once from the caller's integer.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{state: uint64(seed) % lcgM}
}

func (s *Seeded) Float64() float64 {
	s.state = (s.state*lcgA + lcgC) % lcgM
	return float64(s.state) / float64(lcgM)
}

// NewAmbient returns a time-seeded source. Each call builds an
// independent instance, so concurrent solves share no state and need no
// locking.
func NewAmbient() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle permutes xs in place with a Fisher–Yates pass driven by src.
// Given a source honoring the [0,1) contract the permutation is
// uniform.
func Shuffle[T any](src Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		xs[i], xs[j] = xs[j], xs[i]
	}
}
