// Package rng provides random sources for dice evaluation.
//
// It uses crypto/rand to generate high-entropy seeds for the default source,
// and exposes explicitly seeded sources for reproducible rolls and tests.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Rand is a pseudo-random dice source backed by math/rand.
//
// A Rand is not safe for concurrent use; give each goroutine its own,
// independently seeded source.
type Rand struct {
	r *rand.Rand
}

// New returns a source seeded from crypto/rand.
func New() (*Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed), nil
}

// NewSeeded returns a deterministic source. Given the same seed, the source
// yields the same sequence of draws.
func NewSeeded(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Next returns a uniformly distributed value in [1, sides]. Sides must be
// positive.
func (r *Rand) Next(sides int) int {
	return r.r.Intn(sides) + 1
}
