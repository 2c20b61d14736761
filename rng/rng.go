// Package rng defines the random-number surface the phrase builder depends
// on, so that callers can inject a fixed seed for deterministic tests
// without the builder ever touching global random state.
//
// No library in the reference stack offers this exact trait shape, so the
// default implementation is built directly on math/rand/v2.
package rng

import "math/rand/v2"

// Source is the random-number interface the phrase builder consumes. It
// mirrors the small set of operations the generator actually needs rather
// than exposing a general-purpose RNG.
type Source interface {
	// Bool returns true or false with equal probability.
	Bool() bool
	// BoolP returns true with probability p (0..=1).
	BoolP(p float64) bool
	// IntRange returns an integer in [lo, hi).
	IntRange(lo, hi int) int
	// IntRangeInclusive returns an integer in [lo, hi].
	IntRangeInclusive(lo, hi int) int
}

// Default wraps math/rand/v2's PCG generator behind Source.
type Default struct {
	r *rand.Rand
}

// NewDefault returns a Default seeded deterministically from seed.
func NewDefault(seed uint64) *Default {
	return &Default{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFromEntropy returns a Default seeded from the runtime's entropy source.
func NewFromEntropy() *Default {
	var seed [2]uint64
	seed[0] = rand.Uint64()
	seed[1] = rand.Uint64()
	return &Default{r: rand.New(rand.NewPCG(seed[0], seed[1]))}
}

func (d *Default) Bool() bool { return d.r.IntN(2) == 1 }

func (d *Default) BoolP(p float64) bool { return d.r.Float64() < p }

func (d *Default) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.r.IntN(hi-lo)
}

func (d *Default) IntRangeInclusive(lo, hi int) int {
	return d.IntRange(lo, hi+1)
}
