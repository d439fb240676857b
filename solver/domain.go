// SPDX-License-Identifier: MIT
//
// File: domain.go
// Role: value domains that feed the solver one full assignment per attempt.
// Policy:
//   - Constructors and options panic on meaningless input; RandomValues never does.
//   - Seed 0 maps to defaultSeed.

package solver

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// defaultSeed is used when no seed is given or the seed is 0.
const defaultSeed int64 = 1

// ValueDomain generates candidate values for the unknowns.
// RandomValues must return exactly count values; they are assigned to the
// unknowns in registration order.
type ValueDomain[T Number] interface {
	RandomValues(count int) []T
}

// DomainOption customizes a domain before construction completes.
type DomainOption func(*domainConfig)

type domainConfig struct {
	rng   *rand.Rand
	exact bool
}

// WithSeed gives the domain its own deterministic source.
func WithSeed(seed int64) DomainOption {
	return func(c *domainConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand attaches an explicit source. Panics on nil.
func WithRand(r *rand.Rand) DomainOption {
	if r == nil {
		panic("solver: WithRand(nil)")
	}
	return func(c *domainConfig) {
		c.rng = r
	}
}

// WithExactSum makes a RangedDomain hand the whole remaining budget to the
// last value, so every draw sums to exactly the bound. Other domains ignore it.
func WithExactSum() DomainOption {
	return func(c *domainConfig) {
		c.exact = true
	}
}

func newDomainConfig(opts []DomainOption) domainConfig {
	var c domainConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// rngFromSeed returns a deterministic source; seed 0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from [lo, hi]; lo <= hi.
func between(rng *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo)
	switch {
	case span < math.MaxInt64:
		return lo + rng.Int63n(int64(span)+1)
	case span == math.MaxUint64:
		return int64(rng.Uint64())
	default:
		return int64(uint64(lo) + rng.Uint64()%(span+1))
	}
}

// RangedDomain draws non-negative values whose sum never exceeds a bound.
//
// Values are drawn one after another against a shrinking budget:
// x_i is uniform in [0, remaining] and remaining -= x_i. The result is a
// random composition of at most the bound (exactly the bound with WithExactSum), not a
// set of independent draws: early positions tend to receive more.
type RangedDomain[T constraints.Integer] struct {
	bound T
	exact bool
	rng   *rand.Rand
}

// NewRangedDomain returns a RangedDomain whose draws sum to at most bound.
// Panics if bound < 0 or does not fit in an int64.
func NewRangedDomain[T constraints.Integer](bound T, opts ...DomainOption) *RangedDomain[T] {
	if bound < 0 {
		panic(fmt.Sprintf("solver: NewRangedDomain(%v): negative bound", bound))
	}
	if uint64(bound) > math.MaxInt64 {
		panic(fmt.Sprintf("solver: NewRangedDomain(%v): bound overflows int64", bound))
	}
	c := newDomainConfig(opts)

	return &RangedDomain[T]{bound: bound, exact: c.exact, rng: c.rng}
}

// Max returns the sum bound.
func (d *RangedDomain[T]) Max() T { return d.bound }

// Exact reports whether draws always sum to Max.
func (d *RangedDomain[T]) Exact() bool { return d.exact }

// RandomValues returns count values with sum <= Max (== Max when Exact and count > 0).
// Complexity: O(count).
func (d *RangedDomain[T]) RandomValues(count int) []T {
	if count <= 0 {
		return []T{}
	}
	out := make([]T, count)
	remaining := int64(d.bound)
	for i := range out {
		if d.exact && i == count-1 {
			out[i] = T(remaining)
			break
		}
		x := between(d.rng, 0, remaining)
		out[i] = T(x)
		remaining -= x
	}

	return out
}

// UniformDomain draws every value independently from [lo, hi].
type UniformDomain[T constraints.Integer] struct {
	lo, hi T
	rng    *rand.Rand
}

// NewUniformDomain returns a UniformDomain over [lo, hi]. Panics if lo > hi or
// a bound does not fit in an int64.
func NewUniformDomain[T constraints.Integer](lo, hi T, opts ...DomainOption) *UniformDomain[T] {
	if lo > hi {
		panic(fmt.Sprintf("solver: NewUniformDomain(%v, %v): empty range", lo, hi))
	}
	if hi > 0 && uint64(hi) > math.MaxInt64 {
		panic(fmt.Sprintf("solver: NewUniformDomain(%v, %v): bound overflows int64", lo, hi))
	}
	c := newDomainConfig(opts)

	return &UniformDomain[T]{lo: lo, hi: hi, rng: c.rng}
}

// Bounds returns the inclusive range.
func (d *UniformDomain[T]) Bounds() (lo, hi T) { return d.lo, d.hi }

// RandomValues returns count independent values in [lo, hi].
// Complexity: O(count).
func (d *UniformDomain[T]) RandomValues(count int) []T {
	if count <= 0 {
		return []T{}
	}
	out := make([]T, count)
	for i := range out {
		out[i] = T(between(d.rng, int64(d.lo), int64(d.hi)))
	}

	return out
}
