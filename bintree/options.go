// SPDX-License-Identifier: MIT
// Package: lvmaze/bintree
//
// options.go — functional options and the resolved generator config.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Defaults are deterministic: no RNG, fixed (non-random) exits.
//   • WithRand(nil) panics: a nil source is a programmer error.

package bintree

import "math/rand"

// Option customizes Generate by mutating the generator config.
type Option func(*config)

// config aggregates all generator knobs. Passed by value.
type config struct {
	// rng drives carving directions and random exits; nil means unset.
	rng *rand.Rand
	// randomExit selects uniformly random border openings instead of the
	// fixed corner-adjacent pair.
	randomExit bool
}

// newConfig resolves opts over the deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:        nil,
		randomExit: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand supplies the random source used for carving and exits.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bintree: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand seeded with seed. Two generations with
// the same seed and dimensions produce identical grids.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandomExit toggles random placement of the two openings.
func WithRandomExit(random bool) Option {
	return func(c *config) {
		c.randomExit = random
	}
}
