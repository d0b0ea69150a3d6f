// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil RNG, σ ≤ 0,
//     empty θ). Generators themselves never panic.
//   • The x-interval is NOT checked here: a reversed interval is a runtime
//     ErrInvalidArgument so that values read from files/flags surface as errors.
//   • Later options override earlier ones.

package synth

import (
	"math"
	"math/rand/v2"
)

// Option customizes a generation call by mutating a config before use.
type Option func(*config)

// WithInterval sets the x-domain [xMin, xMax] (default [-10, 10]).
// For the clustered generators this is the full domain.
func WithInterval(xMin, xMax float64) Option {
	return func(c *config) {
		c.domain = Interval{Lo: xMin, Hi: xMax}
	}
}

// WithTheta fixes the ground-truth parameter vector. The slice is copied.
// Its length must equal the model arity n (checked at generation time).
// Panics on an empty vector.
func WithTheta(theta []float64) Option {
	if len(theta) == 0 {
		panic("synth: WithTheta(empty)")
	}
	cp := append([]float64(nil), theta...)
	return func(c *config) {
		c.theta = cp
	}
}

// WithStd sets the standard deviation of the measurement noise (default 200).
// It also scales the outlier perturbation. Panics unless std > 0 and finite.
func WithStd(std float64) Option {
	if !(std > 0) || math.IsInf(std, 0) {
		panic("synth: WithStd: std must be finite and > 0")
	}
	return func(c *config) {
		c.std = std
	}
}

// WithOutTimes sets the outlier magnitude multiplier t (default 7): outlier
// perturbations have magnitude in [t·std, 3t·std). Panics unless t > 0 and finite.
func WithOutTimes(t float64) Option {
	if !(t > 0) || math.IsInf(t, 0) {
		panic("synth: WithOutTimes: t must be finite and > 0")
	}
	return func(c *config) {
		c.outTimes = t
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic PCG stream from seed.
// Use this in tests and fixtures to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = newSeededRand(seed)
	}
}
