// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// config.go — internal configuration and defaults.
//
// Design:
//   • config is the single source of truth for every generator knob.
//   • newConfig applies options in order (later overrides earlier).
//   • Defaults:
//       domain   = [-10, 10]
//       theta    = nil        (drawn as n × N(0, 10²))
//       std      = 200
//       outTimes = 7
//       rng      = nil        (resolved by rngFrom)

package synth

import "math/rand/v2"

// Exported defaults, mirrored by the CLI configuration.
const (
	DefaultXMin     = -10.0
	DefaultXMax     = 10.0
	DefaultStd      = 200.0
	DefaultOutTimes = 7.0
	// ThetaScale is the standard deviation of drawn θ components.
	ThetaScale = 10.0
)

// config aggregates the knobs of one generation call. Passed by value.
type config struct {
	domain   Interval
	theta    []float64
	std      float64
	outTimes float64
	rng      *rand.Rand
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		domain:   Interval{Lo: DefaultXMin, Hi: DefaultXMax},
		std:      DefaultStd,
		outTimes: DefaultOutTimes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
