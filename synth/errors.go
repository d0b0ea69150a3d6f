// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Sentinels are never formatted at definition site; context is attached
//     with `%w` by synthErrorf.
//   • Generators never panic; option constructors (WithX) panic on
//     meaningless values.

package synth

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a bad scalar argument: nil model, n < 1,
// np < 1, a reversed or non-finite x-interval, or a nil destination.
var ErrInvalidArgument = errors.New("synth: invalid argument")

// ErrInvalidInterval indicates that the cluster interval is malformed or not
// nested in the domain: domain.Lo ≤ cluster.Lo < cluster.Hi ≤ domain.Hi fails.
var ErrInvalidInterval = errors.New("synth: invalid interval")

// ErrDimensionMismatch indicates a shape disagreement: destination block not
// np×3, outlier buffer shorter than the outlier count, or len(θ) ≠ n.
var ErrDimensionMismatch = errors.New("synth: dimension mismatch")

// synthErrorf prefixes a formatted message with the method name and wraps
// the sentinel: "<method>: <message>: <sentinel>".
func synthErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
