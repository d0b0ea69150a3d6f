// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// types.go — public data types shared by the generators.

package synth

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Model is a pure parametric function y = f(x, θ). x is the domain point
// (a 1-element vector for the generators in this package) and θ has the
// model's arity. Implementations must not retain or mutate either slice.
type Model func(x, theta []float64) float64

// Block column layout.
const (
	ColX     = 0 // grid coordinate
	ColY     = 1 // observation
	ColNoise = 2 // outlier perturbation δ (0 for trusted rows)

	// BlockCols is the number of columns of a data block.
	BlockCols = 3
)

// Interval is a closed range [Lo, Hi] on the real line.
type Interval struct {
	Lo float64
	Hi float64
}

// Len returns Hi − Lo.
func (iv Interval) Len() float64 { return iv.Hi - iv.Lo }

// finite reports whether both bounds are finite numbers.
func (iv Interval) finite() bool {
	return !math.IsNaN(iv.Lo) && !math.IsNaN(iv.Hi) && !math.IsInf(iv.Lo, 0) && !math.IsInf(iv.Hi, 0)
}

// Contains reports whether inner is nested in iv with a non-empty inner range:
// iv.Lo ≤ inner.Lo < inner.Hi ≤ iv.Hi.
func (iv Interval) Contains(inner Interval) bool {
	return iv.Lo <= inner.Lo && inner.Lo < inner.Hi && inner.Hi <= iv.Hi
}

// Result is the product of one generation call. It is owned by the caller;
// the generator keeps no reference to it.
type Result struct {
	// Block is the np×3 data block (x, y, noise).
	Block *mat.Dense
	// Theta is the ground-truth parameter vector (supplied or drawn).
	Theta []float64
	// Outliers holds the 1-based rows that received the outlier rule.
	// Order is unspecified.
	Outliers []int
}

// OutlierMask returns a per-row flag slice (0-based) marking outlier rows.
// Complexity: O(np).
func (r *Result) OutlierMask() []bool {
	rows, _ := r.Block.Dims()
	mask := make([]bool, rows)
	for _, k := range r.Outliers {
		if k >= 1 && k <= rows {
			mask[k-1] = true
		}
	}

	return mask
}
