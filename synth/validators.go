// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// validators.go — precondition checks shared by all generators.
//
// Every check runs before the first write to a caller buffer, so a failed
// call leaves dst and the outlier buffer untouched.

package synth

import "gonum.org/v1/gonum/mat"

// validateCommon checks model, arity, point count and θ length.
func validateCommon(method string, model Model, n, np int, cfg config) error {
	if model == nil {
		return synthErrorf(method, ErrInvalidArgument, "nil model")
	}
	if n < 1 {
		return synthErrorf(method, ErrInvalidArgument, "arity n=%d < 1", n)
	}
	if np < 1 {
		return synthErrorf(method, ErrInvalidArgument, "point count np=%d < 1", np)
	}
	if cfg.theta != nil && len(cfg.theta) != n {
		return synthErrorf(method, ErrDimensionMismatch, "len(theta)=%d, n=%d", len(cfg.theta), n)
	}

	return nil
}

// validateDomain checks xMin ≤ xMax with finite bounds.
func validateDomain(method string, domain Interval) error {
	if !domain.finite() || domain.Lo > domain.Hi {
		return synthErrorf(method, ErrInvalidArgument, "bad interval [%g, %g]", domain.Lo, domain.Hi)
	}

	return nil
}

// validateNesting checks domain.Lo ≤ cluster.Lo < cluster.Hi ≤ domain.Hi.
func validateNesting(method string, domain, cluster Interval) error {
	if !domain.finite() || !cluster.finite() || !domain.Contains(cluster) {
		return synthErrorf(method, ErrInvalidInterval, "cluster [%g, %g] not nested in domain [%g, %g]",
			cluster.Lo, cluster.Hi, domain.Lo, domain.Hi)
	}

	return nil
}

// validateBuffers checks the destination shape and the outlier capacity k.
func validateBuffers(method string, dst mat.Mutable, outliers []int, np, k int) error {
	if dst == nil {
		return synthErrorf(method, ErrInvalidArgument, "nil destination")
	}
	if r, c := dst.Dims(); r != np || c != BlockCols {
		return synthErrorf(method, ErrDimensionMismatch, "destination is %d×%d, want %d×%d", r, c, np, BlockCols)
	}
	if len(outliers) < k {
		return synthErrorf(method, ErrDimensionMismatch, "outlier buffer has %d slots, need %d", len(outliers), k)
	}

	return nil
}

// outlierCount returns K = np − p clamped to [0, np].
func outlierCount(np, p int) int {
	return min(max(np-p, 0), np)
}
