// SPDX-License-Identifier: MIT

// Package sampler selects exact-size subsets of row numbers without
// replacement. It is the leaf dependency of the synth generators, which use
// it to decide (before any noise is drawn) which rows of a data block become
// outliers.
//
// Conventions:
//   - Row numbers are 1-based: a sample drawn from total N lies in [1, N].
//   - Order of the returned numbers is unspecified; treat the result as a set.
//   - Non-positive total or count is a defined degenerate input and yields an
//     empty result, never an error.
//   - count ≥ total returns 1..N in ascending order without touching the RNG.
//
// Algorithm:
//
//	gonum's sampleuv.WithoutReplacement draws count distinct indices from
//	[0, N) with every count-subset equally likely; the indices are shifted
//	by one into row numbers. No N-sized pool is allocated.
//
// Determinism:
//   - Randomness comes only from the caller's *rand.Rand (math/rand/v2).
//   - A nil RNG selects a fixed default stream (seed 1), so calls without an
//     explicit source are still reproducible.
//   - *rand.Rand is not goroutine-safe; use one per goroutine.
package sampler
