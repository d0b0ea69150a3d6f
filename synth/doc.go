// SPDX-License-Identifier: MIT

// Package synth synthesizes one-dimensional test instances for nonlinear
// curve-fitting and LOVO (Low Order Value Optimization) solvers.
//
// Given a parametric model y = f(x, θ), the generators produce a data block of
// np rows (x, y, noise) together with the ground-truth θ and the set of rows
// that were turned into outliers:
//
//	x ─┬─ evenly spaced grid over [xMin, xMax]
//	   │
//	   ├─ trusted row: y = f(x, θ) + N(0, std)                noise = 0
//	   └─ outlier row: y = f(x, θ) + δ,  δ = ±U[t·std, 3t·std)   noise = δ
//
// Outlier membership is structural: it is decided by sampler before any noise
// is drawn, independent of the y values.
//
// Entry points:
//   - Generate / GenerateInto: outliers scattered uniformly over the domain.
//   - GenerateClustered / GenerateClusteredInto: all outliers confined to a
//     cluster sub-interval; see Partition for the point allocation rule.
//
// The *Into variants write through gonum's mat.Mutable, so the destination
// may be any mutable view, including a row slice of a larger *mat.Dense.
// The allocating variants build a fresh block and delegate.
//
// Determinism:
//
//	All draws come from one *rand.Rand (math/rand/v2) consumed in a fixed
//	order: θ (when not supplied), then outlier selection, then rows in order.
//	WithSeed or WithRand make a call reproducible. Without them a stream is
//	seeded from the process-wide source.
//
// Concurrency:
//
//	Generators keep no state between calls. Two concurrent *Into calls on the
//	same destination are undefined; keeping them apart is the caller's job.
//	A *rand.Rand passed via WithRand must not be shared across goroutines.
//
// Errors:
//
//	ErrInvalidArgument, ErrInvalidInterval and ErrDimensionMismatch, always
//	wrapped with the method name; branch with errors.Is. All validation runs
//	before the first write to a caller-supplied buffer.
package synth
