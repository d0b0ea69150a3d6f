// SPDX-License-Identifier: MIT

// Package problem serializes generated test problems to the two plain-text
// files consumed by curve-fitting and LOVO solvers, and reads them back.
//
// Solution file:
//
//	2                          ← n, the length of θ
//	1.5 -0.25                  ← θ, shortest round-trip decimal form
//	(x, θ) -> θ[1] * x[1] + θ[2]   ← model text, opaque
//
// Data file:
//
//	1                          ← domain dimension (always 1)
//	  -10.000000000000000   -19.873200000000001 0
//	   ...                                      ↑ 1 when the row is an outlier
//
// Each data row is formatted "%20.15f %20.15f %1d". The flag comes from the
// outlier set, not from the noise column of the block.
//
// All file access goes through an afero.Fs so callers (and tests) choose the
// backing store. I/O errors are returned wrapped with %w and keep their
// identity for errors.Is.
package problem
