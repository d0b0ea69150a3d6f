// SPDX-License-Identifier: MIT
// Package: lovogen/sampler
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w.
//   • Degenerate inputs (total ≤ 0, count ≤ 0) are NOT errors.

package sampler

import "errors"

// ErrInvalidArgument indicates that a caller-provided destination buffer is
// too small to hold min(count, total) row numbers.
var ErrInvalidArgument = errors.New("sampler: invalid argument")
