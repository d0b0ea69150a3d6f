// SPDX-License-Identifier: MIT
// Package: lovogen/sampler
//
// sampler.go — unbiased selection of distinct row numbers.
//
// Contract:
//   • SampleUniqueInto is the single implementation; SampleUnique allocates
//     a destination and delegates.
//   • Validation happens before the first write to dst.
//   • Selection is delegated to gonum's sampleuv.WithoutReplacement over
//     the caller's stream.

package sampler

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// defaultSeed is the stream used when callers pass a nil RNG.
const defaultSeed uint64 = 1

// SampleUnique returns min(count, total) pairwise-distinct row numbers drawn
// uniformly from [1, total]. It returns nil when total ≤ 0 or count ≤ 0.
// A nil rng selects a fixed default stream, so every nil-rng call with the
// same arguments returns the same sample.
//
// Complexity: O(count·log count) time, O(count) space.
func SampleUnique(rng *rand.Rand, total, count int) []int {
	if total <= 0 || count <= 0 {
		return nil
	}
	dst := make([]int, min(count, total))
	// dst is sized exactly; the only error path cannot trigger.
	_, _ = SampleUniqueInto(dst, rng, total, count)

	return dst
}

// SampleUniqueInto writes min(count, total) pairwise-distinct row numbers
// from [1, total] into dst[0:m] and returns m.
//
// Policies:
//   - total ≤ 0 or count ≤ 0 ⇒ (0, nil); dst untouched.
//   - len(dst) < min(count, total) ⇒ ErrInvalidArgument; dst untouched.
//   - count ≥ total ⇒ dst[0:total] = 1..total (no RNG draws).
//   - rng == nil ⇒ fixed default stream (seed 1); the sample is not random
//     across calls.
//
// Complexity: O(count·log count) time.
func SampleUniqueInto(dst []int, rng *rand.Rand, total, count int) (int, error) {
	if total <= 0 || count <= 0 {
		return 0, nil
	}
	m := min(count, total)
	if len(dst) < m {
		return 0, fmt.Errorf("SampleUniqueInto: dst has %d slots, need %d: %w", len(dst), m, ErrInvalidArgument)
	}

	// Full selection is a distinct path: nothing to randomize.
	if count >= total {
		for i := 0; i < total; i++ {
			dst[i] = i + 1
		}
		return total, nil
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewPCG(defaultSeed, defaultSeed))
	}

	// sampleuv writes m distinct indices from [0, total); rows are 1-based.
	sampleuv.WithoutReplacement(dst[:m], total, r)
	for i := 0; i < m; i++ {
		dst[i]++
	}

	return m, nil
}
