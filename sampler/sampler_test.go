package sampler_test

import (
	"errors"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/katalvlaran/lovogen/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeded returns a deterministic PCG-backed RNG for tests.
func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// requireDistinctInRange asserts that got holds distinct values in [1, total].
func requireDistinctInRange(t *testing.T, got []int, total int) {
	t.Helper()
	seen := make(map[int]struct{}, len(got))
	for _, v := range got {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, total)
		_, dup := seen[v]
		require.Falsef(t, dup, "duplicate row %d in %v", v, got)
		seen[v] = struct{}{}
	}
}

func TestSampleUnique_Cardinality(t *testing.T) {
	t.Parallel()
	rng := seeded(7)
	cases := []struct{ total, count int }{
		{1, 1}, {2, 1}, {10, 3}, {10, 9}, {100, 10}, {100, 99}, {1000, 500},
	}
	for _, tc := range cases {
		got := sampler.SampleUnique(rng, tc.total, tc.count)
		assert.Lenf(t, got, tc.count, "total=%d count=%d", tc.total, tc.count)
		requireDistinctInRange(t, got, tc.total)
	}
}

func TestSampleUnique_FullSelection(t *testing.T) {
	t.Parallel()
	for _, count := range []int{5, 6, 50} {
		got := sampler.SampleUnique(seeded(1), 5, count)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	}
}

func TestSampleUnique_Degenerate(t *testing.T) {
	t.Parallel()
	cases := []struct{ total, count int }{
		{0, 3}, {-1, 3}, {5, 0}, {5, -2}, {0, 0},
	}
	for _, tc := range cases {
		assert.Emptyf(t, sampler.SampleUnique(seeded(1), tc.total, tc.count), "total=%d count=%d", tc.total, tc.count)
	}
}

func TestSampleUniqueInto_SmallBuffer(t *testing.T) {
	t.Parallel()
	dst := []int{-1, -1}
	n, err := sampler.SampleUniqueInto(dst, seeded(3), 10, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sampler.ErrInvalidArgument))
	assert.Zero(t, n)
	assert.Equal(t, []int{-1, -1}, dst, "dst must be untouched on error")

	// The required size is min(count,total), not count.
	dst = make([]int, 4)
	n, err = sampler.SampleUniqueInto(dst, seeded(3), 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{1, 2, 3, 4}, dst)
}

func TestSampleUniqueInto_DegenerateLeavesBuffer(t *testing.T) {
	t.Parallel()
	dst := []int{42}
	n, err := sampler.SampleUniqueInto(dst, seeded(3), 0, 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []int{42}, dst)
}

func TestSampleUnique_Determinism(t *testing.T) {
	t.Parallel()
	a := sampler.SampleUnique(seeded(99), 50, 20)
	b := sampler.SampleUnique(seeded(99), 50, 20)
	assert.Equal(t, a, b)

	// nil RNG falls back to a fixed stream.
	assert.Equal(t, sampler.SampleUnique(nil, 50, 20), sampler.SampleUnique(nil, 50, 20))
}

// TestSampleUnique_Uniformity draws 2-subsets of [1,5] (10 possible subsets)
// many times and checks that every subset shows up with roughly equal
// frequency. Chi-square with 9 degrees of freedom; 30 is far beyond the
// 0.999 quantile (27.88), so a correct sampler fails with negligible odds.
func TestSampleUnique_Uniformity(t *testing.T) {
	t.Parallel()
	const (
		total  = 5
		count  = 2
		trials = 50000
		bins   = 10
	)
	rng := seeded(2024)
	freq := make(map[[2]int]int, bins)
	for i := 0; i < trials; i++ {
		got := sampler.SampleUnique(rng, total, count)
		sort.Ints(got)
		freq[[2]int{got[0], got[1]}]++
	}
	require.Len(t, freq, bins)

	expected := float64(trials) / bins
	var chi2 float64
	for _, observed := range freq {
		d := float64(observed) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 30.0)
}

// A nil RNG is the seed-1 stream: the sample is fixed, not random per call.
func TestSampleUnique_NilRNGIsFixedStream(t *testing.T) {
	t.Parallel()
	want := sampler.SampleUnique(rand.New(rand.NewPCG(1, 1)), 200, 7)
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, sampler.SampleUnique(nil, 200, 7))
	}
}

// TestSampleUnique_MarginalFrequency checks a sparse draw (count ≪ total):
// every row must be picked with probability count/total. Each row count is
// Binomial(trials, 0.05) with sd ≈ 97; ±6 sd keeps false failures negligible.
func TestSampleUnique_MarginalFrequency(t *testing.T) {
	t.Parallel()
	const (
		total  = 40
		count  = 2
		trials = 200000
	)
	rng := seeded(77)
	hits := make([]int, total+1)
	for i := 0; i < trials; i++ {
		got := sampler.SampleUnique(rng, total, count)
		requireDistinctInRange(t, got, total)
		for _, v := range got {
			hits[v]++
		}
	}

	expected := float64(trials) * count / total
	for row := 1; row <= total; row++ {
		assert.InDeltaf(t, expected, float64(hits[row]), 6*97.5, "row %d", row)
	}
}
