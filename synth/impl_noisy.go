// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// impl_noisy.go — the Noisy Point Generator.
//
// Contract:
//   • One core (fillSegment) writes rows through mat.Mutable; Generate and
//     GenerateInto are thin wrappers, and the clustered generator reuses the
//     same core on row slices of its block.
//   • Validation precedes every write (no partial writes on error).
//   • RNG consumption order: θ draw (if not supplied) → outlier selection →
//     rows 1..np. Trusted rows draw one normal; outlier rows draw one
//     uniform then one normal (sign).
//
// Complexity: O(np) model evaluations, O(np) time and scratch.

package synth

import (
	"math/rand/v2"

	"github.com/katalvlaran/lovogen/sampler"
	"gonum.org/v1/gonum/mat"
)

const (
	methodGenerate     = "Generate"
	methodGenerateInto = "GenerateInto"
)

// segment describes one contiguous run of rows over an x-range.
type segment struct {
	lo, hi float64 // x-range
	np     int     // rows in this segment
	k      int     // outliers in this segment
	closed bool    // true: grid includes hi; false: grid stops one step short
}

// Generate allocates an np×3 block and fills it with np points of model over
// the configured interval, np−p of them outliers (clamped to [0, np]).
//
// Errors: ErrInvalidArgument (nil model, n<1, np<1, bad interval),
// ErrDimensionMismatch (len(θ) ≠ n).
func Generate(model Model, n, np, p int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if err := validateCommon(methodGenerate, model, n, np, cfg); err != nil {
		return nil, err
	}
	if err := validateDomain(methodGenerate, cfg.domain); err != nil {
		return nil, err
	}

	block := mat.NewDense(np, BlockCols, nil)
	outliers := make([]int, outlierCount(np, p))
	theta, m, err := generate(methodGenerate, block, outliers, model, n, np, p, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{Block: block, Theta: theta, Outliers: outliers[:m]}, nil
}

// GenerateInto is the in-place form of Generate. dst must be np×3 and
// outliers must have at least clamp(np−p, 0, np) slots; the 1-based outlier
// rows are written to outliers[:count]. It returns the θ used.
//
// Calling GenerateInto concurrently on the same dst is undefined.
func GenerateInto(dst mat.Mutable, outliers []int, model Model, n, np, p int, opts ...Option) (theta []float64, count int, err error) {
	cfg := newConfig(opts...)
	if err = validateCommon(methodGenerateInto, model, n, np, cfg); err != nil {
		return nil, 0, err
	}
	if err = validateDomain(methodGenerateInto, cfg.domain); err != nil {
		return nil, 0, err
	}

	return generate(methodGenerateInto, dst, outliers, model, n, np, p, cfg)
}

// generate validates the buffers and runs the core over the whole domain.
func generate(method string, dst mat.Mutable, outliers []int, model Model, n, np, p int, cfg config) ([]float64, int, error) {
	k := outlierCount(np, p)
	if err := validateBuffers(method, dst, outliers, np, k); err != nil {
		return nil, 0, err
	}

	rng := rngFrom(cfg)
	theta := resolveTheta(cfg, n, rng)
	nm := newNoiseModel(cfg.std, cfg.outTimes, rng)
	seg := segment{lo: cfg.domain.Lo, hi: cfg.domain.Hi, np: np, k: k, closed: true}

	return theta, fillSegment(dst, outliers, model, theta, seg, nm, rng), nil
}

// resolveTheta returns a private copy of the supplied θ, or draws one.
func resolveTheta(cfg config, n int, rng *rand.Rand) []float64 {
	if cfg.theta != nil {
		return append([]float64(nil), cfg.theta...)
	}

	return drawTheta(n, rng)
}

// fillSegment writes seg.np rows into dst (seg.np×3, pre-validated), selects
// seg.k outlier rows, stores their 1-based local numbers in outliers and
// returns how many were stored.
func fillSegment(dst mat.Mutable, outliers []int, model Model, theta []float64, seg segment, nm noiseModel, rng *rand.Rand) int {
	// Outlier membership is fixed before any noise is drawn.
	m, _ := sampler.SampleUniqueInto(outliers, rng, seg.np, seg.k)
	isOutlier := make([]bool, seg.np)
	for _, row := range outliers[:m] {
		isOutlier[row-1] = true
	}

	xv := make([]float64, 1) // the model sees x as a 1-element vector
	var x, y, noise float64
	for i := 0; i < seg.np; i++ {
		x = gridPoint(seg.lo, seg.hi, seg.np, i, seg.closed)
		xv[0] = x
		y = model(xv, theta)
		if isOutlier[i] {
			noise = nm.perturbation()
			y += noise
		} else {
			noise = 0
			y += nm.measure.Rand()
		}
		dst.Set(i, ColX, x)
		dst.Set(i, ColY, y)
		dst.Set(i, ColNoise, noise)
	}

	return m
}

// gridPoint returns the i-th of np evenly spaced points starting at lo.
// closed grids end exactly at hi; open grids stop one step short of hi.
// A single point sits at lo.
func gridPoint(lo, hi float64, np, i int, closed bool) float64 {
	if np == 1 {
		return lo
	}
	if !closed {
		return lo + float64(i)*(hi-lo)/float64(np)
	}
	if i == np-1 {
		return hi
	}

	return lo + float64(i)*(hi-lo)/float64(np-1)
}
