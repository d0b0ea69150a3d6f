// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// rng.go — RNG construction and the distributions used by the generators.
//
// Goals:
//   • One explicit *rand.Rand per call; no package-level RNG state.
//   • Same seed ⇒ identical blocks, θ and outlier sets.
//   • Distribution draws go through gonum distuv over that single stream.

package synth

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// splitMixGamma is the SplitMix64 increment (golden ratio in 64 bits).
const splitMixGamma uint64 = 0x9e3779b97f4a7c15

// mixSeed applies the SplitMix64 finalizer to x + stream·γ. Used to expand a
// single int64 seed into the two words a PCG source needs.
func mixSeed(x, stream uint64) uint64 {
	z := x + (stream+1)*splitMixGamma
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// newSeededRand returns a deterministic PCG-backed RNG for seed.
func newSeededRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(mixSeed(s, 0), mixSeed(s, 1)))
}

// rngFrom returns cfg.rng when set, else a stream seeded from the
// process-wide source (non-reproducible by contract).
func rngFrom(cfg config) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// noiseModel bundles the three distributions of one generation call, all
// drawing from the same source so the consumption order is fixed.
type noiseModel struct {
	measure distuv.Normal  // trusted-row noise N(0, std²)
	sign    distuv.Normal  // unit normal; only its sign is used
	outlier distuv.Uniform // outlier magnitude U[t·std, 3t·std)
}

// newNoiseModel wires the distributions to rng.
func newNoiseModel(std, outTimes float64, rng *rand.Rand) noiseModel {
	return noiseModel{
		measure: distuv.Normal{Mu: 0, Sigma: std, Src: rng},
		sign:    distuv.Normal{Mu: 0, Sigma: 1, Src: rng},
		outlier: distuv.Uniform{Min: outTimes * std, Max: 3 * outTimes * std, Src: rng},
	}
}

// perturbation draws the signed outlier offset δ. The magnitude is drawn
// first, then the sign; a zero sign draw counts as positive so δ ≠ 0.
func (nm noiseModel) perturbation() float64 {
	mag := nm.outlier.Rand()
	if nm.sign.Rand() < 0 {
		return -mag
	}

	return mag
}

// drawTheta returns n i.i.d. samples of N(0, ThetaScale²).
func drawTheta(n int, rng *rand.Rand) []float64 {
	d := distuv.Normal{Mu: 0, Sigma: ThetaScale, Src: rng}
	theta := make([]float64, n)
	for i := range theta {
		theta[i] = d.Rand()
	}

	return theta
}
