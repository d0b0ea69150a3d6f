package synth_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lovogen/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// linear is θ0·x + θ1.
func linear(x, theta []float64) float64 { return theta[0]*x[0] + theta[1] }

// residuals splits y − f(x, θ) by outlier membership.
func residuals(t *testing.T, res *synth.Result, model synth.Model) (trusted, outlier []float64) {
	t.Helper()
	mask := res.OutlierMask()
	rows, _ := res.Block.Dims()
	for i := 0; i < rows; i++ {
		r := res.Block.At(i, synth.ColY) - model([]float64{res.Block.At(i, synth.ColX)}, res.Theta)
		if mask[i] {
			outlier = append(outlier, r)
		} else {
			trusted = append(trusted, r)
		}
	}
	return trusted, outlier
}

func TestGenerate_GridAndShape(t *testing.T) {
	t.Parallel()
	res, err := synth.Generate(linear, 2, 11, 8, synth.WithInterval(-5, 5), synth.WithSeed(1))
	require.NoError(t, err)

	rows, cols := res.Block.Dims()
	require.Equal(t, 11, rows)
	require.Equal(t, synth.BlockCols, cols)
	for i := 0; i < rows; i++ {
		assert.InDelta(t, -5+float64(i), res.Block.At(i, synth.ColX), 1e-12)
	}
	assert.Equal(t, 5.0, res.Block.At(rows-1, synth.ColX), "last grid point is exactly xMax")
	assert.Len(t, res.Theta, 2)
	assert.Len(t, res.Outliers, 3)
}

func TestGenerate_OutlierCount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		np, p int
		want  int
	}{
		{"some", 50, 40, 10},
		{"none", 50, 50, 0},
		{"more trusted than points", 50, 80, 0},
		{"all", 50, 0, 50},
		{"negative p clamps", 50, -3, 50},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := synth.Generate(linear, 2, tc.np, tc.p, synth.WithSeed(5))
			require.NoError(t, err)
			require.Len(t, res.Outliers, tc.want)

			seen := map[int]bool{}
			for _, k := range res.Outliers {
				require.GreaterOrEqual(t, k, 1)
				require.LessOrEqual(t, k, tc.np)
				require.False(t, seen[k], "duplicate outlier row %d", k)
				seen[k] = true
			}
			if tc.want == tc.np {
				sorted := append([]int(nil), res.Outliers...)
				sort.Ints(sorted)
				for i, k := range sorted {
					assert.Equal(t, i+1, k)
				}
			}
		})
	}
}

func TestGenerate_NoiseRules(t *testing.T) {
	t.Parallel()
	const (
		std      = 200.0
		outTimes = 7.0
	)
	res, err := synth.Generate(linear, 2, 4000, 3000,
		synth.WithSeed(77), synth.WithStd(std), synth.WithOutTimes(outTimes), synth.WithTheta([]float64{2, -1}))
	require.NoError(t, err)

	mask := res.OutlierMask()
	var negatives int
	for i, isOut := range mask {
		noise := res.Block.At(i, synth.ColNoise)
		if !isOut {
			assert.Zero(t, noise, "trusted rows record zero perturbation")
			continue
		}
		f := linear([]float64{res.Block.At(i, synth.ColX)}, res.Theta)
		assert.InDelta(t, f+noise, res.Block.At(i, synth.ColY), 1e-9, "outlier y = f + δ")
		require.GreaterOrEqual(t, math.Abs(noise), outTimes*std)
		require.Less(t, math.Abs(noise), 3*outTimes*std)
		if noise < 0 {
			negatives++
		}
	}
	// 1000 fair signs: sd ≈ 16, so ±100 is a > 6σ band.
	assert.InDelta(t, 500, negatives, 100)
}

func TestGenerate_TrustedResidualsAreGaussian(t *testing.T) {
	t.Parallel()
	const std = 200.0
	res, err := synth.Generate(linear, 2, 20000, 20000, synth.WithSeed(3), synth.WithStd(std))
	require.NoError(t, err)

	trusted, outlier := residuals(t, res, linear)
	require.Empty(t, outlier)
	mean, sd := stat.MeanStdDev(trusted, nil)
	// Standard errors: mean ≈ 1.4, sd ≈ 1.0.
	assert.InDelta(t, 0, mean, 10)
	assert.InDelta(t, std, sd, 10)
}

func TestGenerate_Determinism(t *testing.T) {
	t.Parallel()
	a, err := synth.Generate(linear, 2, 200, 170, synth.WithSeed(2024))
	require.NoError(t, err)
	b, err := synth.Generate(linear, 2, 200, 170, synth.WithSeed(2024))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.Block, b.Block))
	assert.Equal(t, a.Theta, b.Theta)
	assert.Equal(t, a.Outliers, b.Outliers)

	c, err := synth.Generate(linear, 2, 200, 170, synth.WithSeed(2025))
	require.NoError(t, err)
	assert.False(t, mat.Equal(a.Block, c.Block))
}

func TestGenerate_ThetaIsCopied(t *testing.T) {
	t.Parallel()
	theta := []float64{1, 2}
	opt := synth.WithTheta(theta)
	theta[0] = 99

	a, err := synth.Generate(linear, 2, 5, 5, opt, synth.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, a.Theta)

	// Results of two calls sharing an option must not alias.
	b, err := synth.Generate(linear, 2, 5, 5, opt, synth.WithSeed(1))
	require.NoError(t, err)
	a.Theta[1] = -1
	assert.Equal(t, []float64{1, 2}, b.Theta)
}

func TestGenerate_SinglePoint(t *testing.T) {
	t.Parallel()
	res, err := synth.Generate(linear, 2, 1, 1, synth.WithInterval(3, 3), synth.WithSeed(1))
	require.NoError(t, err)
	rows, _ := res.Block.Dims()
	require.Equal(t, 1, rows)
	assert.Equal(t, 3.0, res.Block.At(0, synth.ColX))
	assert.Empty(t, res.Outliers)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		model synth.Model
		n, np int
		opts  []synth.Option
		want  error
	}{
		{"nil model", nil, 2, 10, nil, synth.ErrInvalidArgument},
		{"zero arity", linear, 0, 10, nil, synth.ErrInvalidArgument},
		{"zero points", linear, 2, 0, nil, synth.ErrInvalidArgument},
		{"reversed interval", linear, 2, 10, []synth.Option{synth.WithInterval(1, -1)}, synth.ErrInvalidArgument},
		{"nan interval", linear, 2, 10, []synth.Option{synth.WithInterval(math.NaN(), 1)}, synth.ErrInvalidArgument},
		{"theta length", linear, 2, 10, []synth.Option{synth.WithTheta([]float64{1, 2, 3})}, synth.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		_, err := synth.Generate(tc.model, tc.n, tc.np, 5, tc.opts...)
		require.Errorf(t, err, tc.name)
		assert.Truef(t, errors.Is(err, tc.want), "%s: got %v", tc.name, err)
	}
}

func TestGenerateInto_Buffers(t *testing.T) {
	t.Parallel()

	// Wrong shape: nothing is written.
	dst := mat.NewDense(9, 3, nil)
	_, _, err := synth.GenerateInto(dst, make([]int, 10), linear, 2, 10, 0, synth.WithSeed(1))
	require.True(t, errors.Is(err, synth.ErrDimensionMismatch))
	assert.Zero(t, mat.Sum(dst))

	// Outlier buffer too small: nothing is written.
	dst = mat.NewDense(10, 3, nil)
	buf := []int{-1, -1}
	_, _, err = synth.GenerateInto(dst, buf, linear, 2, 10, 7, synth.WithSeed(1))
	require.True(t, errors.Is(err, synth.ErrDimensionMismatch))
	assert.Zero(t, mat.Sum(dst))
	assert.Equal(t, []int{-1, -1}, buf)

	// Nil destination.
	_, _, err = synth.GenerateInto(nil, nil, linear, 2, 10, 10)
	require.True(t, errors.Is(err, synth.ErrInvalidArgument))
}

func TestGenerateInto_MatchesGenerate(t *testing.T) {
	t.Parallel()
	want, err := synth.Generate(linear, 2, 30, 25, synth.WithSeed(8))
	require.NoError(t, err)

	// Write into the middle of a bigger matrix through a gonum slice view.
	big := mat.NewDense(40, 3, nil)
	view := big.Slice(5, 35, 0, 3).(*mat.Dense)
	buf := make([]int, 5)
	theta, m, err := synth.GenerateInto(view, buf, linear, 2, 30, 25, synth.WithSeed(8))
	require.NoError(t, err)

	assert.Equal(t, want.Theta, theta)
	assert.Equal(t, want.Outliers, buf[:m])
	assert.True(t, mat.Equal(want.Block, view))
	assert.Zero(t, big.At(4, synth.ColY))
	assert.Zero(t, big.At(35, synth.ColY))
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { synth.WithStd(0) })
	assert.Panics(t, func() { synth.WithStd(-1) })
	assert.Panics(t, func() { synth.WithStd(math.NaN()) })
	assert.Panics(t, func() { synth.WithOutTimes(0) })
	assert.Panics(t, func() { synth.WithRand(nil) })
	assert.Panics(t, func() { synth.WithTheta(nil) })
	assert.NotPanics(t, func() { synth.WithInterval(5, -5) })
}
