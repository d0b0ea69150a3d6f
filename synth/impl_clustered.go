// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// impl_clustered.go — the Clustered Partitioner.
//
// Layout of the np-row block (see partition.go for the counts):
//
//	rows 1..np1            pre-cluster   [domain.Lo, cluster.Lo)  all trusted
//	rows np1+1..np1+np2    cluster       [cluster.Lo, cluster.Hi) K outliers
//	rows np1+np2+1..np     post-cluster  [cluster.Hi, domain.Hi]  all trusted
//
// Each segment is filled by the same core as Generate, writing through a row
// window of the destination (no copies). θ and the RNG stream are shared, and
// segments run in row order, so a fixed seed reproduces the whole block.
// Every segment but the last non-empty one uses a half-open grid so x is
// strictly increasing across segment boundaries; the last one is closed.
// With cluster.Hi == domain.Hi the post segment is empty and the cluster
// segment ends exactly at xMax.

package synth

import "gonum.org/v1/gonum/mat"

const (
	methodGenerateClustered     = "GenerateClustered"
	methodGenerateClusteredInto = "GenerateClusteredInto"
)

// GenerateClustered is Generate with every outlier confined to the cluster
// sub-interval of the domain set by WithInterval.
//
// Errors: ErrInvalidArgument (nil model, n<1, np<1), ErrInvalidInterval
// (cluster not nested in domain), ErrDimensionMismatch (len(θ) ≠ n).
func GenerateClustered(model Model, n, np, p int, cluster Interval, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	if err := validateCommon(methodGenerateClustered, model, n, np, cfg); err != nil {
		return nil, err
	}
	if err := validateNesting(methodGenerateClustered, cfg.domain, cluster); err != nil {
		return nil, err
	}

	block := mat.NewDense(np, BlockCols, nil)
	outliers := make([]int, outlierCount(np, p))
	theta, m, err := generateClustered(methodGenerateClustered, block, outliers, model, n, np, p, cluster, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{Block: block, Theta: theta, Outliers: outliers[:m]}, nil
}

// GenerateClusteredInto is the in-place form of GenerateClustered. Buffer
// requirements match GenerateInto. Returned outlier rows are 1-based in the
// coordinate space of the full block.
func GenerateClusteredInto(dst mat.Mutable, outliers []int, model Model, n, np, p int, cluster Interval, opts ...Option) (theta []float64, count int, err error) {
	cfg := newConfig(opts...)
	if err = validateCommon(methodGenerateClusteredInto, model, n, np, cfg); err != nil {
		return nil, 0, err
	}
	if err = validateNesting(methodGenerateClusteredInto, cfg.domain, cluster); err != nil {
		return nil, 0, err
	}

	return generateClustered(methodGenerateClusteredInto, dst, outliers, model, n, np, p, cluster, cfg)
}

// generateClustered allocates points, validates buffers and fills the three
// segments in row order.
func generateClustered(method string, dst mat.Mutable, outliers []int, model Model, n, np, p int, cluster Interval, cfg config) ([]float64, int, error) {
	alloc, err := partition(np, p, cfg.domain, cluster)
	if err != nil {
		return nil, 0, err
	}
	if err = validateBuffers(method, dst, outliers, np, alloc.Outliers); err != nil {
		return nil, 0, err
	}

	rng := rngFrom(cfg)
	theta := resolveTheta(cfg, n, rng)
	nm := newNoiseModel(cfg.std, cfg.outTimes, rng)

	segs := [3]segment{
		{lo: cfg.domain.Lo, hi: cluster.Lo, np: alloc.Pre},
		{lo: cluster.Lo, hi: cluster.Hi, np: alloc.Cluster, k: alloc.Outliers},
		{lo: cluster.Hi, hi: cfg.domain.Hi, np: alloc.Post},
	}
	// The last non-empty segment ends on its right bound.
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].np > 0 {
			segs[i].closed = true
			break
		}
	}

	var (
		offset int // first 0-based row of the current segment
		m      int // outliers written (cluster segment only)
	)
	for i, seg := range segs {
		if seg.np == 0 {
			continue
		}
		view := rowWindow{m: dst, off: offset, rows: seg.np}
		if i == 1 {
			m = fillSegment(view, outliers, model, theta, seg, nm, rng)
		} else {
			fillSegment(view, nil, model, theta, seg, nm, rng)
		}
		offset += seg.np
	}

	// Shift local cluster rows into block coordinates.
	for j := 0; j < m; j++ {
		outliers[j] += alloc.Pre
	}

	return theta, m, nil
}

// rowWindow exposes rows [off, off+rows) of a mat.Mutable as an
// independent rows×BlockCols mutable matrix. Writes go straight through.
type rowWindow struct {
	m    mat.Mutable
	off  int
	rows int
}

// Dims implements mat.Matrix.
func (w rowWindow) Dims() (r, c int) { return w.rows, BlockCols }

// At implements mat.Matrix.
func (w rowWindow) At(i, j int) float64 {
	if i < 0 || i >= w.rows {
		panic(mat.ErrRowAccess)
	}
	return w.m.At(w.off+i, j)
}

// T implements mat.Matrix.
func (w rowWindow) T() mat.Matrix { return mat.Transpose{Matrix: w} }

// Set implements mat.Mutable.
func (w rowWindow) Set(i, j int, v float64) {
	if i < 0 || i >= w.rows {
		panic(mat.ErrRowAccess)
	}
	w.m.Set(w.off+i, j, v)
}
