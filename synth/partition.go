// SPDX-License-Identifier: MIT
// Package: lovogen/synth
//
// partition.go — point/outlier allocation across the three clustered segments.
//
// Allocation rule (ordered, greedy; reproduced exactly):
//
//	K   = clamp(np − p, 0, np)
//	np2 = min(np, max(K, round(frac2·np)))   cluster first: must absorb all K outliers
//	np1 = min(np − np2, round(frac1·np))     pre-cluster second
//	np3 = np − np1 − np2                     post-cluster takes the rounding error
//
// where frac1 = (cluster.Lo − domain.Lo)/|domain| and frac2 = |cluster|/|domain|.
// np1 + np2 + np3 == np holds by construction and every count is ≥ 0.

package synth

import "math"

const methodPartition = "Partition"

// Allocation is the result of Partition.
type Allocation struct {
	Pre      int // np1: rows in [domain.Lo, cluster.Lo)
	Cluster  int // np2: rows in [cluster.Lo, cluster.Hi)
	Post     int // np3: rows in [cluster.Hi, domain.Hi]
	Outliers int // K: outliers, all inside the cluster segment
}

// ClusterRows returns the 1-based, inclusive row range of the cluster
// segment inside the full block. first > last when the segment is empty.
func (a Allocation) ClusterRows() (first, last int) {
	return a.Pre + 1, a.Pre + a.Cluster
}

// Partition apportions np points (np − p of them outliers) across the
// pre-cluster, cluster and post-cluster sub-intervals of domain.
//
// Errors: ErrInvalidArgument when np < 1; ErrInvalidInterval unless
// domain.Lo ≤ cluster.Lo < cluster.Hi ≤ domain.Hi with finite bounds.
func Partition(np, p int, domain, cluster Interval) (Allocation, error) {
	if np < 1 {
		return Allocation{}, synthErrorf(methodPartition, ErrInvalidArgument, "point count np=%d < 1", np)
	}
	if err := validateNesting(methodPartition, domain, cluster); err != nil {
		return Allocation{}, err
	}

	return partition(np, p, domain, cluster)
}

// partition assumes validated inputs.
func partition(np, p int, domain, cluster Interval) (Allocation, error) {
	total := domain.Len() // > 0: the cluster is a non-empty sub-range
	frac1 := (cluster.Lo - domain.Lo) / total
	frac2 := cluster.Len() / total

	k := outlierCount(np, p)
	np2 := min(np, max(k, roundCount(frac2, np)))
	np1 := min(np-np2, roundCount(frac1, np))
	np3 := np - np1 - np2

	// Not reachable through the rule above (np2 ≥ k); kept as a hard stop so
	// a future rule change cannot silently drop outliers.
	if k > 0 && np2 == 0 {
		return Allocation{}, synthErrorf(methodPartition, ErrInvalidArgument,
			"cluster segment has no rows for %d outliers", k)
	}

	return Allocation{Pre: np1, Cluster: np2, Post: np3, Outliers: k}, nil
}

// roundCount returns round(frac·np) as an int (half away from zero).
func roundCount(frac float64, np int) int {
	return int(math.Round(frac * float64(np)))
}
