// SPDX-License-Identifier: MIT

package matching

import "fmt"

// KCardTwoMatching returns a maximum-weight 2-matching of total multiplicity
// exactly k over the n items of the symmetric weight table w.
//
// Reduction (bipartite graph with 2n−k nodes per side):
//
//	left  0..n-1    real item i          right 0..n-1    real item j
//	left  n..2n-k-1 dummy                right n..2n-k-1 dummy
//
//	real i  – real j   weight −w[i][j]   (a matched arc is one use of pair (i,j))
//	dummy   – real     weight −total     (every dummy grabs a real slot)
//	dummy   – dummy    weight +total     (never worth taking)
//
// with total = Σ|w| + 1. The n−k dummies on each side consume n−k real slots
// on the other side, leaving exactly k real↔real arcs; each item has one
// slot per side, hence degree ≤ 2.
//
// Edge cases: k == 0 returns an empty matching; k == n matches every slot.
//
// Errors: ErrBadInput, ErrAsymmetric, ErrOverflow, ErrNoPerfectMatching
// (an internal invariant violation: the dummy padding always admits one).
//
// Complexity: O((2n−k)³).
func KCardTwoMatching(w [][]int64, k int) (*TwoMatching, error) {
	n, err := validatePairWeights(w)
	if err != nil {
		return nil, err
	}
	if k < 0 || k > n {
		return nil, fmt.Errorf("matching: k=%d outside [0,%d]: %w", k, n, ErrBadInput)
	}

	result := NewTwoMatching(n)
	if k == 0 {
		return result, nil
	}

	var total int64 = 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w[i][j] < 0 {
				total -= w[i][j]
			} else {
				total += w[i][j]
			}
		}
	}

	dim := 2*n - k
	b := NewBipartite(dim, dim)
	for u := 0; u < dim; u++ {
		for v := 0; v < dim; v++ {
			var weight int64
			switch {
			case u < n && v < n:
				weight = -w[u][v]
			case u >= n && v >= n:
				weight = total
			default:
				weight = -total
			}
			_ = b.SetWeight(u, v, weight) // indices are in range by construction
		}
	}

	mate, _, err := MinWeightPerfectMatching(b)
	if err != nil {
		return nil, fmt.Errorf("matching: k=%d n=%d: %w", k, n, err)
	}

	for u := 0; u < n; u++ {
		if v := mate[u]; v < n {
			if err = result.Add(u, v); err != nil {
				return nil, fmt.Errorf("matching: k=%d n=%d: %w", k, n, err)
			}
		}
	}
	if result.Size() != k {
		return nil, fmt.Errorf("matching: k=%d n=%d got size %d: %w", k, n, result.Size(), ErrNoPerfectMatching)
	}

	return result, nil
}

// validatePairWeights checks that w is a non-empty symmetric square table.
func validatePairWeights(w [][]int64) (int, error) {
	n := len(w)
	if n == 0 {
		return 0, fmt.Errorf("matching: empty weights: %w", ErrBadInput)
	}
	for i := range w {
		if len(w[i]) != n {
			return 0, fmt.Errorf("matching: row %d has %d entries, want %d: %w", i, len(w[i]), n, ErrBadInput)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w[i][j] != w[j][i] {
				return 0, fmt.Errorf("matching: w[%d][%d]=%d vs w[%d][%d]=%d: %w",
					i, j, w[i][j], j, i, w[j][i], ErrAsymmetric)
			}
		}
	}

	return n, nil
}
