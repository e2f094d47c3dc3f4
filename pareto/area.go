// SPDX-License-Identifier: MIT

package pareto

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// SetArea returns the area of the staircase spanned by points above the
// reference corner (minCost, minDiversity):
//
//	sort ascending by (cost, diversity)
//	area = (c0 − minCost)(d0 − minDiversity) + Σ_{i≥1} (ci − ci−1)(di − minDiversity)
//
// For a maximize/maximize frontier this is the region the frontier
// dominates, so ratios of SetArea values compare two frontiers of the same
// instance. The input slice is not modified.
//
// Errors: ErrEmpty.
func SetArea(points []Point, minCost, minDiversity float64) (float64, error) {
	if len(points) == 0 {
		return 0, ErrEmpty
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b Point) int {
		if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
			return c
		}
		return cmp.Compare(a.Diversity, b.Diversity)
	})

	area := (sorted[0].Cost - minCost) * (sorted[0].Diversity - minDiversity)
	for i := 1; i < len(sorted); i++ {
		area += (sorted[i].Cost - sorted[i-1].Cost) * (sorted[i].Diversity - minDiversity)
	}

	return area, nil
}
