// SPDX-License-Identifier: MIT

package pareto

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// DominatingSet returns the non-dominated subset of points.
//
// Points are ordered descending by (cost, diversity) as seen through the
// configured directions; a point is kept only if its diversity is strictly
// better than every point kept before it, the first point always being kept.
// The result is therefore ordered by worsening cost and improving diversity.
// Exact duplicates collapse to one point.
//
// The input slice is not modified. A nil opts means DefaultOptions.
// Complexity: O(m log m).
func DominatingSet(points []Point, opts *Options) []Point {
	if len(points) == 0 {
		return nil
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	cs, ds := o.Cost.sign(), o.Diversity.sign()

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		if c := cmp.Compare(cs*b.Cost, cs*a.Cost); c != 0 {
			return c
		}
		return cmp.Compare(ds*b.Diversity, ds*a.Diversity)
	})

	front := []Point{sorted[0]}
	best := ds * sorted[0].Diversity
	for _, p := range sorted[1:] {
		if v := ds * p.Diversity; v > best {
			best = v
			front = append(front, p)
		}
	}

	return front
}

// Dominates reports whether a is at least as good as b on both coordinates
// and strictly better on one, under the directions in opts.
func Dominates(a, b Point, opts *Options) bool {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	ac, bc := o.Cost.sign()*a.Cost, o.Cost.sign()*b.Cost
	ad, bd := o.Diversity.sign()*a.Diversity, o.Diversity.sign()*b.Diversity
	if ac < bc || ad < bd {
		return false
	}

	return ac > bc || ad > bd
}
