// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"math"
)

// Bipartite is a complete-or-sparse weighted bipartite graph with `left`
// nodes on one side and `right` nodes on the other. Arcs not set with
// SetWeight are absent.
type Bipartite struct {
	left, right int
	w           [][]int64
	present     [][]bool
}

// NewBipartite allocates an arc-less bipartite graph.
func NewBipartite(left, right int) *Bipartite {
	b := &Bipartite{left: left, right: right, w: make([][]int64, left), present: make([][]bool, left)}
	for i := 0; i < left; i++ {
		b.w[i] = make([]int64, right)
		b.present[i] = make([]bool, right)
	}

	return b
}

// Left returns the number of left nodes.
func (b *Bipartite) Left() int { return b.left }

// Right returns the number of right nodes.
func (b *Bipartite) Right() int { return b.right }

// SetWeight adds (or overwrites) the arc u→v with weight w.
func (b *Bipartite) SetWeight(u, v int, w int64) error {
	if u < 0 || u >= b.left || v < 0 || v >= b.right {
		return fmt.Errorf("matching: arc (%d,%d) on %d×%d: %w", u, v, b.left, b.right, ErrBadInput)
	}
	b.w[u][v] = w
	b.present[u][v] = true

	return nil
}

// Weight returns the weight of arc u→v and whether it exists.
func (b *Bipartite) Weight(u, v int) (int64, bool) {
	if u < 0 || u >= b.left || v < 0 || v >= b.right {
		return 0, false
	}

	return b.w[u][v], b.present[u][v]
}

// MinWeightPerfectMatching returns mate[u] = v for every left node u such that
// the matching is perfect and Σ w(u, mate[u]) is minimum, plus that sum.
//
// Absent arcs are priced above any perfect matching that avoids them; if the
// optimum still uses one, no perfect matching exists on the present arcs.
// Unequal sides report ErrNoPerfectMatching.
func MinWeightPerfectMatching(b *Bipartite) ([]int, int64, error) {
	if b.left != b.right {
		return nil, 0, fmt.Errorf("matching: %d left vs %d right: %w", b.left, b.right, ErrNoPerfectMatching)
	}
	dim := b.left
	if dim == 0 {
		return []int{}, 0, nil
	}

	// absent must exceed the spread of any perfect matching on present arcs.
	var maxAbs int64
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if !b.present[i][j] {
				continue
			}
			a := b.w[i][j]
			if a < 0 {
				a = -a
			}
			if a > maxAbs {
				maxAbs = a
			}
		}
	}
	bound := int64(math.MaxInt64 / 8 / int64(dim+1))
	if maxAbs >= bound/int64(2*dim+2) {
		return nil, 0, ErrOverflow
	}
	absent := (maxAbs+1)*int64(2*dim) + 1

	cost := func(i, j int) int64 {
		if b.present[i][j] {
			return b.w[i][j]
		}
		return absent
	}

	// 1-indexed arrays; column 0 and row 0 are the virtual start.
	const inf = math.MaxInt64 / 4
	var (
		u    = make([]int64, dim+1) // row potentials
		v    = make([]int64, dim+1) // column potentials
		p    = make([]int, dim+1)   // p[j] = row matched to column j
		way  = make([]int, dim+1)   // previous column on the augmenting path
		minv = make([]int64, dim+1)
		used = make([]bool, dim+1)
	)
	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= dim; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := int64(inf)
			j1 := 0
			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	mate := make([]int, dim)
	var total int64
	for j := 1; j <= dim; j++ {
		i := p[j] - 1
		if !b.present[i][j-1] {
			return nil, 0, fmt.Errorf("matching: row %d forced onto absent arc %d: %w", i, j-1, ErrNoPerfectMatching)
		}
		mate[i] = j - 1
		total += b.w[i][j-1]
	}

	return mate, total, nil
}
