// SPDX-License-Identifier: MIT

package matching_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dapfront/matching"
)

// permutations enumerates all permutations of 0..n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			q := make([]int, 0, n)
			q = append(q, p[:pos]...)
			q = append(q, n-1)
			q = append(q, p[pos:]...)
			out = append(out, q)
		}
	}

	return out
}

// TestMinWeightPerfectMatching_BruteForce compares against full enumeration.
func TestMinWeightPerfectMatching_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 40; trial++ {
		dim := 1 + rng.Intn(5)
		b := matching.NewBipartite(dim, dim)
		for u := 0; u < dim; u++ {
			for v := 0; v < dim; v++ {
				require.NoError(t, b.SetWeight(u, v, rng.Int63n(41)-20))
			}
		}

		best := int64(1 << 62)
		for _, p := range permutations(dim) {
			var s int64
			for u, v := range p {
				w, _ := b.Weight(u, v)
				s += w
			}
			if s < best {
				best = s
			}
		}

		mate, total, err := matching.MinWeightPerfectMatching(b)
		require.NoError(t, err)
		assert.Equal(t, best, total, "trial %d", trial)

		seen := make(map[int]bool, dim)
		for _, v := range mate {
			assert.False(t, seen[v], "column used twice")
			seen[v] = true
		}
	}
}

// TestMinWeightPerfectMatching_Absent detects a graph with no perfect matching.
func TestMinWeightPerfectMatching_Absent(t *testing.T) {
	b := matching.NewBipartite(2, 2)
	require.NoError(t, b.SetWeight(0, 0, 1))
	require.NoError(t, b.SetWeight(1, 0, 1))

	_, _, err := matching.MinWeightPerfectMatching(b)
	assert.ErrorIs(t, err, matching.ErrNoPerfectMatching)

	_, _, err = matching.MinWeightPerfectMatching(matching.NewBipartite(2, 3))
	assert.ErrorIs(t, err, matching.ErrNoPerfectMatching)

	assert.ErrorIs(t, b.SetWeight(2, 0, 1), matching.ErrBadInput)
}

// TestTwoMatching_Invariants covers multiplicity and degree caps.
func TestTwoMatching_Invariants(t *testing.T) {
	m := matching.NewTwoMatching(3)
	require.NoError(t, m.Add(1, 0))
	require.NoError(t, m.Add(0, 1))
	assert.Equal(t, 2, m.Multiplicity(0, 1))
	assert.ErrorIs(t, m.Add(0, 1), matching.ErrMultiplicity)
	assert.ErrorIs(t, m.Add(0, 2), matching.ErrMultiplicity, "item 0 already has degree 2")

	require.NoError(t, m.Add(2, 2))
	assert.Equal(t, 2, m.Degree(2))
	assert.ErrorIs(t, m.Add(2, 2), matching.ErrMultiplicity)
	assert.ErrorIs(t, m.Add(0, 3), matching.ErrBadInput)

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []matching.Pair{{U: 0, V: 1}, {U: 2, V: 2}}, m.Pairs())
	assert.Equal(t, 10.0+7.0, m.Weight([][]float64{{0, 5, 0}, {5, 0, 0}, {0, 0, 7}}))
}

// TestKCardTwoMatching_TwoItems is the n=2 scenario with D=[[0,5],[5,0]].
func TestKCardTwoMatching_TwoItems(t *testing.T) {
	w := [][]int64{{0, 5}, {5, 0}}

	m, err := matching.KCardTwoMatching(w, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Pairs())

	m, err = matching.KCardTwoMatching(w, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Multiplicity(0, 1))

	m, err = matching.KCardTwoMatching(w, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Multiplicity(0, 1))
	assert.Equal(t, 2, m.Degree(0))
	assert.Equal(t, 2, m.Degree(1))
}

// TestKCardTwoMatching_SingleItem: n=1 can only use the self pair.
func TestKCardTwoMatching_SingleItem(t *testing.T) {
	m, err := matching.KCardTwoMatching([][]int64{{3}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Multiplicity(0, 0))
	assert.Equal(t, 2, m.Degree(0))
}

// bruteKCard enumerates partial injections left→right with exactly k arcs.
func bruteKCard(w [][]int64, k int) int64 {
	n := len(w)
	best := int64(-1 << 62)
	usedR := make([]bool, n)
	var rec func(u, arcs int, acc int64)
	rec = func(u, arcs int, acc int64) {
		if arcs > k || arcs+(n-u) < k {
			return
		}
		if u == n {
			if acc > best {
				best = acc
			}
			return
		}
		rec(u+1, arcs, acc)
		for v := 0; v < n; v++ {
			if usedR[v] {
				continue
			}
			usedR[v] = true
			rec(u+1, arcs+1, acc+w[u][v])
			usedR[v] = false
		}
	}
	rec(0, 0, 0)

	return best
}

// TestKCardTwoMatching_Random checks size, degree and optimality for all k.
func TestKCardTwoMatching_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 15; trial++ {
		n := 1 + rng.Intn(4)
		w := make([][]int64, n)
		for i := range w {
			w[i] = make([]int64, n)
		}
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				v := rng.Int63n(30)
				w[i][j], w[j][i] = v, v
			}
		}

		for k := 0; k <= n; k++ {
			m, err := matching.KCardTwoMatching(w, k)
			require.NoError(t, err)
			assert.Equal(t, k, m.Size(), "n=%d k=%d", n, k)
			for v := 0; v < n; v++ {
				assert.LessOrEqual(t, m.Degree(v), matching.MaxDegree)
			}

			var got int64
			for _, p := range m.Pairs() {
				got += w[p.U][p.V] * int64(m.Multiplicity(p.U, p.V))
			}
			assert.Equal(t, bruteKCard(w, k), got, "n=%d k=%d w=%v", n, k, w)
		}
	}
}

// TestKCardTwoMatching_BadInput covers the precondition checks.
func TestKCardTwoMatching_BadInput(t *testing.T) {
	_, err := matching.KCardTwoMatching(nil, 0)
	assert.ErrorIs(t, err, matching.ErrBadInput)

	_, err = matching.KCardTwoMatching([][]int64{{0, 1}, {1, 0}}, 3)
	assert.ErrorIs(t, err, matching.ErrBadInput)

	_, err = matching.KCardTwoMatching([][]int64{{0, 1}, {1, 0}}, -1)
	assert.ErrorIs(t, err, matching.ErrBadInput)

	_, err = matching.KCardTwoMatching([][]int64{{0, 1}, {2, 0}}, 1)
	assert.ErrorIs(t, err, matching.ErrAsymmetric)
}
