// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrBadInput is returned for empty or non-square weights or k outside [0,n].
	ErrBadInput = errors.New("matching: bad input")

	// ErrAsymmetric is returned when the pair weights are not symmetric.
	ErrAsymmetric = errors.New("matching: weights are not symmetric")

	// ErrNoPerfectMatching is returned when no perfect matching exists on the
	// arcs present in a Bipartite graph.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching")

	// ErrMultiplicity is returned when adding a pair would exceed multiplicity 2
	// or push an item's degree above 2.
	ErrMultiplicity = errors.New("matching: multiplicity above 2")

	// ErrOverflow is returned when weights are too large for exact int64 potentials.
	ErrOverflow = errors.New("matching: weights overflow int64 potentials")
)

// MaxDegree is the largest number of pair slots a single item may occupy.
const MaxDegree = 2

// Pair is an unordered pair of item indices stored canonically with U ≤ V.
type Pair struct {
	U, V int
}

// NewPair returns the canonical (min,max) pair.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// Self reports whether the pair uses the same item twice.
func (p Pair) Self() bool { return p.U == p.V }

// String renders the pair as "(u,v)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.U, p.V) }

// TwoMatching maps canonical pairs to a multiplicity in {1,2} over items
// 0..n-1. Absent pairs have multiplicity 0.
//
// Invariants (enforced by Add):
//   - multiplicity of any pair ≤ 2;
//   - degree of any item ≤ 2, where a pair (j,k) adds its multiplicity to both
//     j and k and a self pair (j,j) adds twice its multiplicity to j.
type TwoMatching struct {
	n      int
	mult   map[Pair]int
	degree []int
	size   int
}

// NewTwoMatching returns an empty 2-matching over n items.
func NewTwoMatching(n int) *TwoMatching {
	return &TwoMatching{n: n, mult: make(map[Pair]int), degree: make([]int, n)}
}

// Add records one more use of the pair (a,b).
func (m *TwoMatching) Add(a, b int) error {
	if a < 0 || b < 0 || a >= m.n || b >= m.n {
		return fmt.Errorf("matching: pair (%d,%d) over %d items: %w", a, b, m.n, ErrBadInput)
	}
	p := NewPair(a, b)
	if m.mult[p]+1 > MaxDegree {
		return fmt.Errorf("matching: pair %s: %w", p, ErrMultiplicity)
	}
	if p.Self() {
		if m.degree[a]+2 > MaxDegree {
			return fmt.Errorf("matching: item %d: %w", a, ErrMultiplicity)
		}
	} else if m.degree[a]+1 > MaxDegree || m.degree[b]+1 > MaxDegree {
		return fmt.Errorf("matching: pair %s degree: %w", p, ErrMultiplicity)
	}

	m.mult[p]++
	m.degree[p.U]++
	m.degree[p.V]++
	m.size++

	return nil
}

// Multiplicity returns how many times the pair (a,b) is used (0, 1 or 2).
func (m *TwoMatching) Multiplicity(a, b int) int {
	return m.mult[NewPair(a, b)]
}

// Degree returns the number of pair slots item v occupies (0, 1 or 2).
func (m *TwoMatching) Degree(v int) int {
	if v < 0 || v >= m.n {
		return 0
	}

	return m.degree[v]
}

// Size returns the total multiplicity mass Σ multiplicity.
func (m *TwoMatching) Size() int { return m.size }

// Items returns n.
func (m *TwoMatching) Items() int { return m.n }

// Pairs returns the used pairs in ascending (U,V) order.
func (m *TwoMatching) Pairs() []Pair {
	ps := maps.Keys(m.mult)
	slices.SortFunc(ps, func(a, b Pair) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})

	return ps
}

// Weight returns Σ w[u][v]·multiplicity over used pairs.
func (m *TwoMatching) Weight(w [][]float64) float64 {
	var total float64
	for _, p := range m.Pairs() {
		total += w[p.U][p.V] * float64(m.mult[p])
	}

	return total
}
