// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/exp/slices"
)

const (
	// MaxCost is the upper bound of G entries; the lower bound is 1.
	MaxCost = 100

	// MaxDiversity is the upper bound of random D entries and of the
	// coordinates used by the distance strategy.
	MaxDiversity = 100
)

// Generate draws one instance of size n with the given strategy from rng.
// The returned instance has an empty Name; use Name to label it.
//
// Errors: ErrBadSize (n < 1), ErrUnknownStrategy.
// Complexity: O(n²).
func Generate(n int, s Strategy, rng *rand.Rand) (*Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("dataset: n=%d: %w", n, ErrBadSize)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	in := &Instance{Strategy: s, N: n, G: square(n), D: square(n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			in.G[i][j] = float64(1 + rng.Intn(MaxCost))
		}
	}

	var pair func(i, j int) float64
	switch s {
	case Uniform:
		pair = func(int, int) float64 { return 1 }
	case Random:
		pair = func(int, int) float64 { return float64(rng.Intn(MaxDiversity + 1)) }
	case Distance:
		xs, ys := make([]float64, n), make([]float64, n)
		for i := range xs {
			xs[i] = rng.Float64() * MaxDiversity
			ys[i] = rng.Float64() * MaxDiversity
		}
		pair = func(i, j int) float64 { return math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j])) }
	case Disjoint:
		class := make([]int, n)
		for i := range class {
			class[i] = rng.Intn(2)
		}
		pair = func(i, j int) float64 {
			if class[i] != class[j] {
				return 1
			}
			return 0
		}
	default:
		return nil, fmt.Errorf("dataset: %q: %w", s, ErrUnknownStrategy)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := pair(i, j)
			in.D[i][j], in.D[j][i] = v, v
		}
	}

	return in, nil
}

// GenerateSet draws count instances for every (strategy, size) combination.
// Each instance uses its own stream derived from seed, so the content of
// "<strategy>_div_<n>_<i>" does not depend on which other sizes or
// strategies are requested. Instances are ordered by size, then strategy,
// then ordinal.
func GenerateSet(sizes []int, strategies []Strategy, count int, seed int64) ([]*Instance, error) {
	if count < 0 {
		return nil, fmt.Errorf("dataset: count=%d: %w", count, ErrBadSize)
	}
	if seed == 0 {
		seed = defaultSeed
	}

	out := make([]*Instance, 0, len(sizes)*len(strategies)*count)
	for _, n := range sizes {
		for _, s := range strategies {
			idx := slices.Index(Strategies(), s)
			if idx < 0 {
				return nil, fmt.Errorf("dataset: %q: %w", s, ErrUnknownStrategy)
			}
			for i := 0; i < count; i++ {
				rng := rand.New(rand.NewSource(streamSeed(seed, instanceStream(idx, n, i))))
				in, err := Generate(n, s, rng)
				if err != nil {
					return nil, err
				}
				in.Name = Name(s, n, i)
				out = append(out, in)
			}
		}
	}

	return out, nil
}

func square(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}
