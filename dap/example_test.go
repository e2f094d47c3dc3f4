// SPDX-License-Identifier: MIT

package dap_test

import (
	"fmt"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/matrix"
)

// ExampleSolver_Solve walks k over a two-item instance. With k = 0 no pair is
// forced and each center takes the other item twice, the most expensive
// choice; from k = 1 on the diverse pair (0,1) is used by both centers.
func ExampleSolver_Solve() {
	g := matrix.MustDense([][]float64{{0, 1}, {1, 0}})
	d := matrix.MustDense([][]float64{{0, 5}, {5, 0}})

	s, _ := dap.NewSolver(g, d, nil)
	for k := 0; k <= s.N(); k++ {
		sol, _ := s.Solve(k)
		fmt.Printf("k=%d cost=%g diversity=%g\n", k, sol.Cost, sol.Diversity)
	}
	// Output:
	// k=0 cost=4 diversity=0
	// k=1 cost=2 diversity=10
	// k=2 cost=2 diversity=10
}
