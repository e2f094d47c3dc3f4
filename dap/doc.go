// SPDX-License-Identifier: MIT

// Package dap builds approximate solutions of the Diversified Assignment
// Problem: n items act both as centers and as leaves; the leaves are paired
// into a 2-regular multigraph (a 2-factor) and every center is assigned to
// exactly one of its edges.
//
//	cost      = Σ_i G[i][j] + G[i][k]   over centers i assigned pair (j,k)
//	diversity = Σ_i D[j][k]             over the same pairs
//
// For a fixed cardinality k the Solver chains three reductions, each a pure
// function of the previous result:
//
//  1. matching.KCardTwoMatching on D fixes k diversity-maximizing pair slots.
//  2. flow.Transportation maps centers (supply 1) onto those pairs
//     (demand = multiplicity) with weight G[i][j]+G[i][k].
//  3. flow.Transportation completes the leftover centers (supply 2) onto the
//     leftover leaf slots (demand 2 − used) with weight G[i][j].
//
// The resulting Assignment has every row and every column summing to 2; any
// deviation is reported as ErrInvariant together with k and n.
//
// Weights are rounded to integers (after multiplying by Options.Scale) for
// the matching and flow networks; Cost and Diversity are always scored on
// the input float matrices.
//
// The package is deterministic and does not log.
package dap
