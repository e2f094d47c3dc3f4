// SPDX-License-Identifier: MIT

// Package dapfront computes approximate cost/diversity trade-off frontiers
// for the Diversified Assignment Problem (DAP).
//
// Given n items, a DAP solution pairs the items into a 2-regular multigraph
// (every item appears in exactly two pair slots) and assigns every item, as a
// center, to exactly one of those pairs. Cost accrues from the center→leaf
// matrix G; diversity accrues from the leaf→leaf matrix D over the chosen
// pairs.
//
// Layout:
//
//	matrix/      dense matrices, validators, decimal scale-and-round
//	matching/    min-weight perfect bipartite matching, k-cardinality 2-matching
//	flow/        min-cost max-flow network, unbalanced transportation
//	dap/         the three-stage solver for a fixed k, scoring, lower bounds
//	pareto/      sweep over k, dominating set, frontier area
//	dataset/     instance generators and YAML persistence
//	store/       CSV points, tables and timing logs
//	experiment/  concurrent sweeps, frontier statistics, timing runs
//	report/      frontier and timing charts
//	config/      TOML + env + flag configuration
//	logging/     slog construction with rotated file output
//	cmd/dapfront the command-line driver
//
// Quick example:
//
//	g := matrix.MustDense([][]float64{{0, 1}, {1, 0}})
//	d := matrix.MustDense([][]float64{{0, 5}, {5, 0}})
//	front, _ := pareto.Sweep(ctx, g, d, nil) // [(4, 0) (2, 10)]
//
// matrix, flow, matching and dap are deterministic, never log and return
// sentinel errors prefixed with their package name.
package dapfront
