// SPDX-License-Identifier: MIT

// Package pareto turns per-k DAP solutions into an approximate (cost,
// diversity) trade-off curve.
//
//   - Samples runs the dap.Solver once for every k in [0,n] and collects one
//     Point per k. The k values are solved sequentially on read-only inputs.
//   - DominatingSet keeps the non-dominated points. The orientation of each
//     coordinate is chosen by Options (both maximized by default).
//   - Sweep is Samples followed by DominatingSet.
//   - SetArea measures the region a maximize/maximize frontier dominates
//     above a reference corner, typically (dap.MinimumCost,
//     dap.MinimumDiversity). Orient first negates minimized coordinates so
//     any orientation can be measured the same way.
//
// Exact frontiers come from outside this module through the Baseline
// interface.
package pareto
