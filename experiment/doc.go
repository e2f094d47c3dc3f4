// SPDX-License-Identifier: MIT

// Package experiment drives frontier computations over a grid of stored
// instances (size × diversity strategy × ordinal):
//
//   - Runner.Approx sweeps every instance and stores its approximate front.
//   - Runner.Exact stores the fronts of a pareto.Baseline when one is set.
//   - Runner.Stats compares approximate and exact fronts by frontier area
//     and point counts, averaged per (strategy, size).
//   - Runner.Timing measures one sweep per instance and appends the wall
//     time to the per-size timing file.
//
// Instances are processed concurrently by a bounded pool; each sweep is
// itself sequential. Timing runs are always sequential.
package experiment
