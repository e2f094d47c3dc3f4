// SPDX-License-Identifier: MIT

// Package flow implements minimum-cost maximum-flow on small integral
// networks and the (possibly unbalanced) max-weight transportation problem
// built on top of it.
//
// The key pieces are:
//
//   - Network
//
//   - Nodes are dense integers 0..Order()-1; every AddArc also creates the
//     zero-capacity residual twin with negated cost.
//
//   - Built per call and never retained by the solvers.
//
//   - MinCostMaxFlow
//
//   - Method: successive shortest augmenting paths, SPFA (queue-based
//     Bellman–Ford) over residual costs, so negative arc costs are allowed
//     as long as the initial network has no negative cycle.
//
//   - Time:   O(F · V · E) where F is the flow volume (integral networks).
//
//   - Memory: O(V + E).
//
//   - Transportation
//
//   - Source → supply i (cap supplies[i]), supply i → demand j (cap
//     Options.EdgeCapacity, cost −w[i][j]), demand j → sink (cap demands[j]).
//
//   - Among all flows of maximum volume, the returned plan maximizes
//     Σ flow[i][j]·w[i][j].
//
// # Errors
//
//	ErrBadShape          - empty/ragged weights or supply/demand length mismatch.
//	ErrNegativeCapacity  - negative supply, demand or arc capacity.
//	ErrNodeOutOfRange    - arc endpoints or source/sink outside the network.
//	ErrNegativeCycle     - the residual network contains a negative-cost cycle.
//
// All functions are deterministic: arcs are scanned in insertion order and
// the SPFA queue is FIFO, so identical input yields an identical plan.
package flow
