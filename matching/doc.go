// SPDX-License-Identifier: MIT

// Package matching solves the cardinality-constrained 2-matching problem by
// reduction to minimum-weight perfect bipartite matching.
//
// Pieces:
//
//   - Bipartite: explicit left×right weight table with optional missing arcs,
//     built per call.
//
//   - MinWeightPerfectMatching: Kuhn–Munkres with potentials (Jonker–Volgenant
//     style shortest augmenting paths) on integer weights.
//
//   - Time:   O(V³)
//
//   - Memory: O(V²)
//
//   - KCardTwoMatching: the k-cardinality reduction. Every item appears once
//     on each side, and n−k dummy nodes per side absorb the item slots that
//     must stay unmatched. Dummy↔real arcs weigh −total (always taken),
//     dummy↔dummy arcs weigh +total (never taken), real↔real arcs weigh −w.
//
//   - TwoMatching: sparse result keyed by Pair{U ≤ V}; multiplicity ≤ 2 and
//     per-item degree ≤ 2 are enforced on every Add.
//
// A self pair (i,i) of multiplicity 1 uses item i twice (degree 2).
package matching
