// SPDX-License-Identifier: MIT

package flow

import "fmt"

// arc is one directed residual arc. Every forward arc at adj[u][i] has its
// twin at adj[to][rev] and vice versa.
type arc struct {
	to   int
	rev  int   // index of the twin arc in adj[to]
	cap  int64 // capacity (0 for residual twins)
	cost int64 // unit cost (negated on the twin)
	flow int64 // current flow (negative on the twin)
}

// ArcID identifies a forward arc returned by AddArc.
type ArcID struct {
	from, idx int
}

// Network is an integral flow network with costed arcs on nodes 0..Order()-1.
// It is not safe for concurrent use; solvers build one per call.
type Network struct {
	adj [][]arc
}

// NewNetwork allocates a network with the given number of nodes.
func NewNetwork(nodes int) *Network {
	if nodes < 0 {
		nodes = 0
	}

	return &Network{adj: make([][]arc, nodes)}
}

// Order returns the number of nodes.
func (g *Network) Order() int { return len(g.adj) }

// AddArc adds a forward arc from→to with the given capacity and unit cost,
// plus its residual twin (capacity 0, cost −cost).
//
// Errors: ErrNodeOutOfRange, ErrNegativeCapacity.
// Complexity: O(1) amortized.
func (g *Network) AddArc(from, to int, capacity, cost int64) (ArcID, error) {
	if !g.has(from) || !g.has(to) {
		return ArcID{}, fmt.Errorf("flow: arc %d→%d: %w", from, to, ErrNodeOutOfRange)
	}
	if capacity < 0 {
		return ArcID{}, fmt.Errorf("flow: arc %d→%d cap %d: %w", from, to, capacity, ErrNegativeCapacity)
	}

	fwd := len(g.adj[from])
	back := len(g.adj[to])
	if from == to {
		back++ // the twin lands right after the forward arc in the same slice
	}
	g.adj[from] = append(g.adj[from], arc{to: to, rev: back, cap: capacity, cost: cost})
	g.adj[to] = append(g.adj[to], arc{to: from, rev: fwd, cap: 0, cost: -cost})

	return ArcID{from: from, idx: fwd}, nil
}

// Flow returns the current flow on a forward arc.
func (g *Network) Flow(id ArcID) int64 {
	return g.adj[id.from][id.idx].flow
}

// has reports whether v is a node of g.
func (g *Network) has(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// residual returns the remaining capacity of e.
func (e *arc) residual() int64 {
	return e.cap - e.flow
}
