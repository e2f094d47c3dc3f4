// SPDX-License-Identifier: MIT

package flow

import "errors"

// ErrBadShape is returned when the weight table is empty or ragged, or when
// supplies/demands do not match its dimensions.
var ErrBadShape = errors.New("flow: bad transportation shape")

// ErrNegativeCapacity is returned when a supply, demand or arc capacity is negative.
var ErrNegativeCapacity = errors.New("flow: negative capacity")

// ErrNodeOutOfRange is returned when an arc endpoint, source or sink is not a node.
var ErrNodeOutOfRange = errors.New("flow: node out of range")

// ErrNegativeCycle is returned when shortest-path search detects a negative-cost
// cycle in the residual network; successive shortest paths is undefined then.
var ErrNegativeCycle = errors.New("flow: negative cost cycle")

// DefaultEdgeCapacity is the per-pair capacity of a transportation arc:
// a supply node may send at most two units to the same demand node.
const DefaultEdgeCapacity int64 = 2

// Options configures Transportation.
//   - EdgeCapacity: capacity of every supply→demand arc (default 2).
type Options struct {
	EdgeCapacity int64
}

// DefaultOptions returns Options{EdgeCapacity: 2}.
func DefaultOptions() Options {
	return Options{EdgeCapacity: DefaultEdgeCapacity}
}

// normalize fills zero fields with defaults.
func (o *Options) normalize() {
	if o.EdgeCapacity == 0 {
		o.EdgeCapacity = DefaultEdgeCapacity
	}
}

// Result is the outcome of MinCostMaxFlow.
type Result struct {
	// Flow is the total volume sent from source to sink.
	Flow int64

	// Cost is Σ flow(a)·cost(a) over all forward arcs.
	Cost int64
}

// Plan is the outcome of a transportation solve.
type Plan struct {
	// Flow[i][j] is the volume shipped from supply i to demand j.
	Flow [][]int64

	// Volume is Σ Flow[i][j].
	Volume int64

	// Weight is Σ Flow[i][j]·w[i][j] in the (scaled) integer weight units.
	Weight int64
}

// RowSum returns Σ_j Flow[i][j].
func (p *Plan) RowSum(i int) int64 {
	var s int64
	for _, f := range p.Flow[i] {
		s += f
	}

	return s
}

// ColSum returns Σ_i Flow[i][j].
func (p *Plan) ColSum(j int) int64 {
	var s int64
	for i := range p.Flow {
		s += p.Flow[i][j]
	}

	return s
}
