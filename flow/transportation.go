// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/dapfront/matrix"
)

// Transportation solves the max-weight (possibly unbalanced) transportation
// problem on an n1×n2 integer weight table.
//
// Network layout (n1+n2+2 nodes):
//
//	source = n1+n2, sink = n1+n2+1
//	source → i        cap supplies[i], cost 0
//	i      → n1+j     cap opts.EdgeCapacity, cost −w[i][j]
//	n1+j   → sink     cap demands[j], cost 0
//
// The returned plan has maximum volume (min(Σsupplies, Σdemands) unless the
// per-arc capacity binds) and, among such plans, maximum Σ flow·w.
// Zero supplies and demands are allowed and simply carry no flow.
//
// Errors: ErrBadShape, ErrNegativeCapacity, ErrNegativeCycle (never expected
// here: the network is acyclic before the first augmentation).
func Transportation(w [][]int64, supplies, demands []int64, opts *Options) (*Plan, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		o.normalize()
	}
	if o.EdgeCapacity < 0 {
		return nil, fmt.Errorf("flow: edge capacity %d: %w", o.EdgeCapacity, ErrNegativeCapacity)
	}

	n1, n2, err := transportShape(w, supplies, demands)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateNonNegative(supplies); err != nil {
		return nil, fmt.Errorf("flow: supplies: %w: %w", ErrNegativeCapacity, err)
	}
	if err = matrix.ValidateNonNegative(demands); err != nil {
		return nil, fmt.Errorf("flow: demands: %w: %w", ErrNegativeCapacity, err)
	}

	source, sink := n1+n2, n1+n2+1
	g := NewNetwork(n1 + n2 + 2)
	for i := 0; i < n1; i++ {
		if supplies[i] > 0 {
			if _, err = g.AddArc(source, i, supplies[i], 0); err != nil {
				return nil, err
			}
		}
	}
	for j := 0; j < n2; j++ {
		if demands[j] > 0 {
			if _, err = g.AddArc(n1+j, sink, demands[j], 0); err != nil {
				return nil, err
			}
		}
	}

	// Arcs touching a zero supply or demand can never carry flow; skipping
	// them keeps the residual graph small for the sparse pair-demand case.
	ids := make([][]ArcID, n1)
	for i := 0; i < n1; i++ {
		ids[i] = make([]ArcID, n2)
		for j := 0; j < n2; j++ {
			ids[i][j] = ArcID{from: -1}
			if supplies[i] == 0 || demands[j] == 0 {
				continue
			}
			if ids[i][j], err = g.AddArc(i, n1+j, o.EdgeCapacity, -w[i][j]); err != nil {
				return nil, err
			}
		}
	}

	res, err := MinCostMaxFlow(g, source, sink)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Flow: make([][]int64, n1), Volume: res.Flow, Weight: -res.Cost}
	for i := 0; i < n1; i++ {
		plan.Flow[i] = make([]int64, n2)
		for j := 0; j < n2; j++ {
			if ids[i][j].from >= 0 {
				plan.Flow[i][j] = g.Flow(ids[i][j])
			}
		}
	}

	return plan, nil
}

// transportShape validates the table against the supply and demand vectors.
func transportShape(w [][]int64, supplies, demands []int64) (int, int, error) {
	n1 := len(w)
	if n1 == 0 || len(w[0]) == 0 {
		return 0, 0, ErrBadShape
	}
	n2 := len(w[0])
	for i := range w {
		if len(w[i]) != n2 {
			return 0, 0, fmt.Errorf("flow: row %d has %d columns, want %d: %w", i, len(w[i]), n2, ErrBadShape)
		}
	}
	if len(supplies) != n1 {
		return 0, 0, fmt.Errorf("flow: %d supplies for %d rows: %w", len(supplies), n1, ErrBadShape)
	}
	if len(demands) != n2 {
		return 0, 0, fmt.Errorf("flow: %d demands for %d columns: %w", len(demands), n2, ErrBadShape)
	}

	return n1, n2, nil
}
