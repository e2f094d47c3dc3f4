// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"
)

const unreachable = math.MaxInt64

// MinCostMaxFlow pushes the maximum possible flow from source to sink and,
// among all maximum flows, returns one of minimum total cost. Each round
// augments along an SPFA shortest path of the residual network.
func MinCostMaxFlow(g *Network, source, sink int) (Result, error) {
	if !g.has(source) || !g.has(sink) {
		return Result{}, fmt.Errorf("flow: source %d / sink %d: %w", source, sink, ErrNodeOutOfRange)
	}
	if source == sink {
		return Result{}, nil
	}

	var (
		n          = g.Order()
		dist       = make([]int64, n)
		parent     = make([]int, n)
		parentEdge = make([]int, n)
		inQueue    = make([]bool, n)
		relaxed    = make([]int, n)
		queue      = make([]int, 0, n)
		res        Result
	)

	for {
		// --- SPFA over residual arcs ---
		for i := 0; i < n; i++ {
			dist[i] = unreachable
			inQueue[i] = false
			relaxed[i] = 0
		}
		queue = queue[:0]
		dist[source] = 0
		queue = append(queue, source)
		inQueue[source] = true

		for head := 0; head < len(queue); head++ {
			u := queue[head]
			inQueue[u] = false

			for i := range g.adj[u] {
				e := &g.adj[u][i]
				if e.residual() <= 0 || dist[u]+e.cost >= dist[e.to] {
					continue
				}
				dist[e.to] = dist[u] + e.cost
				parent[e.to] = u
				parentEdge[e.to] = i
				if !inQueue[e.to] {
					relaxed[e.to]++
					if relaxed[e.to] > n {
						return res, ErrNegativeCycle
					}
					queue = append(queue, e.to)
					inQueue[e.to] = true
				}
			}
		}

		if dist[sink] == unreachable {
			break
		}

		// Bottleneck along the path.
		push := int64(unreachable)
		for v := sink; v != source; v = parent[v] {
			if r := g.adj[parent[v]][parentEdge[v]].residual(); r < push {
				push = r
			}
		}

		// Augment.
		for v := sink; v != source; v = parent[v] {
			e := &g.adj[parent[v]][parentEdge[v]]
			e.flow += push
			g.adj[v][e.rev].flow -= push
			res.Cost += push * e.cost
		}
		res.Flow += push
	}

	return res, nil
}
