// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/graphengine/core"
)

// FordFulkerson computes the maximum flow from source to sink using the
// Ford-Fulkerson method (DFS-based augmenting paths).
//
// Edge weights are capacities. Parallel edges are summed, self-loops are
// ignored and an undirected edge can carry its capacity either way.
//
// Steps:
//  1. Validate options and endpoints, build the residual network.
//  2. Repeat until no augmenting path:
//     a. Iterative DFS from source over arcs with capacity > Epsilon.
//     b. If sink is unreachable, stop.
//     c. Push the bottleneck along the path and accumulate it.
//  3. Derive net flows, the minimum cut and the residual graph.
//
// Errors: ErrGraphNil, ErrBadOption, ErrSourceNotFound, ErrSinkNotFound,
// ErrSourceIsSink, EdgeError.
//
// Complexity:
//
//	Time:   O(E · F) where F = maxFlow on integral networks.
//	Memory: O(V + E).
func FordFulkerson[K comparable](g core.Reader[K], source, sink K, opts Options) (*Result[K], error) {
	// 1) Residual network.
	nw, err := newNetwork(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}

	n := len(nw.ids)
	parent := make([]step, n)
	visited := make([]bool, n)
	stack := make([]int, 0, n)
	maxFlow := 0.0
	for {
		// 2a) Iterative DFS, LIFO.
		clear(visited)
		visited[nw.s] = true
		stack = append(stack[:0], nw.s)
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for i, a := range nw.adj[u] {
				if a.cap <= nw.eps || visited[a.to] {
					continue
				}
				visited[a.to] = true
				parent[a.to] = step{from: u, idx: i}
				if a.to == nw.t {
					found = true
					break
				}
				stack = append(stack, a.to)
			}
		}

		// 2b) No augmenting path left.
		if !found {
			break
		}

		// 2c) Augment.
		delta, hops := nw.augment(parent)
		maxFlow += delta
		nw.logAugment("ford-fulkerson", delta, maxFlow, hops)
	}

	// 3) Package.
	return nw.result(maxFlow), nil
}
