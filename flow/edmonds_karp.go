// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/graphengine/core"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds-Karp algorithm: BFS finds the shortest (fewest-arc) augmenting
// path each round.
//
// Errors: as FordFulkerson.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp[K comparable](g core.Reader[K], source, sink K, opts Options) (*Result[K], error) {
	nw, err := newNetwork(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}

	maxFlow := 0.0
	for {
		parent, ok := nw.bfsAugmentingPath()
		if !ok {
			break
		}
		delta, hops := nw.augment(parent)
		maxFlow += delta
		nw.logAugment("edmonds-karp", delta, maxFlow, hops)
	}

	return nw.result(maxFlow), nil
}

// bfsAugmentingPath finds the shortest path from source to sink over arcs
// with capacity above eps and reports whether one exists.
func (nw *network[K]) bfsAugmentingPath() ([]step, bool) {
	n := len(nw.ids)
	parent := make([]step, n)
	visited := make([]bool, n)
	visited[nw.s] = true
	queue := []int{nw.s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i, a := range nw.adj[u] {
			if a.cap <= nw.eps || visited[a.to] {
				continue
			}
			visited[a.to] = true
			parent[a.to] = step{from: u, idx: i}
			if a.to == nw.t {
				return parent, true
			}
			queue = append(queue, a.to)
		}
	}

	return nil, false
}
