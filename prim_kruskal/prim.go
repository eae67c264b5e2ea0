// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/pqueue"
)

// candidate is a heap entry: the edge from an in-tree node to v.
// seq keeps otherwise identical parallel entries distinct.
type candidate[K comparable] struct {
	from, to K
	weight   float64
	seq      int
}

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph
// by growing outwards from a root vertex using a priority queue of
// candidate edges keyed by weight. The root defaults to the first node.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or directed.
//   - ErrRootNotFound : WithRoot names a node that does not exist.
//   - ErrDisconnected : |V| == 0, or the tree stops short of |V|-1 edges.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and queue its incident edges.
//  3. While the queue is not empty and the tree has < |V|-1 edges:
//     a. Pop the smallest-weight edge (u→v).
//     b. If v is already visited, skip it (it would close a cycle).
//     c. Otherwise accept it, mark v, and queue v's edges to unvisited neighbors.
//  4. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[K comparable](g core.Reader[K], opts ...Option[K]) (*Result[K], error) {
	// 1. Validate.
	if err := validate(g); err != nil {
		return nil, err
	}
	cfg := MSTOptions[K]{Method: MethodPrim}
	for _, opt := range opts {
		opt(&cfg)
	}
	root := cfg.Root
	if cfg.HasRoot {
		if !g.HasNode(root) {
			return nil, fmt.Errorf("%w: %v", ErrRootNotFound, root)
		}
	} else {
		for v := range g.Nodes() {
			root = v
			break
		}
	}

	n := g.NodeCount()
	res := &Result[K]{Edges: make([]core.Edge[K], 0, n-1)}
	visited := make(map[K]bool, n)
	pq := pqueue.New[candidate[K]]()
	seq := 0
	push := func(u K) {
		for v, w := range g.Neighbors(u) {
			if !visited[v] {
				seq++
				pq.Enqueue(candidate[K]{from: u, to: v, weight: w, seq: seq}, w)
			}
		}
	}

	// 2. Seed with the root.
	visited[root] = true
	push(root)

	// 3. Grow the tree.
	for !pq.IsEmpty() && len(res.Edges) < n-1 {
		c, _, _ := pq.Dequeue()
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		res.Edges = append(res.Edges, core.Edge[K]{From: c.from, To: c.to, Weight: c.weight})
		res.TotalWeight += c.weight
		push(c.to)
	}

	// 4. Connectivity check.
	if len(res.Edges) < n-1 {
		return nil, ErrDisconnected
	}

	return res, nil
}
