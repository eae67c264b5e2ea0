// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph
// using the unionfind package (path compression, union by rank).
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or directed.
//   - ErrDisconnected : |V| == 0, or fewer than |V|-1 edges could be accepted.
//
// Steps:
//  1. Validate the graph. A single vertex is a trivial MST.
//  2. Collect all edges through the Reader surface, skipping self-loops:
//     node order, then neighbor order, each edge oriented from the endpoint
//     that comes first in node order.
//  3. Sort edges by ascending weight with a stable sort, so equal weights keep
//     that scan order. Every representation of the same graph scans alike,
//     which makes the tree independent of the route.
//  4. Accept each edge whose endpoints are not yet connected, union them.
//  5. Stop at |V|-1 edges; fewer means the graph was disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[K comparable](g core.Reader[K]) (*Result[K], error) {
	// 1. Validate.
	if err := validate(g); err != nil {
		return nil, err
	}
	n := g.NodeCount()
	res := &Result[K]{Edges: []core.Edge[K]{}}
	if n == 1 {
		return res, nil
	}

	// 2. Collect edges without self-loops.
	edges := edgesOf(g)

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find over the node set.
	uf := unionfind.New[K]()
	for v := range g.Nodes() {
		uf.Add(v)
	}
	for _, e := range edges {
		merged, err := uf.Union(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == n-1 {
			break
		}
	}

	// 5. Connectivity check.
	if len(res.Edges) < n-1 {
		return nil, ErrDisconnected
	}

	return res, nil
}

// edgesOf lists the non-loop edges of an undirected graph once each, in
// node order then neighbor order, oriented low position -> high position.
// Parallel edges appear once per stored edge. Edges carry no IDs.
func edgesOf[K comparable](g core.Reader[K]) []core.Edge[K] {
	pos := make(map[K]int, g.NodeCount())
	for v := range g.Nodes() {
		pos[v] = len(pos)
	}
	var out []core.Edge[K]
	for u := range g.Nodes() {
		for v, w := range g.Neighbors(u) {
			if pos[u] < pos[v] {
				out = append(out, core.Edge[K]{From: u, To: v, Weight: w})
			}
		}
	}

	return out
}
