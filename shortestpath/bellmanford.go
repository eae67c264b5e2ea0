// SPDX-License-Identifier: MIT

package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// arc is one directed relaxation candidate.
type arc[K comparable] struct {
	from, to K
	w        float64
}

// arcsOf lists every traversable arc of g in node then neighbor order.
// Undirected edges contribute both directions.
func arcsOf[K comparable](g core.Reader[K]) []arc[K] {
	var out []arc[K]
	for u := range g.Nodes() {
		for v, w := range g.Neighbors(u) {
			out = append(out, arc[K]{from: u, to: v, w: w})
		}
	}

	return out
}

// BellmanFord computes single-source shortest paths and tolerates negative
// weights. After |V|-1 relaxation rounds it runs one more; if any distance
// still improves, a negative cycle is reachable from source and
// Result.HasNegativeCycle is set. Rounds stop early once nothing changes.
//
// On undirected graphs every edge is traversable both ways, so a single
// negative edge already forms a negative cycle.
//
// Complexity: O(V · E).
func BellmanFord[K comparable](g core.Reader[K], source K) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	res := newResult(g, source)
	arcs := arcsOf(g)
	n := g.NodeCount()

	// 1) |V|-1 rounds.
	for round := 1; round < n; round++ {
		if !relaxAll(res, arcs) {
			break
		}
	}

	// 2) Detection round.
	res.HasNegativeCycle = relaxAll(res, arcs)

	return res, nil
}

// relaxAll performs one pass over arcs and reports whether any distance improved.
func relaxAll[K comparable](res *Result[K], arcs []arc[K]) bool {
	changed := false
	for _, a := range arcs {
		du := res.Dist[a.from]
		if du+a.w < res.Dist[a.to] {
			res.Dist[a.to] = du + a.w
			res.Prev[a.to] = a.from
			changed = true
		}
	}

	return changed
}
