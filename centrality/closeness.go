// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphengine/bfs"
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/shortestpath"
)

// Closeness scores each node by how near it is to the nodes it reaches.
//
// For node v with r other nodes reachable at total distance Σd:
//
//	raw:        1 / Σd
//	Normalized: (r / Σd) · (r / (n-1))   (Wasserman-Faust)
//
// Nodes that reach nothing score 0. ModeIn measures distances towards v.
// Distances are hop counts (BFS) unless Weighted selects Dijkstra.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
func Closeness[K comparable](g core.Reader[K], opts ClosenessOptions) (Scores[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if opts.Mode == ModeTotal {
		return nil, fmt.Errorf("%w: closeness supports ModeOut or ModeIn", ErrBadOption)
	}
	src := g
	if opts.Mode == ModeIn && g.Directed() {
		src = reversed[K]{Reader: g}
	}

	n := g.NodeCount()
	out := make(Scores[K], n)
	for v := range g.Nodes() {
		reached, total, err := distanceSum(src, v, opts.Weighted)
		if err != nil {
			return nil, fmt.Errorf("centrality: closeness of %v: %w", v, err)
		}
		if reached == 0 || total <= 0 {
			out[v] = 0
			continue
		}
		if !opts.Normalized {
			out[v] = 1 / total
			continue
		}
		r := float64(reached)
		out[v] = (r / total) * (r / float64(n-1))
	}

	return out, nil
}

// distanceSum returns the number of other nodes reachable from v and the sum
// of their distances.
func distanceSum[K comparable](g core.Reader[K], v K, weighted bool) (int, float64, error) {
	reached, total := 0, 0.0
	if !weighted {
		dist, err := bfs.Distances(g, v)
		if err != nil {
			return 0, 0, err
		}
		for id := range g.Nodes() {
			if d, ok := dist[id]; ok && id != v {
				reached++
				total += float64(d)
			}
		}

		return reached, total, nil
	}

	res, err := shortestpath.Dijkstra(g, v)
	if err != nil {
		return 0, 0, err
	}
	for id := range g.Nodes() {
		if d := res.Dist[id]; id != v && !math.IsInf(d, 1) {
			reached++
			total += d
		}
	}

	return reached, total, nil
}
