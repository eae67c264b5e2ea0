// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: the symmetric weighted working graph every detector runs on.
// Determinism:
//   - Node i is the i-th node of the source Reader; neighbor lists are
//     sorted by index.

package community

import (
	"slices"

	"github.com/katalvlaran/graphengine/core"
)

// wlink is one symmetric adjacency entry.
type wlink struct {
	to int
	w  float64
}

// wgraph is an undirected weighted graph over dense indices. Parallel edges
// are merged, self-loop weight is kept apart in loop. A directed source is
// read as its undirected projection: every arc becomes one undirected edge.
type wgraph struct {
	adj    [][]wlink
	loop   []float64
	degree []float64 // Σ adjacent weight + 2·loop
	m      float64   // total edge weight, loops counted once
}

func (g *wgraph) n() int { return len(g.adj) }

// project builds the working graph of r. ids[i] is the node behind index i.
func project[K comparable](r core.Reader[K]) (*wgraph, []K, map[K]int) {
	n := r.NodeCount()
	ids := make([]K, 0, n)
	pos := make(map[K]int, n)
	for v := range r.Nodes() {
		pos[v] = len(ids)
		ids = append(ids, v)
	}

	acc := make([]map[int]float64, len(ids))
	for i := range acc {
		acc[i] = make(map[int]float64)
	}
	loop := make([]float64, len(ids))
	directed := r.Directed()
	for i, u := range ids {
		for v, w := range r.Neighbors(u) {
			j := pos[v]
			switch {
			case i == j:
				loop[i] += w
			case directed || i < j:
				acc[i][j] += w
				acc[j][i] += w
			}
		}
	}

	return build(acc, loop), ids, pos
}

// build turns accumulated adjacency maps into a wgraph.
func build(acc []map[int]float64, loop []float64) *wgraph {
	g := &wgraph{
		adj:    make([][]wlink, len(acc)),
		loop:   loop,
		degree: make([]float64, len(acc)),
	}
	for i, nbrs := range acc {
		keys := make([]int, 0, len(nbrs))
		for j := range nbrs {
			keys = append(keys, j)
		}
		slices.Sort(keys)
		for _, j := range keys {
			w := nbrs[j]
			g.adj[i] = append(g.adj[i], wlink{to: j, w: w})
			g.degree[i] += w
			if i < j {
				g.m += w
			}
		}
		g.degree[i] += 2 * loop[i]
		g.m += loop[i]
	}

	return g
}

// aggregate contracts g by membership (labels 0..k-1): each community
// becomes a node, inter-community weights are summed and internal weight
// becomes a self-loop.
func (g *wgraph) aggregate(member []int, k int) *wgraph {
	acc := make([]map[int]float64, k)
	for i := range acc {
		acc[i] = make(map[int]float64)
	}
	loop := make([]float64, k)
	for i, nbrs := range g.adj {
		ci := member[i]
		loop[ci] += g.loop[i]
		for _, l := range nbrs {
			cj := member[l.to]
			switch {
			case ci == cj && i < l.to:
				loop[ci] += l.w
			case ci != cj:
				acc[ci][cj] += l.w
			}
		}
	}

	return build(acc, loop)
}

// quality returns the modularity of membership at resolution gamma:
// Q = Σ_c [ L_c/m - gamma·(d_c/2m)² ], L_c being the internal weight and
// d_c the degree sum of community c. An edgeless graph scores 0.
func (g *wgraph) quality(member []int, gamma float64) float64 {
	if g.m == 0 {
		return 0
	}
	labels := slices.Clone(member)
	k := relabel(labels)
	internal := make([]float64, k)
	deg := make([]float64, k)
	for i, nbrs := range g.adj {
		c := labels[i]
		deg[c] += g.degree[i]
		internal[c] += g.loop[i]
		for _, l := range nbrs {
			if i < l.to && labels[l.to] == c {
				internal[c] += l.w
			}
		}
	}
	q := 0.0
	for c := range deg {
		frac := deg[c] / (2 * g.m)
		q += internal[c]/g.m - gamma*frac*frac
	}

	return q
}

// relabel renumbers labels 0..k-1 in order of first appearance and returns k.
func relabel(member []int) int {
	next := make(map[int]int)
	for i, c := range member {
		id, ok := next[c]
		if !ok {
			id = len(next)
			next[c] = id
		}
		member[i] = id
	}

	return len(next)
}
