// SPDX-License-Identifier: MIT
//
// File: kcore.go
// Role: k-core decomposition by bucket peeling.
// Determinism:
//   - Core numbers are unique; peeling order does not affect them.

package clustering

import (
	"github.com/katalvlaran/graphengine/core"
)

// CoreResult holds the core number of every node.
type CoreResult[K comparable] struct {
	// Numbers maps each node to the largest k such that it belongs to the k-core.
	Numbers map[K]int

	// Degeneracy is the largest core number (0 for an edgeless graph).
	Degeneracy int

	order []K
}

// Core returns the members of the k-core (core number >= k) in node order.
func (r *CoreResult[K]) Core(k int) []K {
	var out []K
	for _, id := range r.order {
		if r.Numbers[id] >= k {
			out = append(out, id)
		}
	}

	return out
}

// KCore computes core numbers with the Batagelj-Zaversnik peeling: nodes are
// bucketed by degree and repeatedly the node of smallest remaining degree is
// removed, lowering its neighbors' degrees. Degree counts distinct
// neighbors of the undirected projection; self-loops are ignored.
// Complexity: O(V + E).
func KCore[K comparable](g core.Reader[K]) (*CoreResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSimple(g)
	n := s.n()

	// 1) Degrees and the largest one.
	deg := make([]int, n)
	maxDeg := 0
	for i := range deg {
		deg[i] = len(s.nbr[i])
		maxDeg = max(maxDeg, deg[i])
	}

	// 2) Counting sort by degree: vert is the peeling order, pos its inverse,
	// bin[d] the first slot of degree d.
	bin := make([]int, maxDeg+1)
	for _, d := range deg {
		bin[d]++
	}
	start := 0
	for d := range bin {
		bin[d], start = start, start+bin[d]
	}
	vert := make([]int, n)
	pos := make([]int, n)
	for i, d := range deg {
		pos[i] = bin[d]
		vert[pos[i]] = i
		bin[d]++
	}
	for d := maxDeg; d > 0; d-- {
		bin[d] = bin[d-1]
	}
	bin[0] = 0

	// 3) Peel. Moving a neighbor one bucket down swaps it with the first
	// node of its bucket.
	for idx := 0; idx < n; idx++ {
		v := vert[idx]
		for _, u := range s.nbr[v] {
			if deg[u] <= deg[v] {
				continue
			}
			du, pu := deg[u], pos[u]
			pw := bin[du]
			w := vert[pw]
			if u != w {
				pos[u], pos[w] = pw, pu
				vert[pu], vert[pw] = w, u
			}
			bin[du]++
			deg[u]--
		}
	}

	res := &CoreResult[K]{Numbers: make(map[K]int, n), order: s.ids}
	for i, id := range s.ids {
		res.Numbers[id] = deg[i]
		res.Degeneracy = max(res.Degeneracy, deg[i])
	}

	return res, nil
}
