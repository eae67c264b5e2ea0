// SPDX-License-Identifier: MIT

// Package unionfind implements a generic disjoint-set forest with iterative
// path compression and union by rank. Connected components and Kruskal's
// MST both build on it.
package unionfind

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// ErrElementNotFound is returned by Find, Union, Connected and SetSize for
// an element that was never added. It wraps core.ErrNodeNotFound.
var ErrElementNotFound = fmt.Errorf("unionfind: %w", core.ErrNodeNotFound)

// UnionFind tracks a partition of elements of type K into disjoint sets.
// Elements are remembered in insertion order so Sets is deterministic.
type UnionFind[K comparable] struct {
	parent map[K]K
	rank   map[K]int
	size   map[K]int
	order  []K
	count  int
}

// New creates a structure holding each element as its own singleton set.
// Duplicates are ignored.
func New[K comparable](elements ...K) *UnionFind[K] {
	uf := &UnionFind[K]{
		parent: make(map[K]K, len(elements)),
		rank:   make(map[K]int, len(elements)),
		size:   make(map[K]int, len(elements)),
	}
	for _, e := range elements {
		uf.Add(e)
	}

	return uf
}

// Add inserts x as a new singleton set. It reports false if x already exists.
func (uf *UnionFind[K]) Add(x K) bool {
	if _, ok := uf.parent[x]; ok {
		return false
	}
	uf.parent[x] = x
	uf.size[x] = 1
	uf.order = append(uf.order, x)
	uf.count++

	return true
}

// Has reports whether x was added.
func (uf *UnionFind[K]) Has(x K) bool {
	_, ok := uf.parent[x]

	return ok
}

// Find returns the representative of x's set.
//
// Steps:
//  1. Walk parent links to the root.
//  2. Walk again from x, relinking every visited element directly to the root.
func (uf *UnionFind[K]) Find(x K) (K, error) {
	if _, ok := uf.parent[x]; !ok {
		var zero K
		return zero, fmt.Errorf("Find(%v): %w", x, ErrElementNotFound)
	}

	return uf.find(x), nil
}

// find assumes x exists.
func (uf *UnionFind[K]) find(x K) K {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for x != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of a and b, attaching the lower-rank root under the
// higher-rank one and bumping rank on ties. It reports whether a merge
// happened; the set count only drops on a real merge.
func (uf *UnionFind[K]) Union(a, b K) (bool, error) {
	if _, ok := uf.parent[a]; !ok {
		return false, fmt.Errorf("Union(%v, %v): %w", a, b, ErrElementNotFound)
	}
	if _, ok := uf.parent[b]; !ok {
		return false, fmt.Errorf("Union(%v, %v): %w", a, b, ErrElementNotFound)
	}
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false, nil
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	delete(uf.size, rb)
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	delete(uf.rank, rb)
	uf.count--

	return true, nil
}

// Connected reports whether a and b share a set.
func (uf *UnionFind[K]) Connected(a, b K) (bool, error) {
	ra, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Count returns the number of disjoint sets.
func (uf *UnionFind[K]) Count() int { return uf.count }

// Len returns the number of elements.
func (uf *UnionFind[K]) Len() int { return len(uf.order) }

// SetSize returns the number of elements in x's set.
func (uf *UnionFind[K]) SetSize(x K) (int, error) {
	r, err := uf.Find(x)
	if err != nil {
		return 0, err
	}

	return uf.size[r], nil
}

// Sets returns every set as a slice. Sets are ordered by their first element
// in insertion order, and members keep insertion order.
func (uf *UnionFind[K]) Sets() [][]K {
	index := make(map[K]int, uf.count)
	out := make([][]K, 0, uf.count)
	for _, x := range uf.order {
		r := uf.find(x)
		i, ok := index[r]
		if !ok {
			i = len(out)
			index[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}
