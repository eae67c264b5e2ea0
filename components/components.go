// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: connected and weakly connected components via union-find.
// Determinism:
//   - Components are ordered by their earliest node in graph order and
//     members keep graph order.

package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/unionfind"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Result is a partition of the graph's nodes into components.
type Result[K comparable] struct {
	// Components lists every component's members.
	Components [][]K

	// Membership maps each node to its index in Components.
	Membership map[K]int
}

// Count returns the number of components.
func (r *Result[K]) Count() int { return len(r.Components) }

// ComponentOf returns the index of id's component.
// Errors: core.ErrNodeNotFound.
func (r *Result[K]) ComponentOf(id K) (int, error) {
	c, ok := r.Membership[id]
	if !ok {
		return -1, fmt.Errorf("components: ComponentOf(%v): %w", id, core.ErrNodeNotFound)
	}

	return c, nil
}

// Largest returns the members of the biggest component (the earliest one on
// ties), or nil for an empty graph.
func (r *Result[K]) Largest() []K {
	var best []K
	for _, c := range r.Components {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

func newResult[K comparable](sets [][]K) *Result[K] {
	res := &Result[K]{Components: sets, Membership: make(map[K]int)}
	for i, set := range sets {
		for _, id := range set {
			res.Membership[id] = i
		}
	}

	return res
}

// Connected partitions g into connected components using union-find: every
// node starts as a singleton and each edge unions its endpoints. Directed
// edges are treated as undirected, so on a directed graph this yields the
// weakly connected components.
// Complexity: O((V + E)·α(V)).
func Connected[K comparable](g core.Reader[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	uf := unionfind.New[K]()
	for v := range g.Nodes() {
		uf.Add(v)
	}
	for v := range g.Nodes() {
		for nb := range g.Neighbors(v) {
			if _, err := uf.Union(v, nb); err != nil {
				return nil, fmt.Errorf("components: %w", err)
			}
		}
	}

	return newResult(uf.Sets()), nil
}

// Weakly is Connected under the name used for directed graphs.
func Weakly[K comparable](g core.Reader[K]) (*Result[K], error) {
	return Connected(g)
}

// IsConnected reports whether g has exactly one (weakly) connected
// component. An empty graph is not connected.
func IsConnected[K comparable](g core.Reader[K]) bool {
	res, err := Connected(g)

	return err == nil && res.Count() == 1
}
