// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: lazy neighbor sequences and checked neighbor queries.
// Determinism:
//   - Neighbors are yielded in edge insertion order.

package core

import (
	"fmt"
	"iter"
)

// arc is a snapshot of one adjacency entry.
type arc[K comparable] struct {
	to     K
	weight float64
}

// snapshot copies the adjacency of id under the read lock. in selects the
// incoming list on directed graphs.
func (g *Graph[K]) snapshot(id K, in bool) []arc[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	list := n.out
	if in && g.cfg.Directed {
		list = n.in
	}
	out := make([]arc[K], len(list))
	for i, r := range list {
		switch {
		case !g.cfg.Directed:
			out[i] = arc[K]{to: r.other(id), weight: r.weight}
		case in:
			out[i] = arc[K]{to: r.from, weight: r.weight}
		default:
			out[i] = arc[K]{to: r.to, weight: r.weight}
		}
	}

	return out
}

func seqOf[K comparable](take func() []arc[K]) iter.Seq2[K, float64] {
	return func(yield func(K, float64) bool) {
		for _, a := range take() {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

// Neighbors returns a lazy, finite, restartable sequence of (neighbor, weight)
// pairs: out-neighbors for directed graphs, every incident edge for
// undirected graphs (a self-loop once). Each iteration takes a fresh snapshot.
// An unknown id yields nothing; use NeighborIDs for a checked query.
func (g *Graph[K]) Neighbors(id K) iter.Seq2[K, float64] {
	return seqOf(func() []arc[K] { return g.snapshot(id, false) })
}

// OutNeighbors is an alias of Neighbors that reads better on directed graphs.
func (g *Graph[K]) OutNeighbors(id K) iter.Seq2[K, float64] {
	return g.Neighbors(id)
}

// InNeighbors returns (predecessor, weight) pairs for directed graphs and
// behaves like Neighbors for undirected graphs.
func (g *Graph[K]) InNeighbors(id K) iter.Seq2[K, float64] {
	return seqOf(func() []arc[K] { return g.snapshot(id, true) })
}

// NeighborIDs returns the neighbor IDs of id in insertion order, one entry
// per edge (parallel edges repeat the neighbor).
// Errors: ErrNodeNotFound.
func (g *Graph[K]) NeighborIDs(id K) ([]K, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("NeighborIDs(%v): %w", id, ErrNodeNotFound)
	}
	arcs := g.snapshot(id, false)
	out := make([]K, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}

	return out, nil
}

// IncidentEdges returns value copies of the edges Neighbors(id) walks, in
// the same order.
// Errors: ErrNodeNotFound.
func (g *Graph[K]) IncidentEdges(id K) ([]Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("IncidentEdges(%v): %w", id, ErrNodeNotFound)
	}
	out := make([]Edge[K], len(n.out))
	for i, r := range n.out {
		out[i] = r.value()
	}

	return out, nil
}
