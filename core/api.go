// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Reader capability set plus thin read-only getters on Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import "iter"

// Reader is the minimal read surface every algorithm in the engine consumes.
// It is implemented by *Graph, *csr.CSRGraph and *csr.Adapter, so algorithms
// written against Reader produce identical results on either representation.
//
// Contract:
//   - Nodes yields every node exactly once, in a stable order.
//   - Neighbors yields (neighbor, weight) pairs in a stable order; for directed
//     graphs these are out-neighbors, for undirected graphs every incident edge
//     (a self-loop once). Parallel edges yield one pair each.
//   - InNeighbors yields in-neighbors for directed graphs and equals Neighbors
//     for undirected graphs.
//   - Unknown IDs yield empty sequences; OutDegree and InDegree report
//     ErrNodeNotFound for them.
type Reader[K comparable] interface {
	Directed() bool
	NodeCount() int
	EdgeCount() int
	HasNode(id K) bool
	HasEdge(from, to K) bool
	Nodes() iter.Seq[K]
	Neighbors(id K) iter.Seq2[K, float64]
	InNeighbors(id K) iter.Seq2[K, float64]
	OutDegree(id K) (int, error)
	InDegree(id K) (int, error)
}

// compile-time check
var _ Reader[string] = (*Graph[string])(nil)

// Stats is an O(V+E) snapshot of graph shape, used for diagnostics and by
// the optimization policy.
type Stats struct {
	Directed           bool
	AllowSelfLoops     bool
	AllowParallelEdges bool
	NodeCount          int
	EdgeCount          int
	TotalEdgeCount     int
	SelfLoopCount      int
	IsolatedNodeCount  int
	MaxDegree          int
	Density            float64
}

// Config returns a copy of the construction-time configuration.
// Complexity: O(1).
func (g *Graph[K]) Config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cfg
}

// Directed reports whether edges are directed.
func (g *Graph[K]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cfg.Directed
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of logical edges: an undirected edge counts
// once. Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalEdgeCount returns the number of stored directed adjacency records.
// A directed edge counts once; an undirected non-loop edge counts twice
// (one record per direction); an undirected self-loop counts once.
// Complexity: O(E).
func (g *Graph[K]) TotalEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.cfg.Directed {
		return len(g.edges)
	}
	total := 0
	for _, r := range g.edges {
		if r.from == r.to {
			total++
		} else {
			total += 2
		}
	}

	return total
}

// Stats returns a shape summary of the graph.
//
// Density is E/(V(V-1)) for directed graphs and 2E/(V(V-1)) for undirected
// ones, ignoring self-loops in the denominator; it is 0 when V < 2.
// Complexity: O(V+E). Holds the read lock for the whole scan.
func (g *Graph[K]) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Directed:           g.cfg.Directed,
		AllowSelfLoops:     g.cfg.AllowSelfLoops,
		AllowParallelEdges: g.cfg.AllowParallelEdges,
		NodeCount:          len(g.order),
		EdgeCount:          len(g.edges),
	}
	for _, r := range g.edges {
		if r.from == r.to {
			s.SelfLoopCount++
			s.TotalEdgeCount++
		} else if g.cfg.Directed {
			s.TotalEdgeCount++
		} else {
			s.TotalEdgeCount += 2
		}
	}
	for _, id := range g.order {
		n := g.nodes[id]
		d := len(n.out) + len(n.in)
		if d == 0 {
			s.IsolatedNodeCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if v := float64(s.NodeCount); v >= 2 {
		pairs := v * (v - 1)
		logical := float64(s.EdgeCount - s.SelfLoopCount)
		if g.cfg.Directed {
			s.Density = logical / pairs
		} else {
			s.Density = 2 * logical / pairs
		}
	}

	return s
}
