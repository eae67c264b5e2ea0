// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: node lifecycle and node-level queries.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// AddNode inserts id if absent. Re-adding an existing node is a no-op unless
// WithNodeData is supplied, in which case the stored payload is replaced.
// It never fails.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(id K, opts ...NodeOption) {
	var spec nodeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.ensureNode(id)
	if spec.hasData {
		n.data = spec.data
	}
}

// ensureNode returns the record for id, creating it when missing.
// Caller must hold the write lock.
func (g *Graph[K]) ensureNode(id K) *nodeRecord[K] {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &nodeRecord[K]{id: id}
	g.nodes[id] = n
	g.order = append(g.order, id)

	return n
}

// HasNode reports whether id exists. Complexity: O(1).
func (g *Graph[K]) HasNode(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// NodeData returns the payload attached to id.
// Errors: ErrNodeNotFound.
func (g *Graph[K]) NodeData(id K) (any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("NodeData(%v): %w", id, ErrNodeNotFound)
	}

	return n.data, nil
}

// RemoveNode deletes id and every incident edge.
// Errors: ErrNodeNotFound.
// Complexity: O(V + E) because the insertion-order slices are compacted.
func (g *Graph[K]) RemoveNode(id K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("RemoveNode(%v): %w", id, ErrNodeNotFound)
	}

	// 1) Collect every incident record exactly once (loops appear once in out).
	doomed := make(map[*edgeRecord[K]]struct{}, len(n.out)+len(n.in))
	for _, r := range n.out {
		doomed[r] = struct{}{}
	}
	for _, r := range n.in {
		doomed[r] = struct{}{}
	}

	// 2) Unlink from the opposite endpoints and the indexes.
	for r := range doomed {
		g.unlinkEdge(r)
	}

	// 3) Drop the node itself.
	delete(g.nodes, id)
	delete(g.multiplicity, id)
	g.order = slices.DeleteFunc(g.order, func(x K) bool { return x == id })
	g.edges = slices.DeleteFunc(g.edges, func(r *edgeRecord[K]) bool {
		_, gone := doomed[r]
		return gone
	})

	return nil
}

// Nodes returns a restartable sequence over node IDs in insertion order.
// The ID list is copied under the read lock when iteration starts.
func (g *Graph[K]) Nodes() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, id := range g.NodeIDs() {
			if !yield(id) {
				return
			}
		}
	}
}

// NodeIDs returns a copy of all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph[K]) NodeIDs() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Degree returns the number of incident edges of id. For directed graphs it
// is in-degree plus out-degree; for undirected graphs a self-loop counts twice.
// Errors: ErrNodeNotFound.
func (g *Graph[K]) Degree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", id, ErrNodeNotFound)
	}
	if g.cfg.Directed {
		return len(n.out) + len(n.in), nil
	}
	d := 0
	for _, r := range n.out {
		if r.from == r.to {
			d += 2
		} else {
			d++
		}
	}

	return d, nil
}

// OutDegree returns the number of neighbor entries Neighbors(id) yields.
// An undirected self-loop is one entry here and two in Degree.
// Errors: ErrNodeNotFound.
func (g *Graph[K]) OutDegree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("OutDegree(%v): %w", id, ErrNodeNotFound)
	}

	return len(n.out), nil
}

// InDegree returns the number of entries InNeighbors(id) yields. For
// undirected graphs it equals OutDegree.
// Errors: ErrNodeNotFound.
func (g *Graph[K]) InDegree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("InDegree(%v): %w", id, ErrNodeNotFound)
	}
	if g.cfg.Directed {
		return len(n.in), nil
	}

	return len(n.out), nil
}

// Clear removes every node and edge but keeps the configuration. Generated
// edge IDs restart from "e1".
func (g *Graph[K]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextEdgeID = 0
	g.order = nil
	g.nodes = make(map[K]*nodeRecord[K])
	g.edges = nil
	g.edgeByID = make(map[string]*edgeRecord[K])
	g.multiplicity = make(map[K]map[K]int)
}
