// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and edge-level queries.
// Determinism:
//   - Generated IDs are "e1", "e2", … in call order; IDs already taken by
//     WithEdgeID are skipped.

package core

import (
	"fmt"
	"slices"
	"strconv"
)

// AddEdge inserts an edge from → to, creating missing endpoints implicitly.
//
// Implementation:
//   - Stage 1: Apply EdgeOptions (weight defaults to DefaultEdgeWeight).
//   - Stage 2: Enforce the self-loop and parallel-edge policy under OnViolation.
//   - Stage 3: Create endpoints, store one record, link it into adjacency.
//
// Returns the ID of the stored edge. Under ViolationIgnore a rejected edge
// returns "", nil; under ViolationMerge a parallel edge returns the ID of the
// existing edge after updating its weight and data.
//
// Errors: ErrLoopNotAllowed, ErrMultiEdgeNotAllowed (ViolationError only), or
// an error when WithEdgeID names an ID already in use.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, opts ...EdgeOption) (string, error) {
	spec := edgeSpec{weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&spec)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.cfg.AllowSelfLoops {
		if g.cfg.OnViolation == ViolationError {
			return "", fmt.Errorf("AddEdge(%v→%v): %w", from, to, ErrLoopNotAllowed)
		}

		return "", nil
	}
	if !g.cfg.AllowParallelEdges && g.multiplicity[from][to] > 0 {
		switch g.cfg.OnViolation {
		case ViolationIgnore:
			return "", nil
		case ViolationMerge:
			r := g.findRecord(from, to)
			r.weight = spec.weight
			if spec.data != nil {
				r.data = spec.data
			}

			return r.id, nil
		default:
			return "", fmt.Errorf("AddEdge(%v→%v): %w", from, to, ErrMultiEdgeNotAllowed)
		}
	}

	id := spec.id
	if id == "" {
		id = g.generateEdgeID()
	} else if _, taken := g.edgeByID[id]; taken {
		return "", fmt.Errorf("AddEdge(%v→%v): edge ID %q already in use", from, to, id)
	}

	g.link(&edgeRecord[K]{id: id, from: from, to: to, weight: spec.weight, data: spec.data})

	return id, nil
}

// link stores r, creates its endpoints and wires it into adjacency and the
// indexes. Caller holds the write lock and has already enforced policy.
func (g *Graph[K]) link(r *edgeRecord[K]) {
	src := g.ensureNode(r.from)
	dst := g.ensureNode(r.to)
	g.edges = append(g.edges, r)
	g.edgeByID[r.id] = r

	src.out = append(src.out, r)
	g.bump(r.from, r.to, 1)
	switch {
	case g.cfg.Directed:
		dst.in = append(dst.in, r)
	case r.from != r.to:
		dst.out = append(dst.out, r)
		g.bump(r.to, r.from, 1)
	}
}

// generateEdgeID returns the next free "eN" identifier. Caller holds the write lock.
func (g *Graph[K]) generateEdgeID() string {
	for {
		g.nextEdgeID++
		id := "e" + strconv.FormatUint(g.nextEdgeID, 10)
		if _, taken := g.edgeByID[id]; !taken {
			return id
		}
	}
}

// bump adjusts the pair multiplicity index. Caller holds the write lock.
func (g *Graph[K]) bump(from, to K, delta int) {
	row := g.multiplicity[from]
	if row == nil {
		row = make(map[K]int)
		g.multiplicity[from] = row
	}
	row[to] += delta
	if row[to] <= 0 {
		delete(row, to)
		if len(row) == 0 {
			delete(g.multiplicity, from)
		}
	}
}

// findRecord returns the first-inserted record joining from → to (either
// orientation for undirected graphs), or nil. Caller holds a lock.
func (g *Graph[K]) findRecord(from, to K) *edgeRecord[K] {
	n, ok := g.nodes[from]
	if !ok {
		return nil
	}
	for _, r := range n.out {
		if g.cfg.Directed {
			if r.to == to {
				return r
			}
		} else if r.other(from) == to {
			return r
		}
	}

	return nil
}

// unlinkEdge removes r from adjacency and the indexes, leaving g.edges
// untouched. Caller holds the write lock.
func (g *Graph[K]) unlinkEdge(r *edgeRecord[K]) {
	drop := func(list []*edgeRecord[K]) []*edgeRecord[K] {
		return slices.DeleteFunc(list, func(x *edgeRecord[K]) bool { return x == r })
	}
	if src, ok := g.nodes[r.from]; ok {
		src.out = drop(src.out)
	}
	if dst, ok := g.nodes[r.to]; ok {
		if g.cfg.Directed {
			dst.in = drop(dst.in)
		} else if r.from != r.to {
			dst.out = drop(dst.out)
		}
	}
	g.bump(r.from, r.to, -1)
	if !g.cfg.Directed && r.from != r.to {
		g.bump(r.to, r.from, -1)
	}
	delete(g.edgeByID, r.id)
}

// RemoveEdge deletes the edge with the given ID.
// Errors: ErrEdgeNotFound.
// Complexity: O(deg(from) + deg(to) + E).
func (g *Graph[K]) RemoveEdge(edgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.edgeByID[edgeID]
	if !ok {
		return fmt.Errorf("RemoveEdge(%q): %w", edgeID, ErrEdgeNotFound)
	}
	g.unlinkEdge(r)
	g.edges = slices.DeleteFunc(g.edges, func(x *edgeRecord[K]) bool { return x == r })

	return nil
}

// HasEdge reports whether at least one edge joins from → to. For undirected
// graphs HasEdge(a, b) == HasEdge(b, a). Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.multiplicity[from][to] > 0
}

// GetEdge returns the first-inserted edge joining from → to.
// Errors: ErrNodeNotFound when an endpoint is missing, ErrEdgeNotFound otherwise.
func (g *Graph[K]) GetEdge(from, to K) (Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[from]; !ok {
		return Edge[K]{}, fmt.Errorf("GetEdge(%v→%v): %w", from, to, ErrNodeNotFound)
	}
	if _, ok := g.nodes[to]; !ok {
		return Edge[K]{}, fmt.Errorf("GetEdge(%v→%v): %w", from, to, ErrNodeNotFound)
	}
	r := g.findRecord(from, to)
	if r == nil {
		return Edge[K]{}, fmt.Errorf("GetEdge(%v→%v): %w", from, to, ErrEdgeNotFound)
	}

	return r.value(), nil
}

// EdgeByID returns the edge with the given ID.
// Errors: ErrEdgeNotFound.
func (g *Graph[K]) EdgeByID(edgeID string) (Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r, ok := g.edgeByID[edgeID]
	if !ok {
		return Edge[K]{}, fmt.Errorf("EdgeByID(%q): %w", edgeID, ErrEdgeNotFound)
	}

	return r.value(), nil
}

// Edges returns value copies of every edge in insertion order.
// Complexity: O(E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K], len(g.edges))
	for i, r := range g.edges {
		out[i] = r.value()
	}

	return out
}
