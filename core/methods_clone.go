// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: deep copies and induced subgraphs.
// Determinism:
//   - Copies preserve node order, edge order and edge IDs.

package core

// CloneEmpty returns a graph with the same configuration and nodes (with
// their payloads) but no edges.
// Complexity: O(V).
func (g *Graph[K]) CloneEmpty() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph[K](WithConfig(g.cfg))
	for _, id := range g.order {
		c.ensureNode(id).data = g.nodes[id].data
	}

	return c
}

// Clone returns a deep structural copy: configuration, nodes, edges, IDs and
// the generated-ID counter. Payloads are copied by reference.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph[K](WithConfig(g.cfg))
	for _, id := range g.order {
		c.ensureNode(id).data = g.nodes[id].data
	}
	for _, r := range g.edges {
		c.linkCopy(r)
	}
	c.nextEdgeID = g.nextEdgeID

	return c
}

// InducedSubgraph returns a new graph holding the given nodes (in this
// graph's order) and every edge whose endpoints are both kept. Unknown IDs
// are ignored.
// Complexity: O(V + E).
func (g *Graph[K]) InducedSubgraph(keep []K) *Graph[K] {
	want := make(map[K]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph[K](WithConfig(g.cfg))
	for _, id := range g.order {
		if _, ok := want[id]; ok {
			c.ensureNode(id).data = g.nodes[id].data
		}
	}
	for _, r := range g.edges {
		_, okFrom := want[r.from]
		_, okTo := want[r.to]
		if okFrom && okTo {
			c.linkCopy(r)
		}
	}
	c.nextEdgeID = g.nextEdgeID

	return c
}

// linkCopy stores a private copy of r without re-checking policy; r already
// satisfied it in the source graph.
func (g *Graph[K]) linkCopy(r *edgeRecord[K]) {
	cp := *r
	g.link(&cp)
}
