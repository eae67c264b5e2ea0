// SPDX-License-Identifier: MIT

// Package core provides the mutable, thread-safe in-memory Graph that every
// algorithm package of graphengine reads, together with the Reader interface
// that lets algorithms run unchanged over the compact CSR representation.
//
// The Graph G = (V,E) is generic over its node identifier type K, fixed once
// per graph instance:
//
//	g := core.NewGraph[string](core.WithDirected(true))
//	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)            directed or undirected edges (default undirected)
//	– WithSelfLoops()               permit from == to
//	– WithParallelEdges()           permit several edges per endpoint pair
//	– WithViolationPolicy(p)        ViolationError (default), ViolationIgnore, ViolationMerge
//
// Edge options: WithWeight (default 1), WithEdgeID (default "e1", "e2", …),
// WithEdgeData. Node options: WithNodeData.
//
// Ordering guarantees:
//
//   - Nodes() and NodeIDs() yield nodes in insertion order.
//   - Neighbors(id) yields neighbors in edge insertion order.
//   - Edges() yields edges in insertion order.
//
// These orders are what the csr package captures, so algorithms produce the
// same output on a Graph and on its CSR snapshot.
//
// Undirected edges are stored once and shared by both endpoints' adjacency;
// neighbor iteration synthesizes the reverse direction. EdgeCount counts
// logical edges, TotalEdgeCount counts directed adjacency records.
//
// Errors:
//
//	ErrNodeNotFound, ErrEdgeNotFound, ErrLoopNotAllowed,
//	ErrMultiEdgeNotAllowed, ErrInvalidTopology, ErrInvalidParameter.
//
// Concurrency: a single sync.RWMutex guards all state. Iterators copy the
// adjacency they need under the read lock and yield after releasing it, so
// a caller may mutate the graph from inside a loop body without deadlock,
// but an algorithm reading a graph that another goroutine mutates observes
// an unspecified mix of states.
package core
