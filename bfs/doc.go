// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over any core.Reader (a mutable
// core.Graph, a csr.CSRGraph or a csr.Adapter), returning unweighted
// shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the Reader yields them (edge insertion
//	order for core.Graph, captured order for CSR), so the visit sequence is
//	reproducible and identical across representations.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[string](g, "start",
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//	path, err := res.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrStartNotFound    if the start node does not exist (wraps core.ErrNodeNotFound).
//   - ErrOptionViolation  if an Option is invalid (wraps core.ErrInvalidParameter).
//   - ErrNoPath           from PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
