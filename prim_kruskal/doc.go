// SPDX-License-Identifier: MIT

// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected graph with Prim's algorithm or Kruskal's algorithm.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     spans V with minimum total weight. It backs network design, single-linkage
//     clustering (cut the heaviest tree edges) and many approximation schemes.
//
// Algorithms Provided
//
//   - Kruskal(g) (*Result[K], error)
//     Sort all edges by weight (stable, so equal weights keep node/neighbor
//     scan order, identical on core.Graph, csr snapshots and routed readers)
//     and accept each edge whose endpoints the unionfind package reports as
//     not yet connected. Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, opts...) (*Result[K], error)
//     Grow one tree from WithRoot (default: first node), keeping candidate
//     edges in a pqueue keyed by weight. Time O(E log E), space O(V + E).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Both agree on TotalWeight for any connected graph; the edge sets may
// differ when weights tie. Negative weights are allowed.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil or directed (wraps core.ErrInvalidTopology).
//   - ErrRootNotFound: Prim root absent (wraps core.ErrNodeNotFound).
//   - ErrDisconnected: |V| == 0 or no spanning tree exists (wraps core.ErrInvalidTopology).
//   - ErrUnknownMethod: Compute with an unknown method.
//
// Self-loops never enter a tree; among parallel edges the lightest wins.
package prim_kruskal
