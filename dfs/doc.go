// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal, cycle detection and
// topological sort over any core.Reader.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, depth limiting,
//     neighbor filtering and forest traversal.
//   - DetectCycles / HasCycle: three-color marking (White, Gray, Black) with
//     back-edge recording and canonical deduplication.
//   - TopologicalSort: linear ordering of a DAG, ErrCycleDetected otherwise.
//
// Determinism:
//
//	Roots are taken in graph order and neighbors in Reader order, so every
//	output is reproducible and identical on core.Graph and CSR snapshots.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrStartNotFound   start node not in graph (wraps core.ErrNodeNotFound)
//   - ErrCycleDetected   cycle met by TopologicalSort (wraps core.ErrInvalidTopology)
//   - ErrUndirected      TopologicalSort on an undirected graph
//   - hook errors        propagated from OnVisit or OnExit
package dfs
