// SPDX-License-Identifier: MIT

// Package shortestpath implements the shortest-path family over any
// core.Reader:
//
//   - Dijkstra: single source, non-negative weights, priority-queue driven.
//     Options: WithTarget, WithMaxDistance, WithInfEdgeThreshold,
//     WithNegativeWeightCheck.
//   - BellmanFord: single source, negative weights allowed, reports
//     HasNegativeCycle.
//   - FloydWarshall: all pairs over a dense gonum matrix, negative cycle when
//     a diagonal entry turns negative.
//   - AStar: point to point guided by a caller-supplied admissible heuristic.
//
// Single-source results expose Distance, PathTo and Entry, the latter
// returning the {Distance, Predecessor, Path} record of a node. Unreachable
// nodes have distance +Inf.
//
// Complexity:
//
//   - Dijkstra:      O((V + E) log V) typical
//   - BellmanFord:   O(V · E)
//   - FloydWarshall: O(V^3) time, O(V^2) space
//   - AStar:         depends on the heuristic; Dijkstra's bound in the worst case
package shortestpath
