// SPDX-License-Identifier: MIT

// Package centrality scores how important each node of a graph is.
//
// Path-based measures run one single-source search per node (BFS for hop
// counts, Dijkstra when Weighted):
//
//   - Degree:          in, out or total degree, optionally divided by n-1.
//   - Closeness:       inverse total distance with Wasserman-Faust scaling.
//   - Betweenness:     Brandes' algorithm, with optional endpoints.
//   - EdgeBetweenness: the same accumulation keyed by edge.
//
// Spectral measures share one fixed-point loop: start uniform, update from
// the neighbors' scores, stop when the largest per-node change falls below
// Tolerance or MaxIterations is reached:
//
//   - Eigenvector, Katz, PageRank, PersonalizedPageRank, HITS.
//
// Running out of iterations is not an error. PageRankResult reports
// Converged; the other iterative results expose only Iterations.
//
// Every function accepts any core.Reader and returns a map keyed by node ID.
package centrality
