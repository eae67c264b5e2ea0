// SPDX-License-Identifier: MIT

// Package matching 2-colors bipartite graphs and finds maximum matchings
// on them.
//
//	Bipartition      - BFS 2-coloring; the first node of every component is Left.
//	MaximumBipartite - augmenting-path matching; Result.VertexCover gives a
//	                   minimum vertex cover of the same size (König).
//
// Edge direction and weight are ignored. Graphs with an odd cycle, a
// self-loop included, yield ErrNotBipartite.
package matching
