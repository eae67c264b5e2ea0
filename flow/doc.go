// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow algorithms over any core.Reader.
// Edge weights are capacities; the result reports the flow value, the net
// flow per arc, a minimum cut and the residual network.
//
// The algorithms offered are:
//
//   - Ford-Fulkerson
//     Method: depth-first search for any augmenting path.
//     Time:   O(E · F), F being the flow value (integral networks).
//
//   - Edmonds-Karp
//     Method: breadth-first search for shortest augmenting paths.
//     Time:   O(V · E²), independent of capacities.
//
//   - Dinic
//     Method: level graph + blocking flows.
//     Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
// All three use O(V + E) memory and return identical flow values and cuts.
//
// # Graph Support
//
//   - Directed graphs: each edge u→v is an arc of its weight.
//   - Undirected graphs: each edge carries its capacity in either direction.
//   - Parallel edges are summed; self-loops are ignored.
//   - Capacities at or below Options.Epsilon count as zero.
//
// # API
//
//	opts := flow.DefaultOptions() // Epsilon 1e-9, zerolog.Nop()
//	res, err := flow.EdmondsKarp(g, "s", "t", opts)
//	res.MaxFlow            // total value
//	res.FlowOn("a", "b")   // net flow on a→b
//	res.MinCut             // source side of a minimum cut
//	res.CutEdges           // saturated arcs leaving it, summing to MaxFlow
//	res.Residual           // *core.Graph of remaining capacities
//
// # Errors
//
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSourceIsSink   - source and sink coincide.
//	ErrBadOption      - negative Epsilon or LevelRebuildInterval.
//	EdgeError         - a negative capacity (beyond Epsilon) was found.
package flow
