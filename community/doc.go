// SPDX-License-Identifier: MIT

// Package community partitions a graph into densely connected groups and
// scores partitions by modularity.
//
// Modularity at resolution γ is
//
//	Q = (1/2m) Σ_ij [ A_ij - γ·k_i·k_j/2m ] δ(c_i, c_j)
//
// where m is the total edge weight and k_i the weighted degree of node i
// (a self-loop counts twice). Directed graphs are read as their undirected
// projection: every arc becomes one undirected edge.
//
// Detectors:
//
//	Louvain          - greedy local moving + coarsening.
//	Leiden           - Louvain with a refinement phase; communities are connected.
//	GirvanNewman     - divisive, removes the edge of highest betweenness.
//	LabelPropagation - weighted label spreading in graph order.
//
// All detectors are deterministic: nodes are visited in graph order and ties
// go to the first candidate. Community labels in a Result are 0..k-1 in
// order of each community's first node.
//
// Edge weights must be non-negative (ErrNegativeWeight).
package community
