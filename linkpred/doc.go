// SPDX-License-Identifier: MIT

// Package linkpred scores node pairs by how likely a missing link between
// them is, using only local neighborhood structure.
//
// Five scores are provided, each as a pair function and as a Method for
// Predict:
//
//	CommonNeighbors          |N(u) ∩ N(v)|
//	Jaccard                  |N(u) ∩ N(v)| / |N(u) ∪ N(v)|
//	AdamicAdar               Σ 1/ln|N(w)|, w ∈ N(u) ∩ N(v)
//	ResourceAllocation       Σ 1/|N(w)|,   w ∈ N(u) ∩ N(v)
//	PreferentialAttachment   |N(u)| · |N(v)|
//
// Neighborhoods are undirected and unweighted: on a directed graph an arc in
// either direction makes two nodes neighbors. Self-loops are ignored.
//
// Predict ranks every non-adjacent pair; ties keep node order so the output
// is reproducible.
package linkpred
