// SPDX-License-Identifier: MIT

// Package policy decides which representation an algorithm should read.
//
// A Policy carries two thresholds: once a graph reaches CSRNodeThreshold
// nodes or CSREdgeThreshold edges, Route wraps it in a csr.Adapter;
// otherwise the graph is returned unchanged. Four presets (default,
// performance, balanced, memory) cover the common trade-offs, Force pins
// the choice, and Parse/Load read the same settings from YAML:
//
//	preset: performance
//	csr_edge_threshold: 0   # 0 disables the edge criterion
//	force: csr
//
// Routing is advice only. Both representations iterate nodes and neighbors
// in the same order, so an algorithm returns identical results either way.
package policy
