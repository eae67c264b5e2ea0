// SPDX-License-Identifier: MIT

// Package components partitions graphs into connected pieces.
//
//   - Connected / Weakly: union-find over every edge, ignoring direction.
//   - Strongly: Tarjan's algorithm on directed graphs.
//   - Condensation: the DAG of strongly connected components.
//
// All functions accept any core.Reader, including CSR snapshots, and return
// a Result that lists components and maps each node to its component index.
// Members of a component always keep the graph's node order.
package components
