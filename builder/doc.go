// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph topologies for tests,
// examples and benchmarks.
//
// A Constructor is a closure that adds vertices and edges to a
// *core.Graph[string]. BuildGraph creates the graph from core options,
// resolves builder options once and runs constructors in order; Apply does
// the same against an existing graph.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithIntegerWeight(1, 9)},
//		builder.PlantedPartition(4, 25, 0.3, 0.01),
//	)
//
// Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
// CellGrid (land cells of a value matrix, Conn4 or Conn8), RandomSparse
// (G(n,p)), PlantedPartition (stochastic block model) and RandomRegular
// (stub matching).
//
// Vertex IDs come from an IDFn (decimal by default; see WithExcelColumnIDs
// and WithPrefixIDs). Weights come from a WeightFn (constant 1 by default).
// Stochastic constructors require WithSeed or WithRand and return
// ErrNeedRandSource otherwise; a fixed seed yields an identical graph,
// edge IDs included.
package builder
