// SPDX-License-Identifier: MIT

// Package graphengine is an in-memory graph analysis engine: one generic
// graph model, a set of deterministic algorithms over it, and an
// optimization policy that decides which storage an algorithm reads.
//
// What is inside?
//
//	core/          Graph[K] (directed or undirected, weighted, optional
//	               self-loops and parallel edges) and the Reader interface
//	csr/           frozen compressed-sparse-row snapshots and the lazy Adapter
//	policy/        presets and YAML policies that route a graph to CSR or adjacency
//	bfs/, dfs/     traversals, topological sort, cycle detection
//	components/    connected and strongly connected components
//	shortestpath/  Dijkstra, Bellman-Ford, Floyd-Warshall, A*
//	centrality/    degree, closeness, betweenness, eigenvector, Katz, PageRank, HITS
//	prim_kruskal/  minimum spanning trees
//	community/     Louvain, Leiden, Girvan-Newman, label propagation, modularity
//	clustering/    k-core, spectral, hierarchical, clustering coefficient
//	flow/          Ford-Fulkerson, Edmonds-Karp, Dinic and min cut
//	matching/      augmenting-path bipartite matching and König vertex cover
//	linkpred/      neighborhood link-prediction scores
//	matrix/        adjacency and Laplacian matrices on gonum
//	gonumgraph/    bridge to gonum/graph for cross-checking
//	builder/       deterministic topology constructors and seeded random graphs
//	pqueue/, unionfind/  supporting data structures
//	cmd/graphkit/  command-line front end
//
// Every algorithm accepts a core.Reader, so a *core.Graph, a csr.CSRGraph
// and a csr.Adapter are interchangeable:
//
//	g := core.NewGraph[string]()
//	_, _ = g.AddEdge("A", "B", core.WithWeight(2))
//	r := policy.Route[string](g, policy.Default())
//	res, err := shortestpath.Dijkstra(r, "A")
//
// Results never depend on the route taken. Node iteration follows insertion
// order and neighbor iteration follows edge insertion order in both
// representations, which is what makes every algorithm deterministic.
package graphengine
