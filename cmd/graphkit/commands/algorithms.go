// SPDX-License-Identifier: MIT
//
// File: algorithms.go
// Role: the algorithm registry behind "graphkit run".
// Policy:
//   - Every entry reads the routed core.Reader, so results do not depend
//     on the policy preset.
//   - Results are plain maps and slices; +Inf becomes JSON null.

package commands

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphengine/bfs"
	"github.com/katalvlaran/graphengine/centrality"
	"github.com/katalvlaran/graphengine/clustering"
	"github.com/katalvlaran/graphengine/community"
	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/dfs"
	"github.com/katalvlaran/graphengine/flow"
	"github.com/katalvlaran/graphengine/gonumgraph"
	"github.com/katalvlaran/graphengine/linkpred"
	"github.com/katalvlaran/graphengine/matching"
	"github.com/katalvlaran/graphengine/matrix"
	"github.com/katalvlaran/graphengine/prim_kruskal"
	"github.com/katalvlaran/graphengine/shortestpath"
)

var (
	// errMissingFlag indicates an algorithm ran without a flag it needs.
	errMissingFlag = errors.New("graphkit: missing flag")

	// errUnknownAlgorithm indicates a name outside the registry.
	errUnknownAlgorithm = errors.New("graphkit: unknown algorithm")
)

// params carries the algorithm-specific flags of "graphkit run".
type params struct {
	source, target string
	k              int
	method         string
	top            int
	resolution     float64
	linkage        string
	weighted       bool
	seed           int64

	log zerolog.Logger
}

func (p *params) needSource() error {
	if p.source == "" {
		return fmt.Errorf("%w: --source", errMissingFlag)
	}

	return nil
}

func (p *params) needTarget() error {
	if err := p.needSource(); err != nil {
		return err
	}
	if p.target == "" {
		return fmt.Errorf("%w: --target", errMissingFlag)
	}

	return nil
}

type algorithm struct {
	summary string
	run     func(g core.Reader[string], p *params) (any, error)
}

var registry = map[string]algorithm{
	"bfs":                    {"breadth-first order and depths from --source", runBFS},
	"dfs":                    {"depth-first pre/post order from --source", runDFS},
	"topological-sort":       {"topological order of a DAG", runTopo},
	"cycles":                 {"cycles closed by DFS back-edges", runCycles},
	"components":             {"connected components (weak on directed graphs)", runComponents},
	"strongly-connected":     {"strongly connected components (--method tarjan|gonum)", runStrong},
	"dijkstra":               {"single-source distances from --source, path to --target", runDijkstra},
	"bellman-ford":           {"single-source distances with negative weights", runBellmanFord},
	"floyd-warshall":         {"all-pairs distance matrix", runFloydWarshall},
	"astar":                  {"A* path from --source to --target (zero heuristic)", runAStar},
	"degree":                 {"degree centrality", runDegree},
	"closeness":              {"closeness centrality", runCloseness},
	"betweenness":            {"betweenness centrality", runBetweenness},
	"eigenvector":            {"eigenvector centrality", runEigenvector},
	"katz":                   {"Katz centrality", runKatz},
	"pagerank":               {"PageRank", runPageRank},
	"hits":                   {"HITS hubs and authorities", runHITS},
	"mst":                    {"minimum spanning tree (--method kruskal|prim)", runMST},
	"louvain":                {"Louvain communities", runLouvain},
	"leiden":                 {"Leiden communities", runLeiden},
	"girvan-newman":          {"Girvan-Newman communities (--k target count)", runGirvanNewman},
	"label-propagation":      {"label propagation communities", runLabelPropagation},
	"kcore":                  {"core numbers and degeneracy", runKCore},
	"spectral":               {"spectral clustering into --k clusters", runSpectral},
	"laplacian-spectrum":     {"Laplacian eigenvalues (--method normalized for I - D^-1/2 A D^-1/2)", runSpectrum},
	"hierarchical":           {"agglomerative clustering cut at --k clusters", runHierarchical},
	"clustering-coefficient": {"local and average clustering coefficients", runCoefficient},
	"maxflow":                {"max flow / min cut from --source to --target", runMaxFlow},
	"matching":               {"maximum bipartite matching and vertex cover", runMatching},
	"linkpred":               {"top --top predicted links (--method jaccard, ...)", runLinkPred},
}

// algorithmNames returns the registry keys, sorted.
func algorithmNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// finite maps +Inf/-Inf/NaN to nil so the map encodes as JSON.
func finite(m map[string]float64) map[string]*float64 {
	out := make(map[string]*float64, len(m))
	for k, v := range m {
		out[k] = number(v)
	}

	return out
}

func number(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}

func runBFS(g core.Reader[string], p *params) (any, error) {
	if err := p.needSource(); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g, p.source)
	if err != nil {
		return nil, err
	}

	return map[string]any{"order": res.Order, "depth": res.Depth}, nil
}

func runDFS(g core.Reader[string], p *params) (any, error) {
	if err := p.needSource(); err != nil {
		return nil, err
	}
	res, err := dfs.DFS(g, p.source)
	if err != nil {
		return nil, err
	}

	return map[string]any{"preorder": res.Preorder, "postorder": res.Order, "depth": res.Depth}, nil
}

func runTopo(g core.Reader[string], _ *params) (any, error) {
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	return map[string]any{"order": order}, nil
}

func runCycles(g core.Reader[string], _ *params) (any, error) {
	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return nil, err
	}

	return map[string]any{"has_cycle": has, "cycles": cycles}, nil
}

func componentsOut(res *components.Result[string], err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return map[string]any{"count": res.Count(), "components": res.Components}, nil
}

func runComponents(g core.Reader[string], _ *params) (any, error) {
	return componentsOut(components.Connected(g))
}

func runStrong(g core.Reader[string], p *params) (any, error) {
	switch p.method {
	case "", "tarjan":
		return componentsOut(components.Strongly(g))
	case "gonum":
		return gonumComponents(g), nil
	default:
		return nil, fmt.Errorf("graphkit: --method %q (want tarjan or gonum): %w", p.method, core.ErrInvalidParameter)
	}
}

// gonumComponents runs gonum's own Tarjan (connected components on
// undirected graphs) over a zero-copy view. Members are listed in node
// order and components by their first member.
func gonumComponents(g core.Reader[string]) map[string]any {
	var (
		sets [][]graph.Node
		keys func([]graph.Node) []string
	)
	if g.Directed() {
		d := gonumgraph.NewDirected(g)
		sets, keys = topo.TarjanSCC(d), d.Keys
	} else {
		u := gonumgraph.NewUndirected(g)
		sets, keys = topo.ConnectedComponents(u), u.Keys
	}
	for _, set := range sets {
		sort.Slice(set, func(i, j int) bool { return set[i].ID() < set[j].ID() })
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i][0].ID() < sets[j][0].ID() })
	out := make([][]string, len(sets))
	for i, set := range sets {
		out[i] = keys(set)
	}

	return map[string]any{"count": len(out), "components": out}
}

func singleSource(res *shortestpath.Result[string], p *params) (any, error) {
	out := map[string]any{"source": res.Source, "distance": finite(res.Dist), "negative_cycle": res.HasNegativeCycle}
	if p.target != "" {
		path, err := res.PathTo(p.target)
		if err != nil {
			return nil, err
		}
		out["path"] = path
	}

	return out, nil
}

func runDijkstra(g core.Reader[string], p *params) (any, error) {
	if err := p.needSource(); err != nil {
		return nil, err
	}
	res, err := shortestpath.Dijkstra(g, p.source)
	if err != nil {
		return nil, err
	}

	return singleSource(res, p)
}

func runBellmanFord(g core.Reader[string], p *params) (any, error) {
	if err := p.needSource(); err != nil {
		return nil, err
	}
	res, err := shortestpath.BellmanFord(g, p.source)
	if err != nil {
		return nil, err
	}

	return singleSource(res, p)
}

func runFloydWarshall(g core.Reader[string], _ *params) (any, error) {
	ap, err := shortestpath.FloydWarshall(g)
	if err != nil {
		return nil, err
	}
	nodes := ap.Nodes()
	dist := make(map[string]map[string]*float64, len(nodes))
	for _, u := range nodes {
		row := make(map[string]*float64, len(nodes))
		for _, v := range nodes {
			d, err := ap.Distance(u, v)
			if err != nil {
				return nil, err
			}
			row[v] = number(d)
		}
		dist[u] = row
	}

	return map[string]any{"nodes": nodes, "distance": dist, "negative_cycle": ap.HasNegativeCycle}, nil
}

func runAStar(g core.Reader[string], p *params) (any, error) {
	if err := p.needTarget(); err != nil {
		return nil, err
	}
	res, err := shortestpath.AStar(g, p.source, p.target, shortestpath.ZeroHeuristic[string])
	if err != nil {
		return nil, err
	}

	return map[string]any{"path": res.Path, "cost": res.Cost, "expanded": res.Expanded}, nil
}

func scoresOut(s centrality.Scores[string], err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return map[string]any{"scores": finite(s)}, nil
}

func runDegree(g core.Reader[string], _ *params) (any, error) {
	return scoresOut(centrality.Degree(g, centrality.DefaultDegreeOptions()))
}

func runCloseness(g core.Reader[string], p *params) (any, error) {
	opts := centrality.DefaultClosenessOptions()
	opts.Weighted = p.weighted

	return scoresOut(centrality.Closeness(g, opts))
}

func runBetweenness(g core.Reader[string], p *params) (any, error) {
	return scoresOut(centrality.Betweenness(g, centrality.BetweennessOptions{Normalized: true, Weighted: p.weighted}))
}

func runEigenvector(g core.Reader[string], _ *params) (any, error) {
	res, err := centrality.Eigenvector(g, centrality.IterativeOptions{})
	if err != nil {
		return nil, err
	}

	return map[string]any{"scores": finite(res.Scores), "iterations": res.Iterations}, nil
}

func runKatz(g core.Reader[string], _ *params) (any, error) {
	res, err := centrality.Katz(g, centrality.DefaultKatzOptions())
	if err != nil {
		return nil, err
	}

	return map[string]any{"scores": finite(res.Scores), "iterations": res.Iterations}, nil
}

func runPageRank(g core.Reader[string], _ *params) (any, error) {
	res, err := centrality.PageRank(g, centrality.DefaultPageRankOptions())
	if err != nil {
		return nil, err
	}

	return map[string]any{"scores": finite(res.Scores), "iterations": res.Iterations, "converged": res.Converged}, nil
}

func runHITS(g core.Reader[string], _ *params) (any, error) {
	res, err := centrality.HITS(g, centrality.IterativeOptions{})
	if err != nil {
		return nil, err
	}

	return map[string]any{"hubs": finite(res.Hubs), "authorities": finite(res.Authorities), "iterations": res.Iterations}, nil
}

func runMST(g core.Reader[string], p *params) (any, error) {
	opts := prim_kruskal.DefaultOptions[string]()
	if p.method != "" {
		opts.Method = p.method
	}
	if p.source != "" {
		opts.Root, opts.HasRoot = p.source, true
	}
	res, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		return nil, err
	}
	edges := make([]map[string]any, len(res.Edges))
	for i, e := range res.Edges {
		edges[i] = map[string]any{"from": e.From, "to": e.To, "weight": e.Weight}
	}

	return map[string]any{"method": opts.Method, "edges": edges, "total_weight": res.TotalWeight}, nil
}

func (p *params) communityOptions() community.Options {
	opts := community.DefaultOptions()
	if p.resolution != 0 {
		opts.Resolution = p.resolution
	}
	opts.Logger = p.log

	return opts
}

func communityOut(res *community.Result[string], err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return map[string]any{"communities": res.Communities, "modularity": res.Modularity, "levels": res.Levels}, nil
}

func runLouvain(g core.Reader[string], p *params) (any, error) {
	return communityOut(community.Louvain(g, p.communityOptions()))
}

func runLeiden(g core.Reader[string], p *params) (any, error) {
	return communityOut(community.Leiden(g, p.communityOptions()))
}

func runLabelPropagation(g core.Reader[string], p *params) (any, error) {
	return communityOut(community.LabelPropagation(g, p.communityOptions()))
}

func runGirvanNewman(g core.Reader[string], p *params) (any, error) {
	res, err := community.GirvanNewman(g, community.GirvanNewmanOptions{
		TargetCommunities: p.k,
		Weighted:          p.weighted,
		Resolution:        p.resolution,
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"communities": res.Communities,
		"modularity":  res.Modularity,
		"levels":      len(res.Dendrogram),
	}, nil
}

func runKCore(g core.Reader[string], _ *params) (any, error) {
	res, err := clustering.KCore(g)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"core_numbers": res.Numbers,
		"degeneracy":   res.Degeneracy,
		"main_core":    res.Core(res.Degeneracy),
	}, nil
}

func runSpectral(g core.Reader[string], p *params) (any, error) {
	res, err := clustering.Spectral(g, clustering.SpectralOptions{K: p.k, Seed: p.seed})
	if err != nil {
		return nil, err
	}

	return map[string]any{"clusters": res.Clusters, "eigenvalues": res.Eigenvalues, "iterations": res.Iterations}, nil
}

// zeroEigen is the tolerance under which an eigenvalue counts as zero.
const zeroEigen = 1e-9

func runSpectrum(g core.Reader[string], p *params) (any, error) {
	var normalized bool
	switch p.method {
	case "", "combinatorial":
	case "normalized":
		normalized = true
	default:
		return nil, fmt.Errorf("graphkit: --method %q (want combinatorial or normalized): %w", p.method, core.ErrInvalidParameter)
	}
	adj, err := matrix.NewAdjacency(g, matrix.Options{Symmetrize: true, DropLoops: true})
	if err != nil {
		return nil, err
	}
	vals, err := adj.Spectrum(normalized)
	if err != nil {
		return nil, err
	}
	zeros := 0
	for _, v := range vals {
		if math.Abs(v) < zeroEigen {
			zeros++
		}
	}

	return map[string]any{"nodes": adj.Nodes(), "eigenvalues": vals, "zero_eigenvalues": zeros}, nil
}

func runHierarchical(g core.Reader[string], p *params) (any, error) {
	opts := clustering.HierarchicalOptions{Weighted: p.weighted}
	if p.linkage != "" {
		l, err := clustering.ParseLinkage(p.linkage)
		if err != nil {
			return nil, err
		}
		opts.Linkage = l
	}
	d, err := clustering.Hierarchical(g, opts)
	if err != nil {
		return nil, err
	}
	merges := make([]map[string]any, len(d.Merges))
	for i, m := range d.Merges {
		merges[i] = map[string]any{"a": m.A, "b": m.B, "height": number(m.Height), "size": m.Size}
	}
	out := map[string]any{"leaves": d.Leaves, "merges": merges}
	if p.k > 0 {
		cut, err := d.Cut(p.k)
		if err != nil {
			return nil, err
		}
		out["clusters"] = cut.Clusters
	}

	return out, nil
}

func runCoefficient(g core.Reader[string], _ *params) (any, error) {
	local, err := clustering.ClusteringCoefficient(g)
	if err != nil {
		return nil, err
	}
	avg, err := clustering.AverageClusteringCoefficient(g)
	if err != nil {
		return nil, err
	}

	return map[string]any{"local": local, "average": avg}, nil
}

func runMaxFlow(g core.Reader[string], p *params) (any, error) {
	if err := p.needTarget(); err != nil {
		return nil, err
	}
	opts := flow.DefaultOptions()
	opts.Logger = p.log

	solve := flow.EdmondsKarp[string]
	switch p.method {
	case "", "edmonds-karp":
	case "ford-fulkerson":
		solve = flow.FordFulkerson[string]
	case "dinic":
		solve = flow.Dinic[string]
	default:
		return nil, fmt.Errorf("%w: --method %q (want ford-fulkerson, edmonds-karp or dinic)", flow.ErrBadOption, p.method)
	}
	res, err := solve(g, p.source, p.target, opts)
	if err != nil {
		return nil, err
	}
	cut := make([][2]string, len(res.CutEdges))
	for i, e := range res.CutEdges {
		cut[i] = [2]string{e.From, e.To}
	}

	return map[string]any{"max_flow": res.MaxFlow, "flow": res.Flow, "min_cut": res.MinCut, "cut_edges": cut}, nil
}

func runMatching(g core.Reader[string], _ *params) (any, error) {
	res, err := matching.MaximumBipartite(g)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]string, len(res.Pairs))
	for i, pr := range res.Pairs {
		pairs[i] = [2]string{pr.Left, pr.Right}
	}

	return map[string]any{"size": res.Size(), "pairs": pairs, "vertex_cover": res.VertexCover()}, nil
}

func runLinkPred(g core.Reader[string], p *params) (any, error) {
	m := linkpred.JaccardMethod
	if p.method != "" {
		var err error
		if m, err = linkpred.ParseMethod(p.method); err != nil {
			return nil, err
		}
	}
	preds, err := linkpred.Predict(g, m, linkpred.PredictOptions{TopK: p.top})
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(preds))
	for i, pr := range preds {
		out[i] = map[string]any{"u": pr.U, "v": pr.V, "score": pr.Score}
	}

	return map[string]any{"method": m.String(), "predictions": out}, nil
}
