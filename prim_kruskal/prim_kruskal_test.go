// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/csr"
	"github.com/katalvlaran/graphengine/policy"
	"github.com/katalvlaran/graphengine/prim_kruskal"
)

// buildTriangle constructs A-B (1), B-C (2), A-C (3); its MST is {A-B, B-C}.
func buildTriangle() *core.Graph[string] {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
	_, _ = g.AddEdge("B", "C", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C", core.WithWeight(3))

	return g
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount
// edges: a chain V0-V1-...-V(n-1) for connectivity plus random extra edges.
// The generator is seeded for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) *core.Graph[string] {
	g := core.NewGraph[string](core.WithParallelEdges())
	for i := 0; i < n; i++ {
		g.AddNode(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		weight := 1.0 + float64(r.Intn(10))
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), core.WithWeight(weight))
	}
	for i := n - 1; i < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, _ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), core.WithWeight(float64(1+r.Intn(100))))
		i++
	}

	return g
}

func edgeNames(edges []core.Edge[string]) map[string]bool {
	names := make(map[string]bool, len(edges))
	for _, e := range edges {
		names[e.From+"-"+e.To] = true
		names[e.To+"-"+e.From] = true
	}

	return names
}

func TestValidation_EmptyOrDisconnected(t *testing.T) {
	empty := core.NewGraph[string]()
	_, err := prim_kruskal.Prim[string](empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Kruskal[string](empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	two := core.NewGraph[string]()
	two.AddNode("X")
	two.AddNode("Y")
	_, err = prim_kruskal.Prim[string](two)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Kruskal[string](two)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
}

func TestValidation_Directed(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, err := prim_kruskal.Kruskal[string](g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
	_, err = prim_kruskal.Prim[string](g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Kruskal[string](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestValidation_MissingRoot(t *testing.T) {
	_, err := prim_kruskal.Prim[string](buildTriangle(), prim_kruskal.WithRoot("Z"))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPrim_Triangle(t *testing.T) {
	res, err := prim_kruskal.Prim[string](buildTriangle(), prim_kruskal.WithRoot("A"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalWeight)
	require.Len(t, res.Edges, 2)
	names := edgeNames(res.Edges)
	assert.True(t, names["A-B"], "edge A-B must be in MST")
	assert.True(t, names["B-C"], "edge B-C must be in MST")
}

func TestKruskal_Triangle(t *testing.T) {
	res, err := prim_kruskal.Kruskal[string](buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalWeight)
	require.Len(t, res.Edges, 2)
	names := edgeNames(res.Edges)
	assert.True(t, names["A-B"])
	assert.True(t, names["B-C"])
}

func TestKruskal_OverCSRAdapter(t *testing.T) {
	res, err := prim_kruskal.Kruskal[string](csr.NewAdapter[string](buildTriangle()))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalWeight)
	assert.Empty(t, res.Edges[0].ID, "tree edges carry no IDs")
	direct, err := prim_kruskal.Kruskal[string](buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, direct, res)
}

func TestKruskal_StableTies(t *testing.T) {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")
	res, err := prim_kruskal.Kruskal[string](g)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"A", "B"}, {"A", "C"}}, pairsOf(res.Edges),
		"equal weights follow node order, then neighbor order")
}

func pairsOf(edges []core.Edge[string]) [][2]string {
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}

// Equal weights inserted against node order used to yield a different tree
// on the graph than on its CSR snapshot.
func TestMSTIsRouteInvariant(t *testing.T) {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("A", "B")

	snap, err := csr.FromReader[string](g)
	require.NoError(t, err)
	forced, err := policy.New("", policy.WithForce(policy.CSR))
	require.NoError(t, err)
	readers := map[string]core.Reader[string]{
		"csr":     snap,
		"adapter": csr.NewAdapter[string](g),
		"routed":  policy.Route[string](g, forced),
	}

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		opts := prim_kruskal.DefaultOptions[string]()
		opts.Method = method
		want, err := prim_kruskal.Compute[string](g, opts)
		require.NoError(t, err)
		if method == prim_kruskal.MethodKruskal {
			assert.Equal(t, [][2]string{{"B", "C"}, {"B", "A"}}, pairsOf(want.Edges))
		}
		for name, r := range readers {
			got, err := prim_kruskal.Compute[string](r, opts)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s over %s", method, name)
		}
	}
}

func TestSingleVertexGraph(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("Solo")

	k, err := prim_kruskal.Kruskal[string](g)
	require.NoError(t, err)
	assert.Empty(t, k.Edges)
	assert.Zero(t, k.TotalWeight)

	p, err := prim_kruskal.Prim[string](g, prim_kruskal.WithRoot("Solo"))
	require.NoError(t, err)
	assert.Empty(t, p.Edges)
}

func TestParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph[string](core.WithParallelEdges(), core.WithSelfLoops())
	_, _ = g.AddEdge("A", "B", core.WithWeight(5))
	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
	_, _ = g.AddEdge("A", "A", core.WithWeight(-10))

	k, err := prim_kruskal.Kruskal[string](g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, k.TotalWeight)
	assert.Len(t, k.Edges, 1)

	p, err := prim_kruskal.Prim[string](g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.TotalWeight)
	assert.Len(t, p.Edges, 1)
}

func TestCompute(t *testing.T) {
	g := buildTriangle()
	res, err := prim_kruskal.Compute[string](g, prim_kruskal.DefaultOptions[string]())
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalWeight)

	opts := prim_kruskal.MSTOptions[string]{}
	prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim)(&opts)
	prim_kruskal.WithRoot("C")(&opts)
	res, err = prim_kruskal.Compute[string](g, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalWeight)
	assert.Equal(t, "C", res.Edges[0].From)

	_, err = prim_kruskal.Compute[string](g, prim_kruskal.MSTOptions[string]{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

// TestComparison_MediumGraph checks the spanning-tree properties: n-1 edges,
// a connected tree, and the same total weight for Kruskal and for Prim from
// every root.
func TestComparison_MediumGraph(t *testing.T) {
	for _, seed := range []int64{1, 42, 99} {
		g := buildMediumGraph(60, 240, seed)
		k, err := prim_kruskal.Kruskal[string](g)
		require.NoError(t, err)
		assert.Len(t, k.Edges, g.NodeCount()-1)

		tree := core.NewGraph[string](core.WithParallelEdges())
		for _, e := range k.Edges {
			_, _ = tree.AddEdge(e.From, e.To, core.WithWeight(e.Weight))
		}
		assert.True(t, components.IsConnected[string](tree))

		for _, root := range g.NodeIDs() {
			p, err := prim_kruskal.Prim[string](g, prim_kruskal.WithRoot(root))
			require.NoError(t, err)
			assert.Len(t, p.Edges, g.NodeCount()-1)
			assert.Equal(t, k.TotalWeight, p.TotalWeight, "seed %d root %s", seed, root)
		}
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal[string](g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim[string](g, prim_kruskal.WithRoot("V0"))
	}
}
