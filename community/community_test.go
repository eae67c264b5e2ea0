// SPDX-License-Identifier: MIT
package community_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	gcommunity "gonum.org/v1/gonum/graph/community"

	"github.com/katalvlaran/graphengine/community"
	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/gonumgraph"
)

// twoTriangles returns {1,2,3} and {4,5,6} joined by the bridge 3-4.
func twoTriangles(bridge float64) *core.Graph[int] {
	g := core.NewGraph[int]()
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(1, 3)
	_, _ = g.AddEdge(4, 5)
	_, _ = g.AddEdge(5, 6)
	_, _ = g.AddEdge(4, 6)
	_, _ = g.AddEdge(3, 4, core.WithWeight(bridge))

	return g
}

func randomGraph(t *testing.T, seed int64, n, m int) *core.Graph[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for added := 0; added < m; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		_, err := g.AddEdge(u, v, core.WithWeight(float64(rng.Intn(5)+1)))
		require.NoError(t, err)
		added++
	}

	return g
}

// gonumQ scores p with gonum's modularity over the loopless graph g.
func gonumQ(g *core.Graph[int], p community.Partition[int], gamma float64) float64 {
	view := gonumgraph.NewUndirected[int](g)
	var groups [][]graph.Node
	for _, members := range community.Communities[int](g, p) {
		var nodes []graph.Node
		for _, k := range members {
			id, _ := view.ID(k)
			nodes = append(nodes, view.Node(id))
		}
		groups = append(groups, nodes)
	}

	return gcommunity.Q(view, groups, gamma)
}

func TestModularityOfKnownPartitions(t *testing.T) {
	g := twoTriangles(1)

	single := community.Partition[int]{1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0}
	q, err := community.Modularity[int](g, single, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-12)

	split := community.Partition[int]{1: 0, 2: 0, 3: 0, 4: 1, 5: 1, 6: 1}
	q, err = community.Modularity[int](g, split, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/14, q, 1e-12)
	assert.InDelta(t, gonumQ(g, split, 1), q, 1e-12)

	_, err = community.Modularity[int](g, community.Partition[int]{1: 0}, 1)
	assert.ErrorIs(t, err, community.ErrIncompletePartition)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestModularityAgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		g := randomGraph(t, int64(trial), 12, 25)
		p := make(community.Partition[int])
		for v := range g.Nodes() {
			p[v] = rng.Intn(4)
		}
		for _, gamma := range []float64{0.5, 1, 2} {
			q, err := community.Modularity[int](g, p, gamma)
			require.NoError(t, err)
			assert.InDelta(t, gonumQ(g, p, gamma), q, 1e-9, "trial %d gamma %g", trial, gamma)
		}
	}
}

func TestDirectedReadAsUndirectedProjection(t *testing.T) {
	und := twoTriangles(1)
	dir := core.NewGraph[int](core.WithDirected(true))
	for _, e := range und.Edges() {
		_, _ = dir.AddEdge(e.From, e.To, core.WithWeight(e.Weight))
	}
	p := community.Partition[int]{1: 0, 2: 0, 3: 1, 4: 1, 5: 2, 6: 2}

	want, err := community.Modularity[int](und, p, 1)
	require.NoError(t, err)
	got, err := community.Modularity[int](dir, p, 1)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
	assert.Equal(t, community.TotalWeight[int](und), community.TotalWeight[int](dir))
}

func TestDegreeHelpers(t *testing.T) {
	g := core.NewGraph[string](core.WithSelfLoops())
	_, _ = g.AddEdge("A", "B", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("A", "A", core.WithWeight(3))

	assert.Equal(t, 6.0, community.TotalWeight[string](g))
	k, err := community.WeightedDegree[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, 9.0, k)
	_, err = community.WeightedDegree[string](g, "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	p := community.Partition[string]{"A": 0, "B": 1, "C": 1}
	nc, err := community.NeighborCommunities[string](g, "A", p)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 3}, nc)

	_, err = community.NeighborCommunities[string](g, "A", community.Partition[string]{"A": 0})
	assert.ErrorIs(t, err, community.ErrIncompletePartition)

	assert.Equal(t, [][]string{{"A"}, {"B", "C"}}, community.Communities[string](g, p))
}

func TestLouvainSplitsTriangles(t *testing.T) {
	var buf bytes.Buffer
	opts := community.DefaultOptions()
	opts.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	res, err := community.Louvain[int](twoTriangles(1), opts)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, res.Communities)
	assert.Equal(t, community.Partition[int]{1: 0, 2: 0, 3: 0, 4: 1, 5: 1, 6: 1}, res.Partition)
	assert.InDelta(t, 5.0/14, res.Modularity, 1e-12)
	assert.Equal(t, 1, res.Levels)
	assert.Contains(t, buf.String(), "louvain level")
}

func TestLouvainModularityIsConsistent(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := randomGraph(t, seed, 20, 45)
		res, err := community.Louvain[int](g, community.Options{})
		require.NoError(t, err)
		require.Len(t, res.Partition, g.NodeCount())

		q, err := community.Modularity[int](g, res.Partition, 1)
		require.NoError(t, err)
		assert.InDelta(t, q, res.Modularity, 1e-9)
		assert.InDelta(t, gonumQ(g, res.Partition, 1), res.Modularity, 1e-9)
		assert.Greater(t, res.Modularity, 0.0)
	}
}

func TestLeidenCommunitiesAreConnected(t *testing.T) {
	res, err := community.Leiden[int](twoTriangles(1), community.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, res.Communities)
	assert.InDelta(t, 5.0/14, res.Modularity, 1e-12)

	for seed := int64(10); seed < 15; seed++ {
		g := randomGraph(t, seed, 24, 40)
		res, err := community.Leiden[int](g, community.Options{})
		require.NoError(t, err)
		for _, members := range res.Communities {
			assert.True(t, components.IsConnected[int](g.InducedSubgraph(members)), "seed %d: %v", seed, members)
		}
		q, err := community.Modularity[int](g, res.Partition, 1)
		require.NoError(t, err)
		assert.InDelta(t, q, res.Modularity, 1e-9)
	}
}

func TestGirvanNewman(t *testing.T) {
	g := twoTriangles(1)
	res, err := community.GirvanNewman[int](g, community.GirvanNewmanOptions{})
	require.NoError(t, err)
	require.Len(t, res.Dendrogram, 6)
	assert.InDelta(t, 0.0, res.Dendrogram[0].Modularity, 1e-12)
	assert.Equal(t, 1, res.Dendrogram[1].Removed)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, res.Communities)
	assert.InDelta(t, 5.0/14, res.Modularity, 1e-12)
	assert.Len(t, res.Dendrogram[5].Communities, 6)

	res, err = community.GirvanNewman[int](g, community.GirvanNewmanOptions{TargetCommunities: 2})
	require.NoError(t, err)
	assert.Len(t, res.Dendrogram, 2)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, res.Communities)

	_, err = community.GirvanNewman[int](g, community.GirvanNewmanOptions{TargetCommunities: -1})
	assert.ErrorIs(t, err, community.ErrBadOption)
}

func TestLabelPropagation(t *testing.T) {
	res, err := community.LabelPropagation[int](twoTriangles(0.5), community.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, res.Communities)
	assert.Equal(t, 2, res.Levels)

	q, err := community.Modularity[int](twoTriangles(0.5), res.Partition, 1)
	require.NoError(t, err)
	assert.InDelta(t, q, res.Modularity, 1e-12)
}

func TestDetectorErrors(t *testing.T) {
	_, err := community.Louvain[int](nil, community.DefaultOptions())
	assert.ErrorIs(t, err, community.ErrGraphNil)

	_, err = community.Leiden[int](twoTriangles(1), community.Options{Resolution: -1})
	assert.ErrorIs(t, err, community.ErrBadOption)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = community.LabelPropagation[int](twoTriangles(-1), community.Options{})
	assert.ErrorIs(t, err, community.ErrNegativeWeight)

	res, err := community.Louvain[int](core.NewGraph[int](), community.Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Partition)
	assert.Zero(t, res.Modularity)
}
