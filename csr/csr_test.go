// SPDX-License-Identifier: MIT
package csr_test

import (
	"bytes"
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/csr"
)

type pair struct {
	id string
	w  float64
}

func pairs(seq iter.Seq2[string, float64]) []pair {
	var out []pair
	for id, w := range seq {
		out = append(out, pair{id, w})
	}

	return out
}

func randomGraph(t *testing.T, directed bool, seed int64) *core.Graph[string] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph[string](core.WithDirected(directed), core.WithSelfLoops(), core.WithParallelEdges())
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, n := range names {
		g.AddNode(n)
	}
	for i := 0; i < 25; i++ {
		u, v := names[rng.Intn(len(names))], names[rng.Intn(len(names))]
		_, err := g.AddEdge(u, v, core.WithWeight(float64(rng.Intn(5)+1)))
		require.NoError(t, err)
	}

	return g
}

func TestRoundTripPreservesOrderAndMultiset(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := randomGraph(t, directed, 11)
		c, err := csr.FromReader[string](g)
		require.NoError(t, err)

		assert.Equal(t, g.NodeCount(), c.NodeCount())
		assert.Equal(t, g.EdgeCount(), c.EdgeCount())
		assert.Equal(t, slices.Collect(g.Nodes()), slices.Collect(c.Nodes()))
		for id := range g.Nodes() {
			assert.Equal(t, pairs(g.Neighbors(id)), pairs(c.Neighbors(id)), "row %s", id)
			assert.Equal(t, pairs(g.InNeighbors(id)), pairs(c.InNeighbors(id)), "in-row %s", id)
			wantOut, err := g.OutDegree(id)
			require.NoError(t, err)
			gotOut, err := c.OutDegree(id)
			require.NoError(t, err)
			assert.Equal(t, wantOut, gotOut)
			wantIn, _ := g.InDegree(id)
			gotIn, _ := c.InDegree(id)
			assert.Equal(t, wantIn, gotIn)
			for other := range g.Nodes() {
				assert.Equal(t, g.HasEdge(id, other), c.HasEdge(id, other))
			}
		}
	}
}

func TestNewFromAdjacency(t *testing.T) {
	order := []string{"A", "B", "C"}
	adj := [][]string{{"B", "C"}, {"C"}, {}}
	c, err := csr.New(order, adj, nil, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3, 3}, c.Offsets())
	assert.Equal(t, []int{1, 2, 2}, c.Columns())
	assert.False(t, c.Weighted())
	assert.Nil(t, c.RowWeights(0))
	assert.Equal(t, 3, c.EdgeCount())
	assert.Equal(t, []pair{{"A", 1}, {"B", 1}}, pairs(c.InNeighbors("C")))

	_, err = c.OutDegree("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = csr.NewAdapter[string](core.NewGraph[string]()).InDegree("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	i, ok := c.IndexOf("B")
	require.True(t, ok)
	assert.Equal(t, "B", c.IDAt(i))
	assert.Equal(t, []int{2}, c.Row(i))
}

func TestNewUndirectedCountsLoopsOnce(t *testing.T) {
	order := []int{1, 2}
	adj := [][]int{{2, 1}, {1}}
	w := [][]float64{{2, 3}, {2}}
	c, err := csr.New(order, adj, w, false)
	require.NoError(t, err)
	assert.Equal(t, 2, c.EdgeCount())
	assert.True(t, c.Weighted())
	assert.Equal(t, []float64{2, 3}, c.RowWeights(0))
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := csr.New([]string{"A"}, [][]string{{"B"}}, nil, true)
	assert.ErrorIs(t, err, csr.ErrUnknownNeighbor)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = csr.New([]string{"A"}, nil, nil, true)
	assert.ErrorIs(t, err, csr.ErrShapeMismatch)

	_, err = csr.New([]string{"A", "A"}, [][]string{{}, {}}, nil, true)
	assert.ErrorIs(t, err, csr.ErrDuplicateNode)

	_, err = csr.New([]string{"A"}, [][]string{{"A"}}, [][]float64{{}}, true)
	assert.ErrorIs(t, err, csr.ErrShapeMismatch)
}

func TestSnapshotIsFrozen(t *testing.T) {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B")

	var buf bytes.Buffer
	a := csr.NewAdapter[string](g, csr.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	assert.Equal(t, 2, a.NodeCount())
	assert.Contains(t, buf.String(), "csr snapshot built")

	_, _ = g.AddEdge("B", "C")
	assert.Equal(t, 2, a.NodeCount(), "mutation does not propagate")
	assert.False(t, a.HasNode("C"))

	snap, err := a.Rebuild()
	require.NoError(t, err)
	assert.Equal(t, 3, snap.NodeCount())
	assert.True(t, a.HasEdge("C", "B"))
}

func TestAdapterOverCSR(t *testing.T) {
	g := randomGraph(t, true, 3)
	a := csr.NewAdapter[string](g)
	for id := range g.Nodes() {
		assert.Equal(t, pairs(g.Neighbors(id)), pairs(a.Neighbors(id)))
	}
	snap, err := a.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, g.TotalEdgeCount(), snap.TotalEdgeCount())
}
