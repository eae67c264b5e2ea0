// SPDX-License-Identifier: MIT
package matching_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/flow"
	"github.com/katalvlaran/graphengine/matching"
)

func undirected(edges ...[2]string) *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1])
	}

	return g
}

func TestBipartition(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	g.AddNode("E")

	b, err := matching.Bipartition[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E"}, b.Left)
	assert.Equal(t, []string{"B", "D"}, b.Right)
	assert.True(t, b.IsLeft("C"))
	assert.False(t, b.IsLeft("D"))
	assert.True(t, matching.IsBipartite[string](g))
}

func TestOddCyclesAreRejected(t *testing.T) {
	tri := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	_, err := matching.Bipartition[string](tri)
	assert.ErrorIs(t, err, matching.ErrNotBipartite)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
	_, err = matching.MaximumBipartite[string](tri)
	assert.ErrorIs(t, err, matching.ErrNotBipartite)

	loop := core.NewGraph[string](core.WithSelfLoops())
	_, _ = loop.AddEdge("A", "A")
	assert.False(t, matching.IsBipartite[string](loop))

	_, err = matching.Bipartition[string](nil)
	assert.ErrorIs(t, err, matching.ErrGraphNil)
}

func TestMaximumBipartiteReroutes(t *testing.T) {
	g := undirected(
		[2]string{"A", "x"}, [2]string{"B", "x"}, [2]string{"B", "y"}, [2]string{"C", "y"},
	)
	res, err := matching.MaximumBipartite[string](g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Size())
	assert.Equal(t, []matching.Pair[string]{{Left: "A", Right: "x"}, {Left: "B", Right: "y"}}, res.Pairs)
	assert.Equal(t, "B", res.Mate["y"])
	_, matched := res.Mate["C"]
	assert.False(t, matched)
	assert.Equal(t, []string{"x", "y"}, res.VertexCover())
}

func TestDirectedEdgesIgnoreOrientation(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("x", "A")
	_, _ = g.AddEdge("B", "y")

	res, err := matching.MaximumBipartite[string](g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Size())
	assert.Equal(t, []string{"x", "B"}, res.Sides.Left)
}

// TestMatchesMaxFlow compares matching size with the unit-capacity max flow
// of the usual source/sink construction, and checks König's equality.
func TestMatchesMaxFlow(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := core.NewGraph[int]()
		for i := 0; i < 14; i++ {
			g.AddNode(i)
		}
		for i := 0; i < 20; i++ {
			l, r := rng.Intn(7), 7+rng.Intn(7)
			if !g.HasEdge(l, r) {
				_, _ = g.AddEdge(l, r)
			}
		}

		res, err := matching.MaximumBipartite[int](g)
		require.NoError(t, err)

		net := core.NewGraph[int](core.WithDirected(true))
		const src, dst = -1, -2
		net.AddNode(src)
		net.AddNode(dst)
		for _, l := range res.Sides.Left {
			_, _ = net.AddEdge(src, l)
			for v := range g.Neighbors(l) {
				_, _ = net.AddEdge(l, v)
			}
		}
		for _, r := range res.Sides.Right {
			_, _ = net.AddEdge(r, dst)
		}
		mf, err := flow.EdmondsKarp[int](net, src, dst, flow.DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, int(mf.MaxFlow), res.Size(), "seed %d", seed)
		cover := res.VertexCover()
		assert.Len(t, cover, res.Size(), "seed %d", seed)
		in := make(map[int]bool)
		for _, v := range cover {
			in[v] = true
		}
		for _, e := range g.Edges() {
			assert.True(t, in[e.From] || in[e.To], "seed %d: edge %v-%v uncovered", seed, e.From, e.To)
		}
	}
}
