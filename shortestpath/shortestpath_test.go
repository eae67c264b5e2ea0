// SPDX-License-Identifier: MIT
package shortestpath_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/csr"
	"github.com/katalvlaran/graphengine/gonumgraph"
	"github.com/katalvlaran/graphengine/shortestpath"
)

// classic builds the seven-edge weighted graph used across the suite.
func classic(directed bool) *core.Graph[string] {
	g := core.NewGraph[string](core.WithDirected(directed))
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
		{"C", "D", 8}, {"C", "E", 10}, {"D", "E", 2},
	} {
		_, _ = g.AddEdge(e.u, e.v, core.WithWeight(e.w))
	}

	return g
}

type ShortestPathSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *ShortestPathSuite) SetupTest() { s.g = classic(false) }

func TestShortestPathSuite(t *testing.T) {
	suite.Run(t, new(ShortestPathSuite))
}

func (s *ShortestPathSuite) TestDijkstraClassic() {
	res, err := shortestpath.Dijkstra[string](s.g, "A")
	s.Require().NoError(err)

	d, ok := res.Distance("D")
	s.True(ok)
	s.Equal(8.0, d)
	d, _ = res.Distance("E")
	s.Equal(10.0, d)

	p, err := res.PathTo("E")
	s.Require().NoError(err)
	s.Equal([]string{"A", "C", "B", "D", "E"}, p)

	e := res.Entry("D")
	s.Equal(8.0, e.Distance)
	s.True(e.HasPredecessor)
	s.Equal("B", e.Predecessor)
	s.Equal([]string{"A", "C", "B", "D"}, e.Path)

	src := res.Entry("A")
	s.False(src.HasPredecessor)
	s.Equal([]string{"A"}, src.Path)
}

func (s *ShortestPathSuite) TestDijkstraDirected() {
	res, err := shortestpath.Dijkstra[string](classic(true), "A")
	s.Require().NoError(err)
	d, _ := res.Distance("D")
	s.Equal(9.0, d)
	d, _ = res.Distance("E")
	s.Equal(11.0, d)
}

func (s *ShortestPathSuite) TestDijkstraOptions() {
	res, err := shortestpath.Dijkstra[string](s.g, "A", shortestpath.WithMaxDistance[string](3))
	s.Require().NoError(err)
	_, ok := res.Distance("D")
	s.False(ok)
	d, ok := res.Distance("B")
	s.True(ok)
	s.Equal(3.0, d)

	res, err = shortestpath.Dijkstra[string](s.g, "A", shortestpath.WithInfEdgeThreshold[string](5))
	s.Require().NoError(err)
	_, ok = res.Distance("D")
	s.False(ok, "all edges into D weigh >= 5")

	res, err = shortestpath.Dijkstra[string](s.g, "A", shortestpath.WithTarget("B"))
	s.Require().NoError(err)
	d, _ = res.Distance("B")
	s.Equal(3.0, d)

	_, err = shortestpath.Dijkstra[string](s.g, "A", shortestpath.WithMaxDistance[string](-1))
	s.ErrorIs(err, shortestpath.ErrBadOption)
	s.ErrorIs(err, core.ErrInvalidParameter)
	_, err = shortestpath.Dijkstra[string](s.g, "A", shortestpath.WithInfEdgeThreshold[string](0))
	s.ErrorIs(err, shortestpath.ErrBadOption)
}

func (s *ShortestPathSuite) TestDijkstraErrors() {
	_, err := shortestpath.Dijkstra[string](nil, "A")
	s.ErrorIs(err, shortestpath.ErrGraphNil)
	_, err = shortestpath.Dijkstra[string](s.g, "Z")
	s.ErrorIs(err, core.ErrNodeNotFound)

	s.g.AddNode("Z")
	res, err := shortestpath.Dijkstra[string](s.g, "A")
	s.Require().NoError(err)
	_, err = res.PathTo("Z")
	s.ErrorIs(err, shortestpath.ErrNoPath)
	_, err = res.PathTo("nope")
	s.ErrorIs(err, shortestpath.ErrTargetNotFound)
	s.Nil(res.Entry("Z").Path)
	s.True(math.IsInf(res.Entry("Z").Distance, 1))
}

func (s *ShortestPathSuite) TestDijkstraNegativeWeight() {
	_, _ = s.g.AddEdge("E", "F", core.WithWeight(-1))
	_, err := shortestpath.Dijkstra[string](s.g, "A")
	s.NoError(err, "unchecked by default")

	_, err = shortestpath.Dijkstra[string](s.g, "A", shortestpath.WithNegativeWeightCheck[string]())
	s.ErrorIs(err, shortestpath.ErrNegativeWeight)
	s.ErrorIs(err, core.ErrInvalidTopology)
}

func (s *ShortestPathSuite) TestBellmanFordMatchesDijkstra() {
	bf, err := shortestpath.BellmanFord[string](s.g, "A")
	s.Require().NoError(err)
	s.False(bf.HasNegativeCycle)
	dj, _ := shortestpath.Dijkstra[string](s.g, "A")
	s.Equal(dj.Dist, bf.Dist)
}

func (s *ShortestPathSuite) TestFloydWarshall() {
	ap, err := shortestpath.FloydWarshall[string](s.g)
	s.Require().NoError(err)
	s.False(ap.HasNegativeCycle)

	d, err := ap.Distance("A", "E")
	s.Require().NoError(err)
	s.Equal(10.0, d)
	d, _ = ap.Distance("E", "A")
	s.Equal(10.0, d)

	p, err := ap.Path("A", "D")
	s.Require().NoError(err)
	s.Equal([]string{"A", "C", "B", "D"}, p)

	m := ap.Matrix()
	r, c := m.Dims()
	s.Equal(5, r)
	s.Equal(5, c)
	s.Equal([]string{"A", "B", "C", "D", "E"}, ap.Nodes())

	_, err = ap.Distance("A", "Q")
	s.ErrorIs(err, shortestpath.ErrTargetNotFound)
}

func (s *ShortestPathSuite) TestAStar() {
	// Admissible: remaining hops to E times the minimum weight (1).
	hops := map[string]float64{"A": 2, "B": 2, "C": 1, "D": 1, "E": 0}
	res, err := shortestpath.AStar[string](s.g, "A", "E", func(n string) float64 { return hops[n] })
	s.Require().NoError(err)
	s.Equal(10.0, res.Cost)
	s.Equal([]string{"A", "C", "B", "D", "E"}, res.Path)
	s.Positive(res.Expanded)

	res, err = shortestpath.AStar[string](s.g, "A", "A", nil)
	s.Require().NoError(err)
	s.Equal([]string{"A"}, res.Path)
	s.Zero(res.Cost)

	s.g.AddNode("Z")
	_, err = shortestpath.AStar[string](s.g, "A", "Z", shortestpath.ZeroHeuristic[string])
	s.ErrorIs(err, shortestpath.ErrNoPath)
	_, err = shortestpath.AStar[string](s.g, "A", "nope", nil)
	s.ErrorIs(err, shortestpath.ErrTargetNotFound)
}

func TestBellmanFordNegativeTriangle(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("X", "Y", core.WithWeight(1))
	_, _ = g.AddEdge("Y", "Z", core.WithWeight(-3))
	_, _ = g.AddEdge("Z", "X", core.WithWeight(1))

	res, err := shortestpath.BellmanFord[string](g, "X")
	require.NoError(t, err)
	assert.True(t, res.HasNegativeCycle)

	ap, err := shortestpath.FloydWarshall[string](g)
	require.NoError(t, err)
	assert.True(t, ap.HasNegativeCycle)
}

func TestBellmanFordNegativeEdgeNoCycle(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("S", "A", core.WithWeight(4))
	_, _ = g.AddEdge("S", "B", core.WithWeight(5))
	_, _ = g.AddEdge("B", "A", core.WithWeight(-3))

	res, err := shortestpath.BellmanFord[string](g, "S")
	require.NoError(t, err)
	assert.False(t, res.HasNegativeCycle)
	d, _ := res.Distance("A")
	assert.Equal(t, 2.0, d)
	p, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "A"}, p)

	_, err = shortestpath.BellmanFord[string](g, "Q")
	assert.ErrorIs(t, err, shortestpath.ErrSourceNotFound)
}

func TestFloydWarshallEmpty(t *testing.T) {
	ap, err := shortestpath.FloydWarshall[int](core.NewGraph[int]())
	require.NoError(t, err)
	assert.Nil(t, ap.Matrix())
	assert.Empty(t, ap.Nodes())
}

func TestDijkstraAgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		g := core.NewGraph[int](core.WithDirected(trial%2 == 0), core.WithViolationPolicy(core.ViolationIgnore))
		for i := 0; i < 25; i++ {
			g.AddNode(i)
		}
		for i := 0; i < 70; i++ {
			_, _ = g.AddEdge(rng.Intn(25), rng.Intn(25), core.WithWeight(float64(rng.Intn(20)+1)))
		}

		ours, err := shortestpath.Dijkstra[int](csr.NewAdapter[int](g), 0)
		require.NoError(t, err)

		var want path.Shortest
		if g.Directed() {
			view := gonumgraph.NewDirected[int](g)
			want = path.DijkstraFrom(view.Node(0), view)
		} else {
			view := gonumgraph.NewUndirected[int](g)
			want = path.DijkstraFrom(view.Node(0), view)
		}
		for v := 0; v < 25; v++ {
			got, _ := ours.Distance(v)
			assert.Equal(t, want.WeightTo(int64(v)), got, "trial %d node %d", trial, v)
		}
	}
}
