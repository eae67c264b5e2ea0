// SPDX-License-Identifier: MIT
package core_test

import (
	"iter"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphengine/core"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func collect[K comparable](seq iter.Seq2[K, float64]) []K {
	var out []K
	for id := range seq {
		out = append(out, id)
	}

	return out
}

func (s *GraphSuite) TestAddNodeIsIdempotentAndMerges() {
	g := core.NewGraph[string]()
	g.AddNode("A")
	g.AddNode("A")
	s.Equal(1, g.NodeCount())

	g.AddNode("A", core.WithNodeData("payload"))
	data, err := g.NodeData("A")
	s.Require().NoError(err)
	s.Equal("payload", data)

	g.AddNode("A")
	data, _ = g.NodeData("A")
	s.Equal("payload", data, "re-adding without data keeps payload")

	_, err = g.NodeData("missing")
	s.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *GraphSuite) TestAddEdgeCreatesEndpointsAndDefaults() {
	g := core.NewGraph[string]()
	id, err := g.AddEdge("A", "B")
	s.Require().NoError(err)
	s.Equal("e1", id)
	s.True(g.HasNode("A"))
	s.True(g.HasNode("B"))

	e, err := g.GetEdge("B", "A")
	s.Require().NoError(err)
	s.Equal(core.DefaultEdgeWeight, e.Weight)
	s.Equal("e1", e.ID)

	id2, err := g.AddEdge("B", "C", core.WithWeight(2.5), core.WithEdgeData(7))
	s.Require().NoError(err)
	s.Equal("e2", id2)
	e2, err := g.EdgeByID(id2)
	s.Require().NoError(err)
	s.Equal(2.5, e2.Weight)
	s.Equal(7, e2.Data)
}

func (s *GraphSuite) TestUndirectedSymmetryAndCounts() {
	g := core.NewGraph[int](core.WithSelfLoops())
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(3, 3)

	s.True(g.HasEdge(1, 2))
	s.True(g.HasEdge(2, 1))
	s.Equal(3, g.EdgeCount())
	s.Equal(5, g.TotalEdgeCount())

	s.Equal([]int{1, 3}, collect(g.Neighbors(2)))
	s.Equal([]int{2, 3}, collect(g.Neighbors(3)), "self-loop appears once")

	d, err := g.Degree(3)
	s.Require().NoError(err)
	s.Equal(3, d)
}

func (s *GraphSuite) TestDirectedInOut() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
	_, _ = g.AddEdge("C", "B", core.WithWeight(1))

	s.True(g.HasEdge("A", "B"))
	s.False(g.HasEdge("B", "A"))
	s.Equal(2, g.TotalEdgeCount())
	s.Equal([]string{"B"}, collect(g.OutNeighbors("A")))
	s.Equal([]string{"A", "C"}, collect(g.InNeighbors("B")))
	in, err := g.InDegree("B")
	s.Require().NoError(err)
	s.Equal(2, in)
	out, err := g.OutDegree("B")
	s.Require().NoError(err)
	s.Zero(out)

	ws := maps.Collect(g.InNeighbors("B"))
	s.Equal(map[string]float64{"A": 4, "C": 1}, ws)
}

func (s *GraphSuite) TestViolationPolicies() {
	strict := core.NewGraph[string]()
	_, err := strict.AddEdge("A", "A")
	s.ErrorIs(err, core.ErrLoopNotAllowed)
	_, _ = strict.AddEdge("A", "B")
	_, err = strict.AddEdge("B", "A")
	s.ErrorIs(err, core.ErrMultiEdgeNotAllowed)

	lax := core.NewGraph[string](core.WithViolationPolicy(core.ViolationIgnore))
	_, _ = lax.AddEdge("A", "B")
	id, err := lax.AddEdge("A", "B", core.WithWeight(9))
	s.NoError(err)
	s.Empty(id)
	s.Equal(1, lax.EdgeCount())

	merge := core.NewGraph[string](core.WithViolationPolicy(core.ViolationMerge))
	first, _ := merge.AddEdge("A", "B")
	id, err = merge.AddEdge("B", "A", core.WithWeight(9))
	s.NoError(err)
	s.Equal(first, id)
	e, _ := merge.GetEdge("A", "B")
	s.Equal(9.0, e.Weight)
	s.Equal(1, merge.EdgeCount())

	multi := core.NewGraph[string](core.WithParallelEdges())
	_, _ = multi.AddEdge("A", "B")
	_, err = multi.AddEdge("A", "B")
	s.NoError(err)
	s.Equal(2, multi.EdgeCount())
	s.Equal([]string{"B", "B"}, collect(multi.Neighbors("A")))
}

func (s *GraphSuite) TestExplicitEdgeIDs() {
	g := core.NewGraph[string](core.WithParallelEdges())
	_, err := g.AddEdge("A", "B", core.WithEdgeID("e1"))
	s.Require().NoError(err)
	id, err := g.AddEdge("A", "B")
	s.Require().NoError(err)
	s.Equal("e2", id, "generator skips taken IDs")
	_, err = g.AddEdge("B", "C", core.WithEdgeID("e2"))
	s.Error(err)
}

func (s *GraphSuite) TestRemoveEdgeAndNode() {
	g := core.NewGraph[string]()
	ab, _ := g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	s.Require().NoError(g.RemoveEdge(ab))
	s.False(g.HasEdge("A", "B"))
	s.False(g.HasEdge("B", "A"))
	s.ErrorIs(g.RemoveEdge(ab), core.ErrEdgeNotFound)

	s.Require().NoError(g.RemoveNode("C"))
	s.Equal([]string{"A", "B"}, g.NodeIDs())
	s.Equal(0, g.EdgeCount())
	s.Empty(collect(g.Neighbors("A")))
	s.ErrorIs(g.RemoveNode("C"), core.ErrNodeNotFound)
}

func (s *GraphSuite) TestCheckedQueriesOnMissingNode() {
	g := core.NewGraph[string]()
	_, err := g.NeighborIDs("X")
	s.ErrorIs(err, core.ErrNodeNotFound)
	_, err = g.Degree("X")
	s.ErrorIs(err, core.ErrNodeNotFound)
	_, err = g.GetEdge("X", "Y")
	s.ErrorIs(err, core.ErrNodeNotFound)
	s.Empty(collect(g.Neighbors("X")))
	_, err = g.OutDegree("X")
	s.ErrorIs(err, core.ErrNodeNotFound)
	_, err = g.InDegree("X")
	s.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *GraphSuite) TestSelfLoopDegreeConventions() {
	g := core.NewGraph[string](core.WithSelfLoops())
	_, _ = g.AddEdge("A", "A")
	_, _ = g.AddEdge("A", "B")

	deg, err := g.Degree("A")
	s.Require().NoError(err)
	s.Equal(3, deg, "an undirected loop counts twice")
	out, err := g.OutDegree("A")
	s.Require().NoError(err)
	s.Equal(2, out, "one neighbor entry per loop")
}

func (s *GraphSuite) TestNeighborsRestartable() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	seq := g.Neighbors("A")
	s.Equal(collect(seq), collect(seq))

	// Breaking early must not hold the lock.
	for range seq {
		break
	}
	_, err := g.AddEdge("A", "D")
	s.NoError(err)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.WithWeight(3))
	_, _ = g.AddEdge("B", "C")

	c := g.Clone()
	_, _ = c.AddEdge("C", "A")
	s.Equal(2, g.EdgeCount())
	s.Equal(3, c.EdgeCount())
	s.Equal(g.Config(), c.Config())

	id, err := c.AddEdge("C", "D")
	s.Require().NoError(err)
	s.Equal("e4", id, "clone continues the ID sequence")

	empty := g.CloneEmpty()
	s.Equal(3, empty.NodeCount())
	s.Zero(empty.EdgeCount())
}

func (s *GraphSuite) TestInducedSubgraph() {
	g := core.NewGraph[int]()
	for i := 1; i < 5; i++ {
		_, _ = g.AddEdge(i, i+1)
	}
	sub := g.InducedSubgraph([]int{3, 2, 4, 99})
	s.Equal([]int{2, 3, 4}, sub.NodeIDs())
	s.Equal(2, sub.EdgeCount())
	s.True(sub.HasEdge(3, 2))
}

func (s *GraphSuite) TestStats() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	g.AddNode("D")
	st := g.Stats()
	s.Equal(4, st.NodeCount)
	s.Equal(2, st.EdgeCount)
	s.Equal(4, st.TotalEdgeCount)
	s.Equal(1, st.IsolatedNodeCount)
	s.Equal(2, st.MaxDegree)
	s.InDelta(2.0*2/12, st.Density, 1e-12)
}

func (s *GraphSuite) TestClear() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B")
	g.Clear()
	s.Zero(g.NodeCount())
	id, _ := g.AddEdge("X", "Y")
	s.Equal("e1", id)
}

func TestOrderIsInsertionOrder(t *testing.T) {
	g := core.NewGraph[string]()
	for _, id := range []string{"z", "a", "m"} {
		g.AddNode(id)
	}
	_, _ = g.AddEdge("m", "z")
	_, _ = g.AddEdge("m", "a")

	assert.Equal(t, []string{"z", "a", "m"}, slices.Collect(g.Nodes()))
	ids, err := g.NeighborIDs("m")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, ids)
}

func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(i, (i+1)%100)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range g.Nodes() {
				d, err := g.OutDegree(id)
				assert.NoError(t, err)
				assert.Equal(t, 2, d)
			}
		}()
	}
	wg.Wait()
}

func TestInvalidParameterIsInvalidTopology(t *testing.T) {
	assert.ErrorIs(t, core.ErrInvalidParameter, core.ErrInvalidTopology)
	assert.Equal(t, "merge", core.ViolationMerge.String())
}
