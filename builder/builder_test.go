// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphengine/builder"
	"github.com/katalvlaran/graphengine/community"
	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/matching"
)

func build(t *testing.T, gopts []core.GraphOption, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestClassicTopologies(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		check        func(t *testing.T, g *core.Graph[string])
	}{
		{"Path(4)", builder.Path(4), 4, 3, func(t *testing.T, g *core.Graph[string]) {
			assert.Equal(t, []string{"0", "1", "2", "3"}, g.NodeIDs())
			assert.True(t, g.HasEdge("2", "3"))
		}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, func(t *testing.T, g *core.Graph[string]) {
			assert.True(t, g.HasEdge("4", "0"))
		}},
		{"Star(5)", builder.Star(5), 5, 4, func(t *testing.T, g *core.Graph[string]) {
			d, err := g.Degree("0")
			require.NoError(t, err)
			assert.Equal(t, 4, d)
		}},
		{"Wheel(6)", builder.Wheel(6), 6, 10, func(t *testing.T, g *core.Graph[string]) {
			for _, rim := range []string{"1", "2", "3", "4", "5"} {
				d, err := g.Degree(rim)
				require.NoError(t, err)
				assert.Equal(t, 3, d, rim)
			}
		}},
		{"Complete(4)", builder.Complete(4), 4, 6, nil},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, func(t *testing.T, g *core.Graph[string]) {
			assert.True(t, g.HasEdge(builder.GridID(1, 1), builder.GridID(2, 1)))
			assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestDirectedComplete(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(4))
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"))
}

func TestCompleteBipartite(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithPartitionPrefix("U", "V")}, builder.CompleteBipartite(2, 3))
	assert.Equal(t, []string{"U0", "U1", "V0", "V1", "V2"}, g.NodeIDs())
	assert.Equal(t, 6, g.EdgeCount())

	bp, err := matching.Bipartition[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"U0", "U1"}, bp.Left)

	res, err := matching.MaximumBipartite[string](g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Size())
}

func TestParameterValidation(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path":              builder.Path(1),
		"Cycle":             builder.Cycle(2),
		"Star":              builder.Star(1),
		"Wheel":             builder.Wheel(3),
		"Complete":          builder.Complete(0),
		"CompleteBipartite": builder.CompleteBipartite(0, 3),
		"Grid":              builder.Grid(0, 3),
		"RandomRegularOdd":  builder.RandomRegular(5, 3),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
		assert.ErrorIs(t, err, core.ErrInvalidParameter, name)
	}

	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full := build(t, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1))
	assert.Equal(t, 10, full.EdgeCount())
	empty := build(t, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 0))
	assert.Zero(t, empty.EdgeCount())
	dfull := build(t, []core.GraphOption{core.WithDirected(true)}, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1))
	assert.Equal(t, 20, dfull.EdgeCount())

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithIntegerWeight(1, 5)}
	a := build(t, nil, opts, builder.RandomSparse(30, 0.2))
	b := build(t, nil, []builder.BuilderOption{builder.WithSeed(42), builder.WithIntegerWeight(1, 5)}, builder.RandomSparse(30, 0.2))
	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 5.0)
		assert.Equal(t, float64(int(e.Weight)), e.Weight)
	}
}

func TestPlantedPartitionRecoveredByLouvain(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.PlantedPartition(2, 5, 1, 0))
	assert.Equal(t, 20, g.EdgeCount())

	cc, err := components.Connected[string](g)
	require.NoError(t, err)
	assert.Equal(t, 2, cc.Count())

	res, err := community.Louvain[string](g, community.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1", "2", "3", "4"}, {"5", "6", "7", "8", "9"}}, res.Communities)
}

func TestRandomRegular(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(10, 2))
	assert.Equal(t, 10, g.EdgeCount())
	for id := range g.Nodes() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 2, d, id)
	}

	_, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(4, 2))
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	_, err = builder.BuildGraph(nil, nil, builder.RandomRegular(4, 2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	isolated := build(t, nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(3, 0))
	assert.Equal(t, 3, isolated.NodeCount())
	assert.Zero(t, isolated.EdgeCount())
}

func TestComposeAndIDSchemes(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Star(3))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("x")}, builder.Path(2)))
	assert.Equal(t, []string{"A", "B", "C", "x0", "x1"}, g.NodeIDs())

	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "ZZ", builder.ExcelColumnIDFn(701))
	assert.Equal(t, "AAA", builder.ExcelColumnIDFn(702))
	assert.Equal(t, "10", builder.AlphanumericIDFn(36))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntegerWeightFn(2, 9)(nil))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(nil), "nil rng falls back only when sampling is needed")

	g := build(t, nil, []builder.BuilderOption{builder.WithConstantWeight(3)}, builder.Cycle(3))
	for _, e := range g.Edges() {
		assert.Equal(t, 3.0, e.Weight)
	}
}

func TestCellGridIslands(t *testing.T) {
	cells := [][]int{
		{1, 0, 1},
		{1, 0, 0},
		{0, 1, 1},
	}

	g4 := build(t, nil, nil, builder.CellGrid(cells, 1, builder.Conn4))
	assert.Equal(t, 5, g4.NodeCount())
	assert.Equal(t, 2, g4.EdgeCount())
	assert.False(t, g4.HasNode(builder.GridID(0, 1)), "water has no vertex")
	data, err := g4.NodeData(builder.GridID(2, 1))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"row": 2, "col": 1, "value": 1}, data)
	islands, err := components.Connected[string](g4)
	require.NoError(t, err)
	assert.Equal(t, 3, islands.Count())

	g8 := build(t, nil, nil, builder.CellGrid(cells, 1, builder.Conn8))
	assert.Equal(t, 3, g8.EdgeCount())
	assert.True(t, g8.HasEdge(builder.GridID(1, 0), builder.GridID(2, 1)))
	islands, err = components.Connected[string](g8)
	require.NoError(t, err)
	assert.Equal(t, 2, islands.Count())
	assert.Equal(t, []string{"0,0", "1,0", "2,1", "2,2"}, islands.Largest())

	_, err = builder.BuildGraph(nil, nil, builder.CellGrid([][]int{{1, 1}, {1}}, 1, builder.Conn4))
	assert.ErrorIs(t, err, builder.ErrBadCellGrid)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = builder.BuildGraph(nil, nil, builder.CellGrid(nil, 1, builder.Conn4))
	assert.ErrorIs(t, err, builder.ErrBadCellGrid)
}
