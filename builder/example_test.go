// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphengine/builder"
	"github.com/katalvlaran/graphengine/shortestpath"
)

// ExampleGrid measures the Manhattan distance across a 3×3 lattice.
func ExampleGrid() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	fmt.Println(g.NodeCount(), g.EdgeCount())

	res, _ := shortestpath.Dijkstra[string](g, builder.GridID(0, 0))
	fmt.Println(res.Dist[builder.GridID(2, 2)])
	// Output:
	// 9 12
	// 4
}
