// SPDX-License-Identifier: MIT
package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/shortestpath"
)

// ExampleDijkstra routes across a small road network.
func ExampleDijkstra() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("Depot", "Mill", core.WithWeight(7))
	_, _ = g.AddEdge("Depot", "Farm", core.WithWeight(2))
	_, _ = g.AddEdge("Farm", "Mill", core.WithWeight(3))
	_, _ = g.AddEdge("Mill", "Port", core.WithWeight(1))

	res, _ := shortestpath.Dijkstra[string](g, "Depot")
	d, _ := res.Distance("Port")
	path, _ := res.PathTo("Port")
	fmt.Println(d, path)
	// Output: 6 [Depot Farm Mill Port]
}

// ExampleBellmanFord detects a negative cycle.
func ExampleBellmanFord() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("X", "Y", core.WithWeight(1))
	_, _ = g.AddEdge("Y", "Z", core.WithWeight(-3))
	_, _ = g.AddEdge("Z", "X", core.WithWeight(1))

	res, _ := shortestpath.BellmanFord[string](g, "X")
	fmt.Println(res.HasNegativeCycle)
	// Output: true
}
