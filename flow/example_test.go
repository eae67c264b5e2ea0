// SPDX-License-Identifier: MIT
package flow_test

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/flow"
)

// ExampleEdmondsKarp sends water through a two-pipe network.
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
func ExampleEdmondsKarp() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("s", "a", core.WithWeight(3))
	_, _ = g.AddEdge("a", "t", core.WithWeight(2))
	_, _ = g.AddEdge("s", "b", core.WithWeight(2))
	_, _ = g.AddEdge("b", "t", core.WithWeight(3))

	res, _ := flow.EdmondsKarp[string](g, "s", "t", flow.DefaultOptions())
	fmt.Println(res.MaxFlow, res.MinCut)
	// Output: 4 [s a]
}

// ExampleDinic shows that the result does not depend on the algorithm.
func ExampleDinic() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("s", "a", core.WithWeight(5))
	_, _ = g.AddEdge("a", "t", core.WithWeight(4))
	_, _ = g.AddEdge("s", "b", core.WithWeight(3))
	_, _ = g.AddEdge("b", "t", core.WithWeight(6))

	res, _ := flow.Dinic[string](g, "s", "t", flow.DefaultOptions())
	fmt.Println(res.MaxFlow)
	// Output: 7
}
