// SPDX-License-Identifier: MIT
package components_test

import (
	"fmt"

	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/core"
)

// ExampleStrongly finds the two loops of a small call graph.
func ExampleStrongly() {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddEdge("main", "parse")
	_, _ = g.AddEdge("parse", "lex")
	_, _ = g.AddEdge("lex", "parse")
	_, _ = g.AddEdge("main", "run")
	_, _ = g.AddEdge("run", "main")

	res, _ := components.Strongly[string](g)
	for _, c := range res.Components {
		fmt.Println(c)
	}
	// Output:
	// [parse lex]
	// [main run]
}
