// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/matrix"
)

// The Laplacian of a 4-cycle has spectrum {0, 2, 2, 4}; the single zero
// eigenvalue says the graph is connected.
func ExampleAdjacency_Spectrum() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "d")
	_, _ = g.AddEdge("d", "a")

	a, _ := matrix.NewAdjacency[string](g, matrix.Options{})
	vals, _ := a.Spectrum(false)
	for _, v := range vals {
		fmt.Print(math.Round(v)+0, " ")
	}
	fmt.Println()
	// Output: 0 2 2 4
}
