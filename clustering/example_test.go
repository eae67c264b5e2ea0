// SPDX-License-Identifier: MIT
package clustering_test

import (
	"fmt"

	"github.com/katalvlaran/graphengine/clustering"
	"github.com/katalvlaran/graphengine/core"
)

// ExampleKCore peels a small collaboration graph.
func ExampleKCore() {
	g := core.NewGraph[string]()
	for _, e := range [][2]string{{"ada", "bob"}, {"bob", "cy"}, {"ada", "cy"}, {"cy", "dee"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	res, _ := clustering.KCore[string](g)
	fmt.Println(res.Degeneracy, res.Core(2))
	// Output: 2 [ada bob cy]
}

// ExampleDendrogram_Cut flattens a single-linkage dendrogram into two clusters.
func ExampleDendrogram_Cut() {
	g := core.NewGraph[string]()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("D", "E")

	d, _ := clustering.Hierarchical[string](g, clustering.HierarchicalOptions{Linkage: clustering.Single})
	res, _ := d.Cut(2)
	fmt.Println(res.Clusters)
	// Output: [[A B C] [D E]]
}
