// SPDX-License-Identifier: MIT
package policy_test

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/policy"
)

func ExampleRoute() {
	g := core.NewGraph[int]()
	for i := 0; i < 5; i++ {
		_, _ = g.AddEdge(i, i+1)
	}

	p, _ := policy.Parse([]byte("preset: performance\ncsr_edge_threshold: 5\n"))
	fmt.Println(p.Recommend(g.NodeCount(), g.EdgeCount()))

	r := policy.Route[int](g, p)
	fmt.Println(r.NodeCount(), r.EdgeCount())
	// Output:
	// csr
	// 6 5
}
