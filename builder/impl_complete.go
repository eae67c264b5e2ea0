// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete and CompleteBipartite constructors.
// Contract:
//   - Complete emits pairs (i, j), i < j, in lexicographic order; directed
//     graphs also receive j -> i right after i -> j.
//   - CompleteBipartite names sides leftPrefix+i and rightPrefix+j and emits
//     left-major order; edges point left to right on directed graphs.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphengine/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"

	minCompleteNodes = 1
	minPartitionSize = 1
)

// Complete builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err := link(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}. All left vertices are added before
// any right vertex.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := sideIDs(g, cfg.leftPrefix, n1)
		right := sideIDs(g, cfg.rightPrefix, n2)
		for _, u := range left {
			for _, v := range right {
				if err := link(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func sideIDs(g *core.Graph[string], prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
		g.AddNode(ids[i])
	}

	return ids
}
