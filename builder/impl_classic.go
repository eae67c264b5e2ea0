// SPDX-License-Identifier: MIT
//
// File: impl_classic.go
// Role: Path, Cycle, Star and Wheel constructors.
// Contract:
//   - Vertices are cfg.idFn(0..n-1); Star and Wheel use index 0 as the hub.
//   - On directed graphs edges follow increasing index (i -> i+1) and point
//     from the hub outwards.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path builds P_n: edges i-(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path plus the closing edge (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds K_{1,n-1}: hub 0 joined to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a rim cycle over 1..n-1, then spokes from hub 0.
// Rim edges are emitted before spokes.
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := link(g, cfg, methodWheel, ids[1+i], ids[1+(i+1)%rim]); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodWheel, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
