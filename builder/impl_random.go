// SPDX-License-Identifier: MIT
//
// File: impl_random.go
// Role: stochastic constructors: RandomSparse (Erdős–Rényi G(n,p)),
// PlantedPartition (stochastic block model) and RandomRegular.
// Determinism:
//   - All randomness comes from cfg.rng, consumed in a fixed order
//     (pairs in lexicographic order, each Bernoulli trial followed by the
//     weight draw of an accepted edge), so a seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

const (
	methodRandomSparse     = "RandomSparse"
	methodPlantedPartition = "PlantedPartition"
	methodRandomRegular    = "RandomRegular"

	minRandomNodes          = 1
	maxStubMatchingAttempts = 64
)

func checkProbability(method string, ps ...float64) error {
	for _, p := range ps {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
	}

	return nil
}

// bernoulliPairs visits every candidate pair once (i < j, or i != j on a
// directed graph) and links it with probability prob(i, j).
func bernoulliPairs(g *core.Graph[string], cfg builderConfig, method string, ids []string, prob func(i, j int) float64) error {
	directed := g.Directed()
	for i := range ids {
		start := i + 1
		if directed {
			start = 0
		}
		for j := start; j < len(ids); j++ {
			if i == j {
				continue
			}
			if cfg.rng.Float64() >= prob(i, j) {
				continue
			}
			if err := link(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// RandomSparse builds G(n, p): each candidate pair is linked independently
// with probability p. Requires a seeded builder.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids := addVertices(g, cfg, n)

		return bernoulliPairs(g, cfg, methodRandomSparse, ids, func(int, int) float64 { return p })
	}
}

// PlantedPartition builds groups blocks of size vertices each. Vertex i
// belongs to block i/size. Pairs inside a block are linked with
// probability pIn, pairs across blocks with pOut. With pIn well above pOut
// the blocks are the ground-truth communities.
func PlantedPartition(groups, size int, pIn, pOut float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if groups < 1 || size < 1 {
			return fmt.Errorf("%s: groups=%d, size=%d < 1: %w", methodPlantedPartition, groups, size, ErrTooFewVertices)
		}
		if err := checkProbability(methodPlantedPartition, pIn, pOut); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPlantedPartition, ErrNeedRandSource)
		}
		ids := addVertices(g, cfg, groups*size)

		return bernoulliPairs(g, cfg, methodPlantedPartition, ids, func(i, j int) float64 {
			if i/size == j/size {
				return pIn
			}
			return pOut
		})
	}
}

// RandomRegular builds an undirected d-regular graph by stub matching:
// n·d stubs are shuffled and paired, and the pairing is rejected and
// reshuffled while it would create a loop or parallel edge the graph does
// not allow. Requires an undirected graph, 0 <= d < n, n·d even and a
// seeded builder.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w", methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRandomNodes, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 1) Validate every pairing before touching g.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		mode := g.Config()
		valid := func() bool {
			seen := make(map[[2]int]bool, len(stubs)/2)
			for i := 0; i < len(stubs); i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v && !mode.AllowSelfLoops {
					return false
				}
				if u > v {
					u, v = v, u
				}
				if seen[[2]int{u, v}] && !mode.AllowParallelEdges {
					return false
				}
				seen[[2]int{u, v}] = true
			}
			return true
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !valid() {
				continue
			}
			// 2) Apply.
			ids := addVertices(g, cfg, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, cfg, methodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no valid pairing after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
