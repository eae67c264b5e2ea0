// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// PageRank computes the stationary distribution of a random surfer who
// follows an out-edge with probability Damping (proportionally to edge
// weight) and teleports uniformly otherwise. Dangling nodes spread their
// mass uniformly. Scores sum to 1. Edge weights must be non-negative.
func PageRank[K comparable](g core.Reader[K], opts PageRankOptions) (*PageRankResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d := newDense(g)

	return pageRank(d, uniform(d.n()), opts)
}

// PersonalizedPageRank teleports (and redistributes dangling mass) according
// to seeds instead of uniformly. Seed weights are normalized to sum 1; nodes
// absent from seeds get 0.
// Errors: ErrSeedNotFound, ErrBadOption when no seed has positive weight.
func PersonalizedPageRank[K comparable](g core.Reader[K], seeds map[K]float64, opts PageRankOptions) (*PageRankResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d := newDense(g)
	p := make([]float64, d.n())
	total := 0.0
	for id, w := range seeds {
		i, ok := d.pos[id]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrSeedNotFound, id)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: seed %v has negative weight %g", ErrBadOption, id, w)
		}
		p[i] = w
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: personalization needs a seed with positive weight", ErrBadOption)
	}
	for i := range p {
		p[i] /= total
	}

	return pageRank(d, p, opts)
}

func pageRank[K comparable](d *dense[K], teleport []float64, opts PageRankOptions) (*PageRankResult[K], error) {
	// 1) Resolve options. Zero Damping means unset.
	if opts.Damping == 0 {
		opts.Damping = DefaultDamping
	}
	if opts.Damping < 0 || opts.Damping > 1 {
		return nil, fmt.Errorf("%w: Damping must be in (0,1], got %g", ErrBadOption, opts.Damping)
	}
	maxIter, tol, err := iterationLimits(opts.MaxIterations, opts.Tolerance, DefaultMaxIterations)
	if err != nil {
		return nil, err
	}
	n := d.n()
	res := &PageRankResult[K]{Scores: Scores[K]{}}
	if n == 0 {
		res.Converged = true
		return res, nil
	}

	// 2) Out-weight totals; zero marks a dangling node.
	outW := make([]float64, n)
	for u := 0; u < n; u++ {
		for _, l := range d.out[u] {
			outW[u] += l.w
		}
	}

	// 3) Power iteration.
	x := uniform(n)
	next := make([]float64, n)
	damp := opts.Damping
	for res.Iterations < maxIter {
		res.Iterations++
		dangling := 0.0
		for u := 0; u < n; u++ {
			if outW[u] <= 0 {
				dangling += x[u]
			}
		}
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, l := range d.in[v] {
				if outW[l.to] > 0 {
					sum += x[l.to] * l.w / outW[l.to]
				}
			}
			next[v] = damp*sum + (damp*dangling+(1-damp))*teleport[v]
		}
		res.MaxDiff = maxDelta(next, x)
		x, next = next, x
		if res.MaxDiff < tol {
			res.Converged = true
			break
		}
	}
	res.Scores = d.scores(x)

	return res, nil
}
