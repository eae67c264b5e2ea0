// SPDX-License-Identifier: MIT

package centrality

import (
	"github.com/katalvlaran/graphengine/core"
)

// HITS computes hub and authority scores. Each round sets
// authority[v] = Σ hub[u]·w(u,v) over in-neighbors and
// hub[v] = Σ authority[x]·w(v,x) over out-neighbors, then rescales both
// vectors to sum 1. On undirected graphs hubs equal authorities.
// A graph without edges keeps the uniform start.
func HITS[K comparable](g core.Reader[K], opts IterativeOptions) (*HITSResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	maxIter, tol, err := iterationLimits(opts.MaxIterations, opts.Tolerance, DefaultMaxIterations)
	if err != nil {
		return nil, err
	}
	d := newDense(g)
	n := d.n()
	if n == 0 {
		return &HITSResult[K]{Hubs: Scores[K]{}, Authorities: Scores[K]{}}, nil
	}

	hub, auth := uniform(n), uniform(n)
	nextHub, nextAuth := make([]float64, n), make([]float64, n)
	iterations := 0
	for iterations < maxIter {
		iterations++
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, l := range d.in[v] {
				sum += hub[l.to] * l.w
			}
			nextAuth[v] = sum
		}
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, l := range d.out[v] {
				sum += nextAuth[l.to] * l.w
			}
			nextHub[v] = sum
		}
		if !normalizeSum(nextAuth) || !normalizeSum(nextHub) {
			break
		}
		delta := max(maxDelta(nextHub, hub), maxDelta(nextAuth, auth))
		hub, nextHub = nextHub, hub
		auth, nextAuth = nextAuth, auth
		if delta < tol {
			break
		}
	}

	return &HITSResult[K]{Hubs: d.scores(hub), Authorities: d.scores(auth), Iterations: iterations}, nil
}

// normalizeSum rescales x to sum 1 and reports false when the sum is 0.
func normalizeSum(x []float64) bool {
	total := 0.0
	for _, s := range x {
		total += s
	}
	if total == 0 {
		return false
	}
	for i := range x {
		x[i] /= total
	}

	return true
}
