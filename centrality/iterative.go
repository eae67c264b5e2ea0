// SPDX-License-Identifier: MIT
//
// File: iterative.go
// Role: fixed-point centralities (eigenvector, Katz).
// Pattern shared with pagerank.go and hits.go:
//  1. x := uniform start.
//  2. Repeat up to MaxIterations: x' := update(x).
//  3. Stop once max |x'[v] - x[v]| < Tolerance. Running out of iterations is
//     not an error; the last estimate is returned.

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphengine/core"
)

// uniform returns a vector of n copies of 1/n.
func uniform(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}

	return x
}

// maxDelta returns max |a[i] - b[i]|.
func maxDelta(a, b []float64) float64 {
	m := 0.0
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}

	return m
}

// Eigenvector computes eigenvector centrality by power iteration on A+I
// (the shift keeps bipartite graphs from oscillating), summing over
// in-neighbors weighted by edge weight. Scores have unit Euclidean norm.
func Eigenvector[K comparable](g core.Reader[K], opts IterativeOptions) (*IterativeResult[K], error) {
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
		return &IterativeResult[K]{Scores: Scores[K]{}}, nil
	}

	x := uniform(n)
	next := make([]float64, n)
	iterations := 0
	for iterations < maxIter {
		iterations++
		for v := 0; v < n; v++ {
			sum := x[v]
			for _, l := range d.in[v] {
				sum += x[l.to] * l.w
			}
			next[v] = sum
		}
		norm := 0.0
		for _, s := range next {
			norm += s * s
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			break
		}
		for v := range next {
			next[v] /= norm
		}
		delta := maxDelta(next, x)
		x, next = next, x
		if delta < tol {
			break
		}
	}

	return &IterativeResult[K]{Scores: d.scores(x), Iterations: iterations}, nil
}

// Katz computes score[v] = Alpha · Σ score[u] over in-neighbors u of v
// (all neighbors on undirected graphs) + Beta. Alpha should stay below
// 1/λmax; larger values diverge and the last estimate is returned.
// Normalized rescales to [0,1] by min-max; when every score is equal they
// all become 1.
func Katz[K comparable](g core.Reader[K], opts KatzOptions) (*IterativeResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if opts.Alpha <= 0 {
		return nil, fmt.Errorf("%w: Katz Alpha must be > 0, got %g", ErrBadOption, opts.Alpha)
	}
	maxIter, tol, err := iterationLimits(opts.MaxIterations, opts.Tolerance, DefaultKatzOptions().MaxIterations)
	if err != nil {
		return nil, err
	}
	d := newDense(g)
	n := d.n()
	if n == 0 {
		return &IterativeResult[K]{Scores: Scores[K]{}}, nil
	}

	x := uniform(n)
	next := make([]float64, n)
	iterations := 0
	for iterations < maxIter {
		iterations++
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, l := range d.in[v] {
				sum += x[l.to]
			}
			next[v] = opts.Alpha*sum + opts.Beta
		}
		delta := maxDelta(next, x)
		x, next = next, x
		if delta < tol || math.IsInf(delta, 0) || math.IsNaN(delta) {
			break
		}
	}

	if opts.Normalized {
		minMax(x)
	}

	return &IterativeResult[K]{Scores: d.scores(x), Iterations: iterations}, nil
}

// minMax rescales x in place to [0,1].
func minMax(x []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range x {
		lo, hi = math.Min(lo, s), math.Max(hi, s)
	}
	for i := range x {
		if hi == lo {
			x[i] = 1
		} else {
			x[i] = (x[i] - lo) / (hi - lo)
		}
	}
}
