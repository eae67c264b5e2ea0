// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: single-source shortest paths with non-negative weights.
// Determinism:
//   - Nodes are relaxed in neighbor order. Equal-distance nodes settle in
//     heap order, which is fixed for a given graph but not insertion order.

package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/pqueue"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// With WithTarget only the target's entry is guaranteed final.
//
// Non-negative weights are a precondition. By default it is not checked and
// negative weights yield unspecified distances; WithNegativeWeightCheck turns
// the violation into ErrNegativeWeight.
//
// Steps:
//  1. Validate graph, source and options.
//  2. Optionally scan for negative weights.
//  3. Settle nodes in distance order from a priority queue, relaxing each
//     out-neighbor; stale entries are refreshed through UpdatePriority.
//
// Complexity: O((V + E) · V) worst case with the linear UpdatePriority scan,
// O((V + E) log V) when updates are rare.
func Dijkstra[K comparable](g core.Reader[K], source K, opts ...Option[K]) (*Result[K], error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("%w: MaxDistance must be >= 0, got %g", ErrBadOption, cfg.MaxDistance)
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, fmt.Errorf("%w: InfEdgeThreshold must be > 0, got %g", ErrBadOption, cfg.InfEdgeThreshold)
	}

	// 2) Negative-weight scan.
	if cfg.CheckNegative {
		for u := range g.Nodes() {
			for v, w := range g.Neighbors(u) {
				if w < 0 {
					return nil, fmt.Errorf("%w: %v->%v weight=%g", ErrNegativeWeight, u, v, w)
				}
			}
		}
	}

	// 3) Main loop.
	r := newRunner(g, source, cfg)
	r.process()

	return r.res, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner[K comparable] struct {
	g       core.Reader[K]
	cfg     Options[K]
	res     *Result[K]
	settled map[K]bool
	pq      *pqueue.PriorityQueue[K]
}

func newRunner[K comparable](g core.Reader[K], source K, cfg Options[K]) *runner[K] {
	res := newResult(g, source)
	r := &runner[K]{
		g:       g,
		cfg:     cfg,
		res:     res,
		settled: make(map[K]bool, g.NodeCount()),
		pq:      pqueue.New[K](),
	}
	r.push(source, 0)

	return r
}

func newResult[K comparable](g core.Reader[K], source K) *Result[K] {
	res := &Result[K]{
		Source: source,
		Dist:   make(map[K]float64, g.NodeCount()),
		Prev:   make(map[K]K),
	}
	for v := range g.Nodes() {
		res.Dist[v] = math.Inf(1)
	}
	res.Dist[source] = 0

	return res
}

// push enqueues v or lowers its priority if already queued.
func (r *runner[K]) push(v K, dist float64) {
	if !r.pq.UpdatePriority(v, dist) {
		r.pq.Enqueue(v, dist)
	}
}

func (r *runner[K]) process() {
	for !r.pq.IsEmpty() {
		// 1) Pop the closest unsettled node.
		u, _, _ := r.pq.Dequeue()
		if r.settled[u] {
			continue
		}
		d := r.res.Dist[u]

		// 2) Stop once the frontier exceeds MaxDistance.
		if d > r.cfg.MaxDistance {
			break
		}
		r.settled[u] = true

		// 3) Early exit on the target.
		if r.cfg.HasTarget && u == r.cfg.Target {
			break
		}

		// 4) Relax out-neighbors.
		for v, w := range r.g.Neighbors(u) {
			if r.settled[v] || w >= r.cfg.InfEdgeThreshold {
				continue
			}
			nd := d + w
			if nd > r.cfg.MaxDistance || nd >= r.res.Dist[v] {
				continue
			}
			r.res.Dist[v] = nd
			r.res.Prev[v] = u
			r.push(v, nd)
		}
	}
}
