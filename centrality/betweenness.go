// SPDX-License-Identifier: MIT
//
// File: betweenness.go
// Role: Brandes betweenness for nodes and edges.
// Determinism:
//   - Sources are processed in node order and predecessors in neighbor
//     order, so floating-point accumulation is reproducible.

package centrality

import (
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/pqueue"
)

// EdgeScore is the betweenness of the edge From-To. For undirected graphs
// From is the endpoint that comes first in node order.
type EdgeScore[K comparable] struct {
	From, To K
	Score    float64
}

// brandes holds the per-source state of one shortest-path DAG.
type brandes struct {
	stack []int   // nodes in non-decreasing distance order
	preds [][]int // predecessors on shortest paths, one entry per arc
	sigma []float64
	delta []float64
}

func newBrandes(n int) *brandes {
	return &brandes{
		preds: make([][]int, n),
		sigma: make([]float64, n),
		delta: make([]float64, n),
	}
}

func (b *brandes) reset() {
	b.stack = b.stack[:0]
	for i := range b.preds {
		b.preds[i] = b.preds[i][:0]
		b.sigma[i] = 0
		b.delta[i] = 0
	}
}

// bfsFrom fills the shortest-path DAG from s counting hops.
func (b *brandes) bfsFrom(out [][]link, s int) {
	dist := make([]int, len(out))
	for i := range dist {
		dist[i] = -1
	}
	dist[s], b.sigma[s] = 0, 1
	queue := []int{s}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		b.stack = append(b.stack, v)
		for _, l := range out[v] {
			w := l.to
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				b.sigma[w] += b.sigma[v]
				b.preds[w] = append(b.preds[w], v)
			}
		}
	}
}

// settle is a Dijkstra queue entry: node reached through pred.
type settle struct{ node, pred int }

// dijkstraFrom fills the shortest-path DAG from s using edge weights.
func (b *brandes) dijkstraFrom(out [][]link, s int) {
	n := len(out)
	final := make([]bool, n)
	seen := make([]float64, n)
	reached := make([]bool, n)
	q := pqueue.New[settle]()
	q.Enqueue(settle{node: s, pred: s}, 0)
	b.sigma[s] = 1
	reached[s] = true
	for !q.IsEmpty() {
		e, dist, _ := q.Dequeue()
		v := e.node
		if final[v] {
			continue
		}
		if v != s {
			b.sigma[v] += b.sigma[e.pred]
		}
		b.stack = append(b.stack, v)
		final[v] = true
		for _, l := range out[v] {
			w, alt := l.to, dist+l.w
			switch {
			case final[w]:
			case !reached[w] || alt < seen[w]:
				reached[w], seen[w] = true, alt
				q.Enqueue(settle{node: w, pred: v}, alt)
				b.sigma[w] = 0
				b.preds[w] = append(b.preds[w][:0], v)
			case alt == seen[w]:
				b.sigma[w] += b.sigma[v]
				b.preds[w] = append(b.preds[w], v)
			}
		}
	}
}

// Betweenness computes node betweenness with Brandes' algorithm.
//
// Steps:
//  1. For each source s, build the shortest-path DAG (BFS, or Dijkstra when
//     Weighted) with path counts sigma.
//  2. Walk nodes back in reverse distance order accumulating dependencies
//     delta[v] += sigma[v]/sigma[w] · (1 + delta[w]).
//  3. Rescale (see BetweennessOptions).
//
// Complexity: O(V·E) unweighted, O(V·E + V² log V) weighted.
func Betweenness[K comparable](g core.Reader[K], opts BetweennessOptions) (Scores[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d := newDense(g)
	n := d.n()
	bc := make([]float64, n)
	b := newBrandes(n)

	for s := 0; s < n; s++ {
		b.reset()
		if opts.Weighted {
			b.dijkstraFrom(d.out, s)
		} else {
			b.bfsFrom(d.out, s)
		}
		if opts.Endpoints {
			bc[s] += float64(len(b.stack) - 1)
		}
		for i := len(b.stack) - 1; i >= 0; i-- {
			w := b.stack[i]
			coeff := (1 + b.delta[w]) / b.sigma[w]
			for _, v := range b.preds[w] {
				b.delta[v] += b.sigma[v] * coeff
			}
			if w == s {
				continue
			}
			bc[w] += b.delta[w]
			if opts.Endpoints {
				bc[w]++
			}
		}
	}

	if scale, ok := nodeScale(n, d.directed, opts); ok {
		for i := range bc {
			bc[i] *= scale
		}
	}

	return d.scores(bc), nil
}

// nodeScale mirrors the usual betweenness normalization conventions.
func nodeScale(n int, directed bool, opts BetweennessOptions) (float64, bool) {
	switch {
	case opts.Normalized && opts.Endpoints:
		if n < 2 {
			return 0, false
		}
		return 1 / float64(n*(n-1)), true
	case opts.Normalized:
		if n <= 2 {
			return 0, false
		}
		return 1 / float64((n-1)*(n-2)), true
	case !directed:
		return 0.5, true
	default:
		return 0, false
	}
}

// EdgeBetweenness computes the betweenness of every edge (parallel edges
// share one entry) in graph order: node order, then neighbor order.
// Normalized rescales by 1/(n(n-1)); unnormalized undirected scores are halved.
func EdgeBetweenness[K comparable](g core.Reader[K], opts BetweennessOptions) ([]EdgeScore[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d := newDense(g)
	n := d.n()

	type pair struct{ u, v int }
	key := func(u, v int) pair {
		if !d.directed && v < u {
			u, v = v, u
		}
		return pair{u, v}
	}
	slot := make(map[pair]int)
	var order []pair
	for u := 0; u < n; u++ {
		for _, l := range d.out[u] {
			k := key(u, l.to)
			if _, ok := slot[k]; !ok {
				slot[k] = len(order)
				order = append(order, k)
			}
		}
	}

	eb := make([]float64, len(order))
	b := newBrandes(n)
	for s := 0; s < n; s++ {
		b.reset()
		if opts.Weighted {
			b.dijkstraFrom(d.out, s)
		} else {
			b.bfsFrom(d.out, s)
		}
		for i := len(b.stack) - 1; i >= 0; i-- {
			w := b.stack[i]
			coeff := (1 + b.delta[w]) / b.sigma[w]
			for _, v := range b.preds[w] {
				c := b.sigma[v] * coeff
				eb[slot[key(v, w)]] += c
				b.delta[v] += c
			}
		}
	}

	scale, rescale := 1.0, false
	switch {
	case opts.Normalized && n > 1:
		scale, rescale = 1/float64(n*(n-1)), true
	case !opts.Normalized && !d.directed:
		scale, rescale = 0.5, true
	}

	out := make([]EdgeScore[K], len(order))
	for i, k := range order {
		s := eb[i]
		if rescale {
			s *= scale
		}
		out[i] = EdgeScore[K]{From: d.ids[k.u], To: d.ids[k.v], Score: s}
	}

	return out, nil
}
