// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: residual network shared by every max-flow algorithm.
// Determinism:
//   - Arcs keep the order in which the source Reader yields neighbors, so
//     augmenting-path searches are reproducible.

package flow

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphengine/core"
)

// arc is one residual arc. Every arc has a twin at adj[to][rev] going the
// other way; pushing d along an arc moves d capacity onto its twin.
type arc struct {
	to, rev int
	cap     float64 // residual capacity
	orig    float64 // initial capacity, 0 for a pure reverse arc
}

// step records how a search reached a node: through adj[from][idx].
type step struct {
	from, idx int
}

// network is the residual graph over dense indices.
type network[K comparable] struct {
	ids  []K
	pos  map[K]int
	adj  [][]arc
	s, t int
	eps  float64
	log  zerolog.Logger
}

// newNetwork validates the request and builds the residual network of g.
// Parallel edges are summed, self-loops dropped and capacities <= eps
// ignored. An undirected edge yields one arc each way with the full capacity.
//
// Errors: ErrGraphNil, ErrBadOption, ErrSourceNotFound, ErrSinkNotFound,
// ErrSourceIsSink, EdgeError.
func newNetwork[K comparable](g core.Reader[K], source, sink K, opts *Options) (*network[K], error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	// 2) Index nodes.
	nw := &network[K]{pos: make(map[K]int, g.NodeCount()), eps: opts.Epsilon, log: opts.Logger}
	for v := range g.Nodes() {
		nw.pos[v] = len(nw.ids)
		nw.ids = append(nw.ids, v)
	}
	nw.adj = make([][]arc, len(nw.ids))
	nw.s, nw.t = nw.pos[source], nw.pos[sink]

	// 3) Aggregate capacities per ordered pair in first-seen order.
	type pair struct{ u, v int }
	slot := make(map[pair]int)
	var pairs []pair
	var caps []float64
	for i, u := range nw.ids {
		for v, w := range g.Neighbors(u) {
			if v == u {
				continue
			}
			if w < -nw.eps {
				return nil, EdgeError{From: u, To: v, Cap: w}
			}
			k := pair{i, nw.pos[v]}
			idx, ok := slot[k]
			if !ok {
				idx = len(pairs)
				slot[k] = idx
				pairs = append(pairs, k)
				caps = append(caps, 0)
			}
			caps[idx] += w
		}
	}

	// 4) Materialize arcs above eps.
	for i, p := range pairs {
		if caps[i] > nw.eps {
			nw.addArc(p.u, p.v, caps[i])
		}
	}

	return nw, nil
}

func (nw *network[K]) addArc(u, v int, c float64) {
	nw.adj[u] = append(nw.adj[u], arc{to: v, rev: len(nw.adj[v]), cap: c, orig: c})
	nw.adj[v] = append(nw.adj[v], arc{to: u, rev: len(nw.adj[u]) - 1})
}

// push sends d along adj[u][i].
func (nw *network[K]) push(u, i int, d float64) {
	a := &nw.adj[u][i]
	a.cap -= d
	nw.adj[a.to][a.rev].cap += d
}

// augment pushes the bottleneck along the path recorded in parent (sink
// back to source) and returns it with the path length.
func (nw *network[K]) augment(parent []step) (float64, int) {
	delta, hops := -1.0, 0
	for v := nw.t; v != nw.s; v = parent[v].from {
		c := nw.adj[parent[v].from][parent[v].idx].cap
		if delta < 0 || c < delta {
			delta = c
		}
		hops++
	}
	for v := nw.t; v != nw.s; v = parent[v].from {
		nw.push(parent[v].from, parent[v].idx, delta)
	}

	return delta, hops
}

// logAugment records one augmentation.
func (nw *network[K]) logAugment(algorithm string, delta, total float64, hops int) {
	nw.log.Debug().
		Str("algorithm", algorithm).
		Float64("delta", delta).
		Int("hops", hops).
		Float64("total", total).
		Msg("augmenting path")
}

// reachable marks the nodes reachable from the source over arcs with
// residual capacity above eps.
func (nw *network[K]) reachable() []bool {
	seen := make([]bool, len(nw.ids))
	seen[nw.s] = true
	queue := []int{nw.s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range nw.adj[u] {
			if a.cap > nw.eps && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return seen
}

// result packages the final state of the network.
func (nw *network[K]) result(maxFlow float64) *Result[K] {
	res := &Result[K]{MaxFlow: maxFlow, Flow: make(map[K]map[K]float64)}

	// 1) Net flow per ordered pair; opposite flows cancel.
	type pair struct{ u, v int }
	net := make(map[pair]float64)
	listed := make(map[pair]bool)
	var order []pair
	for u, arcs := range nw.adj {
		for _, a := range arcs {
			if a.orig <= 0 {
				continue
			}
			f := a.orig - a.cap
			fwd := pair{u, a.to}
			if !listed[fwd] {
				listed[fwd] = true
				order = append(order, fwd)
			}
			net[fwd] += f
			net[pair{a.to, u}] -= f
		}
	}
	for _, p := range order {
		if f := net[p]; f > nw.eps {
			u, v := nw.ids[p.u], nw.ids[p.v]
			if res.Flow[u] == nil {
				res.Flow[u] = make(map[K]float64)
			}
			res.Flow[u][v] = f
		}
	}

	// 2) Minimum cut from residual reachability.
	side := nw.reachable()
	for i, id := range nw.ids {
		if !side[i] {
			continue
		}
		res.MinCut = append(res.MinCut, id)
		for _, a := range nw.adj[i] {
			if a.orig > 0 && !side[a.to] {
				res.CutEdges = append(res.CutEdges, core.Edge[K]{From: id, To: nw.ids[a.to], Weight: a.orig})
			}
		}
	}

	// 3) Residual graph: remaining capacity per ordered pair.
	res.Residual = core.NewGraph[K](core.WithDirected(true))
	for _, id := range nw.ids {
		res.Residual.AddNode(id)
	}
	for u, arcs := range nw.adj {
		rem := make(map[int]float64)
		var targets []int
		for _, a := range arcs {
			if _, ok := rem[a.to]; !ok {
				targets = append(targets, a.to)
			}
			rem[a.to] += a.cap
		}
		for _, v := range targets {
			if rem[v] > nw.eps {
				_, _ = res.Residual.AddEdge(nw.ids[u], nw.ids[v], core.WithWeight(rem[v]))
			}
		}
	}

	return res
}
