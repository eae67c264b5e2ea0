// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"github.com/katalvlaran/graphengine/core"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// Steps:
//  1. Validate and build the residual network.
//  2. Repeat until the sink is unreachable:
//     a. BFS assigns every node its distance (level) from the source.
//     b. DFS pushes flow along arcs that climb exactly one level, each
//     node resuming from its next untried arc, until the flow is blocking
//     or LevelRebuildInterval augmentations have been made.
//  3. Derive net flows, the minimum cut and the residual graph.
//
// Errors: as FordFulkerson.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic[K comparable](g core.Reader[K], source, sink K, opts Options) (*Result[K], error) {
	nw, err := newNetwork(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}

	n := len(nw.ids)
	level := make([]int, n)
	next := make([]int, n)
	maxFlow := 0.0
	augments := 0
	for nw.levels(level) {
		clear(next)
		for {
			pushed := nw.blockingPush(level, next, nw.s, math.Inf(1))
			if pushed <= nw.eps {
				break
			}
			maxFlow += pushed
			augments++
			nw.logAugment("dinic", pushed, maxFlow, level[nw.t])
			if opts.LevelRebuildInterval > 0 && augments%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return nw.result(maxFlow), nil
}

// levels fills level with BFS distances from the source (-1 when
// unreachable) and reports whether the sink was reached.
func (nw *network[K]) levels(level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[nw.s] = 0
	queue := []int{nw.s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range nw.adj[u] {
			if a.cap > nw.eps && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[nw.t] >= 0
}

// blockingPush sends up to available units from u toward the sink along
// the level graph and returns the amount sent. next[u] skips arcs already
// found useless in this phase.
func (nw *network[K]) blockingPush(level, next []int, u int, available float64) float64 {
	if u == nw.t {
		return available
	}
	for ; next[u] < len(nw.adj[u]); next[u]++ {
		i := next[u]
		a := nw.adj[u][i]
		if a.cap <= nw.eps || level[a.to] != level[u]+1 {
			continue
		}
		if pushed := nw.blockingPush(level, next, a.to, min(available, a.cap)); pushed > nw.eps {
			nw.push(u, i, pushed)
			return pushed
		}
	}

	return 0
}
