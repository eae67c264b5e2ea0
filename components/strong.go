// SPDX-License-Identifier: MIT
//
// File: strong.go
// Role: strongly connected components (Tarjan) and the condensation DAG.

package components

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/graphengine/core"
)

// tarjan holds the state of one Tarjan run over dense node indices.
type tarjan[K comparable] struct {
	graph    core.Reader[K]
	position map[K]int
	ids      []K
	stack    []int
	indices  []int
	lowlink  []int
	onStack  []bool
	index    int
	sccs     [][]int
}

// Strongly partitions g into strongly connected components with Tarjan's
// algorithm. Components appear in completion order, which is a reverse
// topological order of the condensation; members keep graph order.
// On an undirected graph the result equals Connected's partition.
// Complexity: O(V + E).
func Strongly[K comparable](g core.Reader[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	t := &tarjan[K]{
		graph:    g,
		position: make(map[K]int, n),
		ids:      make([]K, 0, n),
		indices:  make([]int, n),
		lowlink:  make([]int, n),
		onStack:  make([]bool, n),
	}
	for v := range g.Nodes() {
		t.position[v] = len(t.ids)
		t.ids = append(t.ids, v)
	}
	for i := range t.indices {
		t.indices[i] = -1
	}
	for i := range t.ids {
		if t.indices[i] == -1 {
			t.strongConnect(i)
		}
	}

	sets := make([][]K, len(t.sccs))
	for c, members := range t.sccs {
		slices.Sort(members)
		sets[c] = make([]K, len(members))
		for j, i := range members {
			sets[c][j] = t.ids[i]
		}
	}

	return newResult(sets), nil
}

// frame is one pending strongConnect call: node v and its neighbor cursor.
type frame struct {
	v    int
	nbrs []int
	next int
}

// open assigns v its index and lowlink, pushes it and captures its neighbors.
func (t *tarjan[K]) open(v int) frame {
	t.indices[v] = t.index
	t.lowlink[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	var nbrs []int
	for nb := range t.graph.Neighbors(t.ids[v]) {
		nbrs = append(nbrs, t.position[nb])
	}

	return frame{v: v, nbrs: nbrs}
}

// strongConnect runs Tarjan from root with an explicit frame stack, so depth
// is bounded by memory rather than the goroutine stack. Visiting order and
// component order match the recursive formulation.
func (t *tarjan[K]) strongConnect(root int) {
	frames := []frame{t.open(root)}
	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		if f.next < len(f.nbrs) {
			w := f.nbrs[f.next]
			f.next++
			if t.indices[w] == -1 {
				frames = append(frames, t.open(w))
			} else if t.onStack[w] {
				t.lowlink[f.v] = min(t.lowlink[f.v], t.indices[w])
			}
			continue
		}

		// All neighbors done: close v and report its lowlink to the caller.
		v := f.v
		frames = frames[:len(frames)-1]
		if t.lowlink[v] == t.indices[v] {
			var scc []int
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			t.sccs = append(t.sccs, scc)
		}
		if len(frames) > 0 {
			p := frames[len(frames)-1].v
			t.lowlink[p] = min(t.lowlink[p], t.lowlink[v])
		}
	}
}

// Condensation returns the graph whose nodes are the indices of
// res.Components and whose edges join components linked by at least one edge
// of g. Edge weights count the linking edges, each edge of g once. On a
// directed g with res from Strongly the result is a DAG; an undirected g
// yields an undirected quotient graph.
func Condensation[K comparable](g core.Reader[K], res *Result[K]) (*core.Graph[int], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dag := core.NewGraph[int](
		core.WithDirected(g.Directed()),
		core.WithViolationPolicy(core.ViolationMerge),
	)
	for c := range res.Components {
		dag.AddNode(c)
	}
	for v := range g.Nodes() {
		cv, err := res.ComponentOf(v)
		if err != nil {
			return nil, err
		}
		for nb := range g.Neighbors(v) {
			cn, err := res.ComponentOf(nb)
			if err != nil {
				return nil, err
			}
			// Undirected edges are seen from both endpoints; keep one side.
			if cv == cn || (!g.Directed() && cv > cn) {
				continue
			}
			w := 1.0
			if e, err := dag.GetEdge(cv, cn); err == nil {
				w = e.Weight + 1
			}
			if _, err := dag.AddEdge(cv, cn, core.WithWeight(w)); err != nil {
				return nil, fmt.Errorf("components: condensation: %w", err)
			}
		}
	}

	return dag, nil
}
