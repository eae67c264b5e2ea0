// SPDX-License-Identifier: MIT
// DetectCycles reports the cycles closed by DFS back-edges in directed and
// undirected graphs. Each cycle is rotated to start at its earliest node (in
// graph order) so the output is canonical and deterministic.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = cycles found, L = average cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"slices"

	"github.com/katalvlaran/graphengine/core"
)

// cycleFinder holds the state of one cycle search.
type cycleFinder[K comparable] struct {
	graph    core.Reader[K]
	directed bool
	position map[K]int // node → index in graph order
	state    map[K]int
	path     []K
	seen     map[string]struct{}
	cycles   [][]K
	stop     bool // stop at the first cycle
}

func newCycleFinder[K comparable](g core.Reader[K], stop bool) *cycleFinder[K] {
	f := &cycleFinder[K]{
		graph:    g,
		directed: g.Directed(),
		position: make(map[K]int, g.NodeCount()),
		state:    make(map[K]int, g.NodeCount()),
		seen:     make(map[string]struct{}),
		stop:     stop,
	}
	for v := range g.Nodes() {
		f.position[v] = len(f.position)
	}

	return f
}

func (f *cycleFinder[K]) run() {
	for v := range f.graph.Nodes() {
		if f.state[v] == White {
			f.visit(v, v, false)
		}
		if f.stop && len(f.cycles) > 0 {
			return
		}
	}
}

// visit descends from id. In undirected graphs the arc back to the DFS
// parent is skipped once, so a parallel edge still closes a 2-cycle.
func (f *cycleFinder[K]) visit(id, parent K, hasParent bool) {
	f.state[id] = Gray
	f.path = append(f.path, id)

	parentSkipped := false
	for nb := range f.graph.Neighbors(id) {
		if f.stop && len(f.cycles) > 0 {
			break
		}
		if !f.directed && hasParent && !parentSkipped && nb == parent {
			parentSkipped = true
			continue
		}
		switch f.state[nb] {
		case White:
			f.visit(nb, id, true)
		case Gray:
			f.record(nb)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black
}

// record extracts the path segment from start to the current node, closes
// it, canonicalizes it and stores it unless already seen.
func (f *cycleFinder[K]) record(start K) {
	idx := indexOf(f.path, start)
	base := slices.Clone(f.path[idx:])
	canon := f.canonical(base)
	pos := f.positions(canon)
	sig := signature(pos)
	if _, dup := f.seen[sig]; dup {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, append(canon, canon[0]))
}

// canonical rotates base to start at its earliest node. For undirected
// cycles of length ≥ 3 the traversal direction with the earlier second node wins.
func (f *cycleFinder[K]) canonical(base []K) []K {
	pos := f.positions(base)
	fwd := rotate(base, minIndex(pos))
	if f.directed || len(base) < 3 {
		return fwd
	}
	rev := slices.Clone(base)
	slices.Reverse(rev)
	bwd := rotate(rev, minIndex(f.positions(rev)))
	if f.position[bwd[1]] < f.position[fwd[1]] {
		return bwd
	}

	return fwd
}

func (f *cycleFinder[K]) positions(seq []K) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = f.position[v]
	}

	return out
}

// DetectCycles inspects g for cycles closed by DFS back-edges.
// Returns (true, cycles) when any exist; each cycle is closed ([v0, …, v0]).
// Self-loops yield [v, v]; undirected parallel edges yield [u, v, u].
// Cycles are sorted by their node positions in graph order.
func DetectCycles[K comparable](g core.Reader[K]) (bool, [][]K, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	f := newCycleFinder(g, false)
	f.run()
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, func(a, b []K) int {
		return slices.Compare(f.positions(a), f.positions(b))
	})

	return true, f.cycles, nil
}

// HasCycle reports whether g contains any cycle, stopping at the first one.
func HasCycle[K comparable](g core.Reader[K]) bool {
	if g == nil {
		return false
	}
	f := newCycleFinder(g, true)
	f.run()

	return len(f.cycles) > 0
}
