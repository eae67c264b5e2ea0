// SPDX-License-Identifier: MIT
// TopologicalSort computes a linear ordering of nodes such that for every
// directed edge u→v, u appears before v.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K comparable] struct {
	graph core.Reader[K]
	state map[K]int
	order []K
}

// TopologicalSort returns nodes in reverse DFS post-order, starting DFS from
// each unvisited node in graph order, so the result is deterministic.
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected (naming a node on the cycle).
func TopologicalSort[K comparable](g core.Reader[K]) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	sorter := &topoSorter[K]{
		graph: g,
		state: make(map[K]int, g.NodeCount()),
		order: make([]K, 0, g.NodeCount()),
	}
	for v := range g.Nodes() {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter[K]) visit(id K) error {
	t.state[id] = Gray
	for nb := range t.graph.Neighbors(id) {
		switch t.state[nb] {
		case Gray:
			return fmt.Errorf("%w: back-edge %v→%v", ErrCycleDetected, id, nb)
		case White:
			if err := t.visit(nb); err != nil {
				return err
			}
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
