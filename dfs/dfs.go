// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on
// any core.Reader.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// walker encapsulates state during DFS.
type walker[K comparable] struct {
	graph core.Reader[K]
	opts  Options[K]
	res   *Result[K]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components in graph order; otherwise it starts only from start.
// Neighbors are explored in the order the Reader yields them.
// On a hook error the partial result is returned with the wrapped error.
func DFS[K comparable](g core.Reader[K], start K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	res := &Result[K]{
		Order:    make([]K, 0, n),
		Preorder: make([]K, 0, n),
		Depth:    make(map[K]int, n),
		Parent:   make(map[K]K, n),
		Visited:  make(map[K]bool, n),
	}
	w := &walker[K]{graph: g, opts: o, res: res}

	// 5. Traverse: forest or single tree
	if !o.FullTraversal {
		return res, w.traverse(start, 0)
	}
	for v := range g.Nodes() {
		if res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits id at the given depth and recurses into its neighbors.
func (w *walker[K]) traverse(id K, depth int) error {
	// 1. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}

	// 4. Explore each neighbor
	for nid := range w.graph.Neighbors(id) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
