// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Reader,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph core.Reader[K]
	opts  Options[K]
	queue []queueItem[K]
	head  int
	res   *Result[K]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error (wrapped, with the
// partial result).
func BFS[K comparable](g core.Reader[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Start:  start,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[K]) enqueue(id K, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[K]) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, next)
	}
}

// Distances returns hop counts from start to every reachable node.
// It is BFS without hooks, for callers that need only the depth map.
func Distances[K comparable](g core.Reader[K], start K) (map[K]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
