// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Reader.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = fmt.Errorf("bfs: start %w", core.ErrNodeNotFound)

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("bfs: %w", core.ErrInvalidParameter)

	// ErrNoPath is returned by PathTo for a node the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// OnEnqueue is called when a node is enqueued, with its depth from the start.
	OnEnqueue func(id K, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id K, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS stops and propagates that error alongside the partial result.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and
// no-op hooks.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnEnqueue:      func(K, int) {},
		OnDequeue:      func(K, int) {},
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the root of the search.
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in edges) from the start.
//   - Parent: map from node ID to its predecessor in the BFS tree (absent for Start).
type Result[K comparable] struct {
	Start  K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the fewest-hop path from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []K{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Layers groups Order by depth: Layers()[d] lists the nodes at depth d in
// visit order.
func (r *Result[K]) Layers() [][]K {
	var out [][]K
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}
