// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Node visitation states.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist.
	ErrStartNotFound = fmt.Errorf("dfs: start %w", core.ErrNodeNotFound)

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = fmt.Errorf("dfs: cycle detected: %w", core.ErrInvalidTopology)

	// ErrUndirected indicates TopologicalSort was given an undirected graph.
	ErrUndirected = fmt.Errorf("dfs: topological sort requires a directed graph: %w", core.ErrInvalidTopology)
)

// Option configures optional behavior of DFS traversal.
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[K comparable] struct {
	// OnVisit, if non-nil, is invoked upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id K) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(id K) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return false to skip it.
	FilterNeighbor func(id K) bool

	// FullTraversal, if true, restarts DFS from every unvisited node in
	// graph order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no depth limit, no filter
// and single-source traversal.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit. A limit of 0 visits only the start.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *Options[K]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false; skips are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor[K comparable](fn func(id K) bool) Option[K] {
	return func(o *Options[K]) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every node.
func WithFullTraversal[K comparable]() Option[K] {
	return func(o *Options[K]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []K

	// Preorder records nodes in discovery order.
	Preorder []K

	// Depth maps each node to its depth in its DFS tree.
	Depth map[K]int

	// Parent maps each node to the node it was discovered from. Tree roots are absent.
	Parent map[K]K

	// Visited flags which nodes were reached.
	Visited map[K]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
