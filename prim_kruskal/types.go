// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = fmt.Errorf("prim_kruskal: MST requires an undirected graph: %w", core.ErrInvalidTopology)

// ErrRootNotFound indicates that the Prim root is not a node of the graph.
var ErrRootNotFound = fmt.Errorf("prim_kruskal: root %w", core.ErrNodeNotFound)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It also applies to the empty graph.
var ErrDisconnected = fmt.Errorf("prim_kruskal: graph is disconnected: %w", core.ErrInvalidTopology)

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = fmt.Errorf("prim_kruskal: unknown method: %w", core.ErrInvalidParameter)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is a minimum spanning tree.
type Result[K comparable] struct {
	// Edges of the tree, in acceptance order. Edges are read through
	// core.Reader, so they carry endpoints and weight but no edge ID.
	Edges []core.Edge[K]

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions[K comparable] struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm when HasRoot is set;
	// otherwise Prim starts from the first node. Unused by Kruskal.
	Root    K
	HasRoot bool
}

// Option configures MSTOptions.
type Option[K comparable] func(*MSTOptions[K])

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod[K comparable](m string) Option[K] {
	return func(opts *MSTOptions[K]) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot[K comparable](root K) Option[K] {
	return func(opts *MSTOptions[K]) {
		opts.Root, opts.HasRoot = root, true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions[K comparable]() MSTOptions[K] {
	return MSTOptions[K]{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g) from opts.Root when set.
//	– Otherwise:     ErrUnknownMethod.
func Compute[K comparable](g core.Reader[K], opts MSTOptions[K]) (*Result[K], error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if opts.HasRoot {
			return Prim(g, WithRoot(opts.Root))
		}
		return Prim(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate applies the checks shared by both algorithms.
func validate[K comparable](g core.Reader[K]) error {
	if g == nil || g.Directed() {
		return ErrInvalidGraph
	}
	if g.NodeCount() == 0 {
		return ErrDisconnected
	}

	return nil
}
