// SPDX-License-Identifier: MIT

package shortestpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors returned by the shortest-path family.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrSourceNotFound indicates the source node is absent.
	ErrSourceNotFound = fmt.Errorf("shortestpath: source %w", core.ErrNodeNotFound)

	// ErrTargetNotFound indicates the target node is absent.
	ErrTargetNotFound = fmt.Errorf("shortestpath: target %w", core.ErrNodeNotFound)

	// ErrNegativeWeight is reported by Dijkstra when WithNegativeWeightCheck is
	// enabled and a negative edge weight is found.
	ErrNegativeWeight = fmt.Errorf("shortestpath: negative edge weight: %w", core.ErrInvalidTopology)

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("shortestpath: no path between nodes")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = fmt.Errorf("shortestpath: %w", core.ErrInvalidParameter)
)

// Entry is the per-node record of a single-source result.
type Entry[K comparable] struct {
	// Distance from the source; +Inf when unreachable.
	Distance float64

	// Predecessor on the shortest path; meaningful only when HasPredecessor.
	Predecessor    K
	HasPredecessor bool

	// Path from the source to the node, inclusive; nil when unreachable.
	Path []K
}

// Result holds single-source shortest paths (Dijkstra, Bellman-Ford).
type Result[K comparable] struct {
	Source K

	// Dist maps every node of the graph to its distance (+Inf if unreachable).
	Dist map[K]float64

	// Prev maps every reached node except the source to its predecessor.
	Prev map[K]K

	// HasNegativeCycle is set by Bellman-Ford when a negative cycle is
	// reachable from the source. Distances are then not meaningful.
	HasNegativeCycle bool
}

// Distance returns the distance to id and whether id was reached.
func (r *Result[K]) Distance(id K) (float64, bool) {
	d, ok := r.Dist[id]
	if !ok || math.IsInf(d, 1) {
		return math.Inf(1), false
	}

	return d, true
}

// PathTo reconstructs the node sequence from the source to target.
// Errors: ErrTargetNotFound, ErrNoPath.
func (r *Result[K]) PathTo(target K) ([]K, error) {
	d, known := r.Dist[target]
	if !known {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, r.Source, target)
	}

	// Walk predecessors back to the source; the step cap guards against a
	// predecessor cycle left by a negative cycle.
	path := []K{target}
	for cur := target; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, r.Source, target)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Entry returns the {Distance, Predecessor, Path} record of id.
func (r *Result[K]) Entry(id K) Entry[K] {
	e := Entry[K]{Distance: math.Inf(1)}
	if d, ok := r.Dist[id]; ok {
		e.Distance = d
	}
	if p, ok := r.Prev[id]; ok {
		e.Predecessor, e.HasPredecessor = p, true
	}
	if path, err := r.PathTo(id); err == nil {
		e.Path = path
	}

	return e
}

// Options configures Dijkstra.
type Options[K comparable] struct {
	// Target, when set, stops the search once it is settled.
	Target    K
	HasTarget bool

	// MaxDistance skips nodes farther than this (default +Inf).
	MaxDistance float64

	// InfEdgeThreshold treats edges with weight >= threshold as impassable
	// (default +Inf).
	InfEdgeThreshold float64

	// CheckNegative scans all edges up front and fails on a negative weight.
	CheckNegative bool
}

// Option configures Dijkstra.
type Option[K comparable] func(*Options[K])

// DefaultOptions returns the defaults: no target, no distance cap, no
// impassable edges, no negative-weight scan.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithTarget stops the search as soon as target's distance is final.
func WithTarget[K comparable](target K) Option[K] {
	return func(o *Options[K]) { o.Target, o.HasTarget = target, true }
}

// WithMaxDistance bounds exploration. A negative value makes Dijkstra return ErrBadOption.
func WithMaxDistance[K comparable](maxDist float64) Option[K] {
	return func(o *Options[K]) { o.MaxDistance = maxDist }
}

// WithInfEdgeThreshold marks edges with weight >= threshold as walls.
// A non-positive value makes Dijkstra return ErrBadOption.
func WithInfEdgeThreshold[K comparable](threshold float64) Option[K] {
	return func(o *Options[K]) { o.InfEdgeThreshold = threshold }
}

// WithNegativeWeightCheck enables the O(E) negative-weight pre-scan.
func WithNegativeWeightCheck[K comparable]() Option[K] {
	return func(o *Options[K]) { o.CheckNegative = true }
}
