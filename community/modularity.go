// SPDX-License-Identifier: MIT

package community

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors for community detection.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("community: graph is nil")

	// ErrIncompletePartition indicates a partition that omits a node of the graph.
	ErrIncompletePartition = fmt.Errorf("community: partition does not cover the graph: %w", core.ErrInvalidParameter)

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = fmt.Errorf("community: %w", core.ErrInvalidParameter)

	// ErrNegativeWeight indicates an edge with negative weight; modularity
	// is undefined for such graphs.
	ErrNegativeWeight = fmt.Errorf("community: negative edge weight: %w", core.ErrInvalidTopology)
)

// Partition assigns every node a community label.
type Partition[K comparable] map[K]int

// TotalWeight returns m, the total edge weight of g with self-loops counted
// once. Directed graphs are read as their undirected projection.
func TotalWeight[K comparable](g core.Reader[K]) float64 {
	if g == nil {
		return 0
	}
	wg, _, _ := project(g)

	return wg.m
}

// WeightedDegree returns k_i, the sum of the weights of the edges incident
// to id, a self-loop counting twice.
// Errors: core.ErrNodeNotFound.
func WeightedDegree[K comparable](g core.Reader[K], id K) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(id) {
		return 0, fmt.Errorf("community: WeightedDegree(%v): %w", id, core.ErrNodeNotFound)
	}
	k := 0.0
	for v, w := range g.Neighbors(id) {
		if v == id {
			w *= 2
		}
		k += w
	}
	if g.Directed() {
		for v, w := range g.InNeighbors(id) {
			if v != id {
				k += w
			}
		}
	}

	return k, nil
}

// NeighborCommunities returns, for each community adjacent to id, the total
// weight of the edges joining id to it. Self-loops are ignored.
// Errors: core.ErrNodeNotFound, ErrIncompletePartition.
func NeighborCommunities[K comparable](g core.Reader[K], id K, p Partition[K]) (map[int]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(id) {
		return nil, fmt.Errorf("community: NeighborCommunities(%v): %w", id, core.ErrNodeNotFound)
	}
	out := make(map[int]float64)
	add := func(v K, w float64) error {
		if v == id {
			return nil
		}
		c, ok := p[v]
		if !ok {
			return fmt.Errorf("%w: missing %v", ErrIncompletePartition, v)
		}
		out[c] += w
		return nil
	}
	for v, w := range g.Neighbors(id) {
		if err := add(v, w); err != nil {
			return nil, err
		}
	}
	if g.Directed() {
		for v, w := range g.InNeighbors(id) {
			if err := add(v, w); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Modularity scores partition p of g at the given resolution γ:
//
//	Q = (1/2m) Σ_ij [ A_ij - γ k_i k_j / 2m ] δ(c_i, c_j)
//
// Directed graphs are evaluated as their undirected projection. An edgeless
// graph scores 0. Every node must appear in p.
// Errors: ErrIncompletePartition, ErrNegativeWeight.
func Modularity[K comparable](g core.Reader[K], p Partition[K], resolution float64) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	wg, ids, _ := project(g)
	if err := wg.checkWeights(); err != nil {
		return 0, err
	}
	member, err := membership(ids, p)
	if err != nil {
		return 0, err
	}

	return wg.quality(member, resolution), nil
}

// membership reads p in index order.
func membership[K comparable](ids []K, p Partition[K]) ([]int, error) {
	member := make([]int, len(ids))
	for i, id := range ids {
		c, ok := p[id]
		if !ok {
			return nil, fmt.Errorf("%w: missing %v", ErrIncompletePartition, id)
		}
		member[i] = c
	}

	return member, nil
}

func (g *wgraph) checkWeights() error {
	for i, nbrs := range g.adj {
		if g.loop[i] < 0 {
			return ErrNegativeWeight
		}
		for _, l := range nbrs {
			if l.w < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// Communities groups the nodes of g by their label in p. Groups are ordered
// by their first member in node order and members keep node order. Nodes
// missing from p are skipped.
func Communities[K comparable](g core.Reader[K], p Partition[K]) [][]K {
	if g == nil {
		return nil
	}
	slot := make(map[int]int)
	var out [][]K
	for v := range g.Nodes() {
		c, ok := p[v]
		if !ok {
			continue
		}
		i, seen := slot[c]
		if !seen {
			i = len(out)
			slot[c] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}

	return out
}

// Result is the outcome of a community detector.
type Result[K comparable] struct {
	// Partition labels communities 0..k-1 in order of their first node.
	Partition Partition[K]

	// Communities lists members per label.
	Communities [][]K

	// Modularity of Partition at the detector's resolution.
	Modularity float64

	// Levels counts aggregation levels (Louvain, Leiden) or sweeps
	// (label propagation) performed.
	Levels int
}

// newResult packages a dense membership (relabelled here) into a Result.
func newResult[K comparable](g core.Reader[K], ids []K, member []int, q float64, levels int) *Result[K] {
	relabel(member)
	p := make(Partition[K], len(ids))
	for i, id := range ids {
		p[id] = member[i]
	}

	return &Result[K]{Partition: p, Communities: Communities(g, p), Modularity: q, Levels: levels}
}
