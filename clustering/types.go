// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors for the clustering family.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("clustering: graph is nil")

	// ErrBadDendrogram indicates a merge list that references clusters not
	// yet formed.
	ErrBadDendrogram = fmt.Errorf("clustering: malformed dendrogram: %w", core.ErrInvalidParameter)

	// ErrBadOption indicates a non-positive cluster count or another
	// out-of-range option.
	ErrBadOption = fmt.Errorf("clustering: %w", core.ErrInvalidParameter)

	// ErrEigenFailed indicates the eigendecomposition did not converge.
	ErrEigenFailed = errors.New("clustering: eigendecomposition failed")
)

// Result is a flat clustering of the nodes.
type Result[K comparable] struct {
	// Labels maps every node to its cluster, 0..k-1 in order of each
	// cluster's first node.
	Labels map[K]int

	// Clusters lists members per label in node order.
	Clusters [][]K
}

// newResult relabels assign (dense index -> cluster) by first appearance.
func newResult[K comparable](ids []K, assign []int) *Result[K] {
	next := make(map[int]int)
	res := &Result[K]{Labels: make(map[K]int, len(ids))}
	for i, id := range ids {
		c, ok := next[assign[i]]
		if !ok {
			c = len(next)
			next[assign[i]] = c
			res.Clusters = append(res.Clusters, nil)
		}
		res.Labels[id] = c
		res.Clusters[c] = append(res.Clusters[c], id)
	}

	return res
}

// simple is the loop-free undirected projection of a Reader over dense
// indices: parallel edges and opposite arcs are merged by summing weights.
type simple[K comparable] struct {
	ids []K
	pos map[K]int
	nbr [][]int     // sorted neighbor indices
	w   [][]float64 // weights aligned with nbr
}

func newSimple[K comparable](g core.Reader[K]) *simple[K] {
	s := &simple[K]{pos: make(map[K]int, g.NodeCount())}
	for v := range g.Nodes() {
		s.pos[v] = len(s.ids)
		s.ids = append(s.ids, v)
	}
	acc := make([]map[int]float64, len(s.ids))
	for i := range acc {
		acc[i] = make(map[int]float64)
	}
	for i, u := range s.ids {
		for v, w := range g.Neighbors(u) {
			j := s.pos[v]
			switch {
			case i == j:
			case g.Directed():
				acc[i][j] += w
				acc[j][i] += w
			case i < j:
				acc[i][j] += w
				acc[j][i] += w
			}
		}
	}
	s.nbr = make([][]int, len(s.ids))
	s.w = make([][]float64, len(s.ids))
	for i, m := range acc {
		keys := make([]int, 0, len(m))
		for j := range m {
			keys = append(keys, j)
		}
		slices.Sort(keys)
		s.nbr[i] = keys
		for _, j := range keys {
			s.w[i] = append(s.w[i], m[j])
		}
	}

	return s
}

func (s *simple[K]) n() int { return len(s.ids) }
