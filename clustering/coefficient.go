// SPDX-License-Identifier: MIT

package clustering

import (
	"github.com/katalvlaran/graphengine/core"
)

// ClusteringCoefficient returns, for every node, the fraction of pairs of
// its neighbors that are adjacent: triangles / (k(k-1)/2). Nodes with fewer
// than two neighbors score 0. The undirected projection is used and
// weights and self-loops are ignored.
// Complexity: O(Σ k_i²).
func ClusteringCoefficient[K comparable](g core.Reader[K]) (map[K]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSimple(g)
	out := make(map[K]float64, s.n())
	mark := make([]int, s.n())
	for i := range mark {
		mark[i] = -1
	}
	for i, nbrs := range s.nbr {
		k := len(nbrs)
		if k < 2 {
			out[s.ids[i]] = 0
			continue
		}
		for _, j := range nbrs {
			mark[j] = i
		}
		links := 0
		for _, j := range nbrs {
			for _, x := range s.nbr[j] {
				if x > j && mark[x] == i {
					links++
				}
			}
		}
		out[s.ids[i]] = float64(links) / float64(k*(k-1)/2)
	}

	return out, nil
}

// AverageClusteringCoefficient is the mean of ClusteringCoefficient over all
// nodes, 0 for an empty graph.
func AverageClusteringCoefficient[K comparable](g core.Reader[K]) (float64, error) {
	cc, err := ClusteringCoefficient(g)
	if err != nil {
		return 0, err
	}
	if len(cc) == 0 {
		return 0, nil
	}
	total := 0.0
	for v := range g.Nodes() {
		total += cc[v]
	}

	return total / float64(len(cc)), nil
}
