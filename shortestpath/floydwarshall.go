// SPDX-License-Identifier: MIT
//
// File: floydwarshall.go
// Role: all-pairs shortest paths over a dense gonum matrix.
// Determinism:
//   - Loop order is fixed (k -> i -> j) and indices follow graph node order.

package shortestpath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphengine/core"
)

// AllPairs is the result of FloydWarshall.
type AllPairs[K comparable] struct {
	ids   []K
	index map[K]int
	dist  *mat.Dense
	next  []int

	// HasNegativeCycle reports that some diagonal entry became negative.
	HasNegativeCycle bool
}

// FloydWarshall computes every pairwise distance of g.
//
// Steps:
//  1. Index nodes by graph order and fill D with +Inf, 0 on the diagonal and
//     the lightest edge weight between each ordered pair.
//  2. For each intermediate k, relax D[i][j] through D[i][k] + D[k][j].
//  3. Flag a negative cycle when any D[i][i] < 0.
//
// Complexity: O(V^3) time, O(V^2) memory.
func FloydWarshall[K comparable](g core.Reader[K]) (*AllPairs[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	ap := &AllPairs[K]{ids: make([]K, 0, n), index: make(map[K]int, n)}
	for v := range g.Nodes() {
		ap.index[v] = len(ap.ids)
		ap.ids = append(ap.ids, v)
	}
	if n == 0 {
		return ap, nil
	}

	// 1) Initialize.
	inf := math.Inf(1)
	d := mat.NewDense(n, n, nil)
	ap.next = make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, inf)
			ap.next[i*n+j] = -1
		}
		d.Set(i, i, 0)
		ap.next[i*n+i] = i
	}
	for i, u := range ap.ids {
		for v, w := range g.Neighbors(u) {
			j := ap.index[v]
			if w < d.At(i, j) {
				d.Set(i, j, w)
				ap.next[i*n+j] = j
			}
		}
	}

	// 2) Relax through every intermediate node.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := d.At(i, k)
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := d.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				if dik+dkj < d.At(i, j) {
					d.Set(i, j, dik+dkj)
					ap.next[i*n+j] = ap.next[i*n+k]
				}
			}
		}
	}

	// 3) Negative cycles show up on the diagonal.
	for i := 0; i < n; i++ {
		if d.At(i, i) < 0 {
			ap.HasNegativeCycle = true
			break
		}
	}
	ap.dist = d

	return ap, nil
}

// Nodes returns the node order used for matrix indices.
func (ap *AllPairs[K]) Nodes() []K {
	return append([]K(nil), ap.ids...)
}

// Matrix returns a copy of the distance matrix, or nil for an empty graph.
func (ap *AllPairs[K]) Matrix() *mat.Dense {
	if ap.dist == nil {
		return nil
	}

	return mat.DenseCopyOf(ap.dist)
}

func (ap *AllPairs[K]) lookup(from, to K) (int, int, error) {
	i, ok := ap.index[from]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrSourceNotFound, from)
	}
	j, ok := ap.index[to]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrTargetNotFound, to)
	}

	return i, j, nil
}

// Distance returns the shortest distance from one node to another (+Inf when
// unreachable). Distances are not meaningful when HasNegativeCycle is set.
func (ap *AllPairs[K]) Distance(from, to K) (float64, error) {
	i, j, err := ap.lookup(from, to)
	if err != nil {
		return 0, err
	}

	return ap.dist.At(i, j), nil
}

// Path reconstructs the shortest path between two nodes.
// Errors: ErrSourceNotFound, ErrTargetNotFound, ErrNoPath.
func (ap *AllPairs[K]) Path(from, to K) ([]K, error) {
	i, j, err := ap.lookup(from, to)
	if err != nil {
		return nil, err
	}
	n := len(ap.ids)
	if ap.next[i*n+j] < 0 {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}
	path := []K{ap.ids[i]}
	for cur := i; cur != j; {
		cur = ap.next[cur*n+j]
		if cur < 0 || len(path) > n {
			return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
		}
		path = append(path, ap.ids[cur])
	}

	return path, nil
}
