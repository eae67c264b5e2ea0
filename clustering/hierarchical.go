// SPDX-License-Identifier: MIT
//
// File: hierarchical.go
// Role: agglomerative clustering over shortest-path distances.
// Determinism:
//   - The closest pair is the first in (lower slot, higher slot) scan order;
//     leaf slots follow node order.

package clustering

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphengine/bfs"
	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/shortestpath"
	"github.com/katalvlaran/graphengine/unionfind"
)

// Linkage decides the distance between two clusters.
type Linkage int

const (
	// Single uses the closest pair of members.
	Single Linkage = iota
	// Complete uses the farthest pair of members.
	Complete
	// Average uses the mean over all member pairs (UPGMA).
	Average
)

// String returns "single", "complete" or "average".
func (l Linkage) String() string {
	switch l {
	case Complete:
		return "complete"
	case Average:
		return "average"
	default:
		return "single"
	}
}

// ParseLinkage resolves a name printed by Linkage.String.
func ParseLinkage(name string) (Linkage, error) {
	for l := Single; l <= Average; l++ {
		if strings.EqualFold(l.String(), name) {
			return l, nil
		}
	}

	return Single, fmt.Errorf("%w: unknown linkage %q", ErrBadOption, name)
}

// HierarchicalOptions configures Hierarchical.
type HierarchicalOptions struct {
	Linkage Linkage

	// Weighted measures distance by path weight (Dijkstra) instead of hop count.
	Weighted bool
}

// Merge joins clusters A and B at Height. Leaves are clusters 0..n-1; the
// cluster formed by the i-th merge is n+i.
type Merge struct {
	A, B   int
	Height float64
	Size   int
}

// Dendrogram is the full merge history over Leaves.
type Dendrogram[K comparable] struct {
	Leaves []K
	Merges []Merge
}

// Hierarchical builds a dendrogram bottom-up: every node starts alone and
// the two closest clusters merge until one remains. Node distances are
// shortest-path lengths; directed graphs use min(d(u,v), d(v,u)) and
// unreachable pairs are +Inf, so separate components merge last at +Inf.
// Weighted distances assume non-negative weights.
//
// Errors: ErrGraphNil, ErrBadOption (unknown linkage).
// Complexity: O(V³) time, O(V²) memory.
func Hierarchical[K comparable](g core.Reader[K], opts HierarchicalOptions) (*Dendrogram[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if opts.Linkage < Single || opts.Linkage > Average {
		return nil, fmt.Errorf("%w: linkage %d", ErrBadOption, int(opts.Linkage))
	}
	ids := make([]K, 0, g.NodeCount())
	for v := range g.Nodes() {
		ids = append(ids, v)
	}
	n := len(ids)
	dend := &Dendrogram[K]{Leaves: ids}
	if n == 0 {
		return dend, nil
	}

	dist, err := distanceMatrix(g, ids, opts.Weighted)
	if err != nil {
		return nil, err
	}

	active := make([]bool, n)
	cluster := make([]int, n) // slot -> cluster id
	size := make([]int, n)
	for i := range active {
		active[i], cluster[i], size[i] = true, i, 1
	}

	for step := 0; step < n-1; step++ {
		// 1) Closest active pair.
		a, b, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && (a < 0 || dist.At(i, j) < best) {
					a, b, best = i, j, dist.At(i, j)
				}
			}
		}

		// 2) Record and fold b into a.
		dend.Merges = append(dend.Merges, Merge{A: cluster[a], B: cluster[b], Height: best, Size: size[a] + size[b]})
		for x := 0; x < n; x++ {
			if !active[x] || x == a || x == b {
				continue
			}
			da, db := dist.At(a, x), dist.At(b, x)
			var d float64
			switch opts.Linkage {
			case Complete:
				d = math.Max(da, db)
			case Average:
				d = (float64(size[a])*da + float64(size[b])*db) / float64(size[a]+size[b])
			default:
				d = math.Min(da, db)
			}
			dist.SetSym(a, x, d)
		}
		active[b] = false
		size[a] += size[b]
		cluster[a] = n + step
	}

	return dend, nil
}

// distanceMatrix returns the symmetric shortest-path distances among ids.
func distanceMatrix[K comparable](g core.Reader[K], ids []K, weighted bool) (*mat.SymDense, error) {
	n := len(ids)
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist.SetSym(i, j, math.Inf(1))
		}
	}
	for i, src := range ids {
		row := make(map[K]float64, n)
		if weighted {
			res, err := shortestpath.Dijkstra(g, src)
			if err != nil {
				return nil, fmt.Errorf("clustering: %w", err)
			}
			row = res.Dist
		} else {
			hops, err := bfs.Distances(g, src)
			if err != nil {
				return nil, fmt.Errorf("clustering: %w", err)
			}
			for id, h := range hops {
				row[id] = float64(h)
			}
		}
		for j, dst := range ids {
			if d, ok := row[dst]; ok && j != i && d < dist.At(i, j) {
				dist.SetSym(i, j, d)
			}
		}
	}

	return dist, nil
}

// Cut returns the flat clustering with exactly k clusters.
// Errors: ErrBadOption when k is outside [1, len(Leaves)], ErrBadDendrogram.
func (d *Dendrogram[K]) Cut(k int) (*Result[K], error) {
	n := len(d.Leaves)
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d must be in [1, %d]", ErrBadOption, k, n)
	}

	return d.replay(func(i int, _ Merge) bool { return i < n-k })
}

// CutHeight returns the clustering obtained by applying every merge whose
// height is at most h.
// Errors: ErrBadDendrogram.
func (d *Dendrogram[K]) CutHeight(h float64) (*Result[K], error) {
	return d.replay(func(_ int, m Merge) bool { return m.Height <= h })
}

// replay applies the merges accepted by keep and labels the leaves. Merge i
// may only reference leaves and the clusters of merges before it.
func (d *Dendrogram[K]) replay(keep func(i int, m Merge) bool) (*Result[K], error) {
	n := len(d.Leaves)
	uf := unionfind.New[int]()
	rep := make([]int, n+len(d.Merges)) // cluster id -> a member leaf
	for i := 0; i < n; i++ {
		uf.Add(i)
		rep[i] = i
	}
	for i, m := range d.Merges {
		if m.A < 0 || m.B < 0 || m.A >= n+i || m.B >= n+i {
			return nil, fmt.Errorf("%w: merge %d joins clusters %d and %d, want ids below %d",
				ErrBadDendrogram, i, m.A, m.B, n+i)
		}
		rep[n+i] = rep[m.A]
		if keep(i, m) {
			if _, err := uf.Union(rep[m.A], rep[m.B]); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadDendrogram, err)
			}
		}
	}
	assign := make([]int, n)
	for i := range assign {
		root, err := uf.Find(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDendrogram, err)
		}
		assign[i] = root
	}

	return newResult(d.Leaves, assign), nil
}
