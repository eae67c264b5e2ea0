// SPDX-License-Identifier: MIT
//
// File: matching.go
// Role: bipartition and maximum bipartite matching.
// Determinism:
//   - Components are colored from their first node in graph order (Left).
//   - Left nodes are matched in graph order and try neighbors in neighbor order.

package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrNotBipartite indicates an odd cycle (a self-loop included).
	ErrNotBipartite = fmt.Errorf("matching: graph is not bipartite: %w", core.ErrInvalidTopology)
)

// Bipartite is a 2-coloring of a graph.
type Bipartite[K comparable] struct {
	// Left and Right list each side in node order.
	Left, Right []K

	left map[K]bool
}

// IsLeft reports whether id was colored Left.
func (b *Bipartite[K]) IsLeft(id K) bool { return b.left[id] }

// adjacency is the undirected neighbor list of g in node order.
type adjacency[K comparable] struct {
	ids []K
	pos map[K]int
	nbr [][]int
}

func newAdjacency[K comparable](g core.Reader[K]) *adjacency[K] {
	a := &adjacency[K]{pos: make(map[K]int, g.NodeCount())}
	for v := range g.Nodes() {
		a.pos[v] = len(a.ids)
		a.ids = append(a.ids, v)
	}
	a.nbr = make([][]int, len(a.ids))
	for i, u := range a.ids {
		seen := make(map[int]bool)
		add := func(v K) {
			if j := a.pos[v]; !seen[j] {
				seen[j] = true
				a.nbr[i] = append(a.nbr[i], j)
			}
		}
		for v := range g.Neighbors(u) {
			add(v)
		}
		if g.Directed() {
			for v := range g.InNeighbors(u) {
				add(v)
			}
		}
	}

	return a
}

// color 2-colors a by BFS: 0 Left, 1 Right.
func (a *adjacency[K]) color() ([]int, error) {
	col := make([]int, len(a.ids))
	for i := range col {
		col[i] = -1
	}
	for s := range a.ids {
		if col[s] >= 0 {
			continue
		}
		col[s] = 0
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range a.nbr[u] {
				switch {
				case col[v] < 0:
					col[v] = 1 - col[u]
					queue = append(queue, v)
				case col[v] == col[u]:
					return nil, fmt.Errorf("%w: %v and %v share a side", ErrNotBipartite, a.ids[u], a.ids[v])
				}
			}
		}
	}

	return col, nil
}

// Bipartition splits g into two sides such that every edge crosses them.
// Directed graphs are read without direction.
// Errors: ErrGraphNil, ErrNotBipartite.
// Complexity: O(V + E).
func Bipartition[K comparable](g core.Reader[K]) (*Bipartite[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	a := newAdjacency(g)
	col, err := a.color()
	if err != nil {
		return nil, err
	}

	b := &Bipartite[K]{left: make(map[K]bool, len(a.ids))}
	for i, id := range a.ids {
		if col[i] == 0 {
			b.Left = append(b.Left, id)
			b.left[id] = true
		} else {
			b.Right = append(b.Right, id)
		}
	}

	return b, nil
}

// IsBipartite reports whether g admits a 2-coloring.
func IsBipartite[K comparable](g core.Reader[K]) bool {
	_, err := Bipartition(g)

	return err == nil
}

// Pair is one matched edge.
type Pair[K comparable] struct {
	Left, Right K
}

// Result is a maximum matching.
type Result[K comparable] struct {
	// Pairs lists matched edges ordered by their Left node.
	Pairs []Pair[K]

	// Mate maps every matched node (either side) to its partner.
	Mate map[K]K

	// Sides is the 2-coloring the matching was computed on.
	Sides *Bipartite[K]

	cover []K
}

// Size returns the number of matched pairs.
func (r *Result[K]) Size() int { return len(r.Pairs) }

// VertexCover returns a minimum vertex cover, of size Size() by König's
// theorem: with Z the nodes reachable from unmatched Left nodes by
// alternating paths, the cover is (Left∖Z) ∪ (Right∩Z), in node order.
func (r *Result[K]) VertexCover() []K { return r.cover }

// MaximumBipartite computes a maximum-cardinality matching with augmenting
// paths: every Left node in turn searches, depth first, for an unmatched
// Right node, re-routing already matched Left nodes along the way.
//
// Errors: ErrGraphNil, ErrNotBipartite.
// Complexity: O(V · E).
func MaximumBipartite[K comparable](g core.Reader[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	a := newAdjacency(g)
	col, err := a.color()
	if err != nil {
		return nil, err
	}
	n := len(a.ids)

	// 1) Augment from every Left node.
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	visited := make([]bool, n)
	var try func(u int) bool
	try = func(u int) bool {
		for _, v := range a.nbr[u] {
			if visited[v] {
				continue
			}
			visited[v] = true
			if mate[v] < 0 || try(mate[v]) {
				mate[u], mate[v] = v, u
				return true
			}
		}
		return false
	}
	for u := 0; u < n; u++ {
		if col[u] == 0 && mate[u] < 0 {
			clear(visited)
			try(u)
		}
	}

	// 2) Package pairs and sides.
	res := &Result[K]{Mate: make(map[K]K), Sides: &Bipartite[K]{left: make(map[K]bool)}}
	for i, id := range a.ids {
		if col[i] == 0 {
			res.Sides.Left = append(res.Sides.Left, id)
			res.Sides.left[id] = true
			if mate[i] >= 0 {
				res.Pairs = append(res.Pairs, Pair[K]{Left: id, Right: a.ids[mate[i]]})
			}
		} else {
			res.Sides.Right = append(res.Sides.Right, id)
		}
		if mate[i] >= 0 {
			res.Mate[id] = a.ids[mate[i]]
		}
	}

	// 3) König cover.
	z := make([]bool, n)
	var stack []int
	for u := 0; u < n; u++ {
		if col[u] == 0 && mate[u] < 0 {
			z[u] = true
			stack = append(stack, u)
		}
	}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range a.nbr[u] {
			if z[v] || mate[u] == v {
				continue
			}
			z[v] = true
			if w := mate[v]; w >= 0 && !z[w] {
				z[w] = true
				stack = append(stack, w)
			}
		}
	}
	for i, id := range a.ids {
		if (col[i] == 0) != z[i] {
			res.cover = append(res.cover, id)
		}
	}

	return res, nil
}
