// SPDX-License-Identifier: MIT
//
// File: linkpred.go
// Role: neighborhood-based link prediction scores.
// Determinism:
//   - Common neighbors are visited in node order, so floating-point sums
//     are reproducible.

package linkpred

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("linkpred: graph is nil")

	// ErrBadOption indicates an unknown method or a negative TopK.
	ErrBadOption = fmt.Errorf("linkpred: %w", core.ErrInvalidParameter)
)

// Method names a scoring function.
type Method int

// Supported methods.
const (
	CommonNeighborsMethod Method = iota
	JaccardMethod
	AdamicAdarMethod
	ResourceAllocationMethod
	PreferentialAttachmentMethod
)

var methodNames = []string{"common_neighbors", "jaccard", "adamic_adar", "resource_allocation", "preferential_attachment"}

// String returns the snake_case method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a method name as printed by String.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if strings.EqualFold(n, name) {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown method %q (known: %s)", ErrBadOption, name, strings.Join(methodNames, ", "))
}

// index holds the undirected neighbor sets of every node. Edge direction
// and weight are ignored; a node is never its own neighbor.
type index[K comparable] struct {
	ids []K
	pos map[K]int
	nbr []map[int]bool
}

func newIndex[K comparable](g core.Reader[K]) *index[K] {
	x := &index[K]{pos: make(map[K]int, g.NodeCount())}
	for v := range g.Nodes() {
		x.pos[v] = len(x.ids)
		x.ids = append(x.ids, v)
	}
	x.nbr = make([]map[int]bool, len(x.ids))
	for i := range x.nbr {
		x.nbr[i] = make(map[int]bool)
	}
	for i, u := range x.ids {
		for v := range g.Neighbors(u) {
			if j := x.pos[v]; j != i {
				x.nbr[i][j] = true
				x.nbr[j][i] = true
			}
		}
	}

	return x
}

// common returns the shared neighbors of i and j in node order.
func (x *index[K]) common(i, j int) []int {
	a, b := x.nbr[i], x.nbr[j]
	if len(b) < len(a) {
		a, b = b, a
	}
	var out []int
	for w := range a {
		if b[w] {
			out = append(out, w)
		}
	}
	slices.Sort(out)

	return out
}

// score evaluates method m on the pair (i, j).
func (x *index[K]) score(m Method, i, j int) float64 {
	switch m {
	case JaccardMethod:
		shared := len(x.common(i, j))
		union := len(x.nbr[i]) + len(x.nbr[j]) - shared
		if union == 0 {
			return 0
		}
		return float64(shared) / float64(union)
	case AdamicAdarMethod:
		s := 0.0
		for _, w := range x.common(i, j) {
			if d := len(x.nbr[w]); d > 1 {
				s += 1 / math.Log(float64(d))
			}
		}
		return s
	case ResourceAllocationMethod:
		s := 0.0
		for _, w := range x.common(i, j) {
			s += 1 / float64(len(x.nbr[w]))
		}
		return s
	case PreferentialAttachmentMethod:
		return float64(len(x.nbr[i]) * len(x.nbr[j]))
	default:
		return float64(len(x.common(i, j)))
	}
}

// pairScore validates u and v and scores them.
func pairScore[K comparable](g core.Reader[K], m Method, u, v K) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	for _, id := range []K{u, v} {
		if !g.HasNode(id) {
			return 0, fmt.Errorf("linkpred: %s(%v, %v): %w", m, u, v, core.ErrNodeNotFound)
		}
	}
	x := newIndex(g)

	return x.score(m, x.pos[u], x.pos[v]), nil
}

// CommonNeighbors returns |N(u) ∩ N(v)|.
func CommonNeighbors[K comparable](g core.Reader[K], u, v K) (float64, error) {
	return pairScore(g, CommonNeighborsMethod, u, v)
}

// Jaccard returns |N(u) ∩ N(v)| / |N(u) ∪ N(v)|, 0 when both are isolated.
func Jaccard[K comparable](g core.Reader[K], u, v K) (float64, error) {
	return pairScore(g, JaccardMethod, u, v)
}

// AdamicAdar returns Σ 1/ln|N(w)| over common neighbors w.
func AdamicAdar[K comparable](g core.Reader[K], u, v K) (float64, error) {
	return pairScore(g, AdamicAdarMethod, u, v)
}

// ResourceAllocation returns Σ 1/|N(w)| over common neighbors w.
func ResourceAllocation[K comparable](g core.Reader[K], u, v K) (float64, error) {
	return pairScore(g, ResourceAllocationMethod, u, v)
}

// PreferentialAttachment returns |N(u)| · |N(v)|.
func PreferentialAttachment[K comparable](g core.Reader[K], u, v K) (float64, error) {
	return pairScore(g, PreferentialAttachmentMethod, u, v)
}
