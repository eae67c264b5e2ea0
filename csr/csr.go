// SPDX-License-Identifier: MIT
//
// File: csr.go
// Role: immutable compressed-sparse-row snapshot of a graph.
// Determinism:
//   - Node order and per-row neighbor order are exactly those captured at
//     build time.
// Concurrency:
//   - A CSRGraph never changes after construction; concurrent reads are safe.

package csr

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors for CSR construction.
var (
	// ErrShapeMismatch indicates adjacency/weights slices disagree with the node order.
	ErrShapeMismatch = errors.New("csr: adjacency shape mismatch")

	// ErrUnknownNeighbor indicates an adjacency entry names a node absent from the order.
	ErrUnknownNeighbor = fmt.Errorf("csr: %w", core.ErrNodeNotFound)

	// ErrDuplicateNode indicates the node order lists an ID twice.
	ErrDuplicateNode = errors.New("csr: duplicate node in order")
)

// compile-time check
var _ core.Reader[string] = (*CSRGraph[string])(nil)

// rows is one CSR half: offsets[i]..offsets[i+1] index into cols/weights.
// weights is nil when every weight equals core.DefaultEdgeWeight.
type rows struct {
	offsets []int
	cols    []int
	weights []float64
}

func (r *rows) degree(i int) int { return r.offsets[i+1] - r.offsets[i] }

func (r *rows) weight(k int) float64 {
	if r.weights == nil {
		return core.DefaultEdgeWeight
	}

	return r.weights[k]
}

// CSRGraph is a frozen flat-array adjacency snapshot. Mutations of the
// graph it was built from do not propagate; rebuild to observe them.
type CSRGraph[K comparable] struct {
	directed bool
	ids      []K
	index    map[K]int
	out      rows
	// in is the incoming half for directed graphs; for undirected graphs it
	// aliases out.
	in        rows
	edgeCount int
}

// New builds a CSRGraph from a node order and, per node, its ordered
// neighbor list. weights may be nil (all weights 1); otherwise it must match
// adjacency row by row. For undirected graphs every edge must appear in both
// endpoint rows (a self-loop once), exactly as core.Graph.Neighbors reports.
//
// Steps:
//  1. Index the node order.
//  2. Prefix-sum row lengths into offsets.
//  3. Flatten neighbor IDs into column indices and weights.
//  4. For directed graphs, transpose into the incoming half.
//
// Complexity: O(V + E).
func New[K comparable](order []K, adjacency [][]K, weights [][]float64, directed bool) (*CSRGraph[K], error) {
	if len(adjacency) != len(order) || (weights != nil && len(weights) != len(order)) {
		return nil, fmt.Errorf("%w: %d nodes, %d adjacency rows, %d weight rows",
			ErrShapeMismatch, len(order), len(adjacency), len(weights))
	}

	g := &CSRGraph[K]{directed: directed}
	if err := g.indexNodes(order); err != nil {
		return nil, err
	}

	n := len(order)
	g.out.offsets = make([]int, n+1)
	for i, row := range adjacency {
		if weights != nil && len(weights[i]) != len(row) {
			return nil, fmt.Errorf("%w: row %d has %d neighbors, %d weights",
				ErrShapeMismatch, i, len(row), len(weights[i]))
		}
		g.out.offsets[i+1] = g.out.offsets[i] + len(row)
	}
	total := g.out.offsets[n]
	g.out.cols = make([]int, 0, total)
	flat := make([]float64, 0, total)
	uniform := true
	for i, row := range adjacency {
		for k, nb := range row {
			j, ok := g.index[nb]
			if !ok {
				return nil, fmt.Errorf("%w: %v (row of %v)", ErrUnknownNeighbor, nb, order[i])
			}
			g.out.cols = append(g.out.cols, j)
			w := core.DefaultEdgeWeight
			if weights != nil {
				w = weights[i][k]
			}
			if w != core.DefaultEdgeWeight {
				uniform = false
			}
			flat = append(flat, w)
		}
	}
	if !uniform {
		g.out.weights = flat
	}

	if directed {
		g.in = transpose(&g.out, n)
	} else {
		g.in = g.out
	}
	g.edgeCount = g.countEdges()

	return g, nil
}

// FromReader snapshots any Reader, preserving its node order, neighbor
// order, and for directed graphs its in-neighbor order.
// Complexity: O(V + E).
func FromReader[K comparable](r core.Reader[K]) (*CSRGraph[K], error) {
	order := make([]K, 0, r.NodeCount())
	for id := range r.Nodes() {
		order = append(order, id)
	}

	g := &CSRGraph[K]{directed: r.Directed(), edgeCount: r.EdgeCount()}
	if err := g.indexNodes(order); err != nil {
		return nil, err
	}

	var err error
	if g.out, err = g.capture(order, r.Neighbors); err != nil {
		return nil, err
	}
	if g.directed {
		if g.in, err = g.capture(order, r.InNeighbors); err != nil {
			return nil, err
		}
	} else {
		g.in = g.out
	}

	return g, nil
}

func (g *CSRGraph[K]) indexNodes(order []K) error {
	g.ids = make([]K, len(order))
	copy(g.ids, order)
	g.index = make(map[K]int, len(order))
	for i, id := range order {
		if _, dup := g.index[id]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateNode, id)
		}
		g.index[id] = i
	}

	return nil
}

// capture flattens one neighbor relation of a reader into a rows half.
func (g *CSRGraph[K]) capture(order []K, seq func(K) iter.Seq2[K, float64]) (rows, error) {
	var r rows
	r.offsets = make([]int, len(order)+1)
	uniform := true
	var flat []float64
	for i, id := range order {
		for nb, w := range seq(id) {
			j, ok := g.index[nb]
			if !ok {
				return rows{}, fmt.Errorf("%w: %v (row of %v)", ErrUnknownNeighbor, nb, id)
			}
			r.cols = append(r.cols, j)
			flat = append(flat, w)
			if w != core.DefaultEdgeWeight {
				uniform = false
			}
		}
		r.offsets[i+1] = len(r.cols)
	}
	if !uniform {
		r.weights = flat
	}

	return r, nil
}

// transpose builds the incoming half of a directed CSR. In-neighbors of a
// node are ordered by source row, then by position within that row.
func transpose(out *rows, n int) rows {
	var in rows
	in.offsets = make([]int, n+1)
	for _, c := range out.cols {
		in.offsets[c+1]++
	}
	for i := 0; i < n; i++ {
		in.offsets[i+1] += in.offsets[i]
	}
	in.cols = make([]int, len(out.cols))
	if out.weights != nil {
		in.weights = make([]float64, len(out.cols))
	}
	cursor := make([]int, n)
	copy(cursor, in.offsets[:n])
	for u := 0; u < n; u++ {
		for k := out.offsets[u]; k < out.offsets[u+1]; k++ {
			v := out.cols[k]
			in.cols[cursor[v]] = u
			if in.weights != nil {
				in.weights[cursor[v]] = out.weights[k]
			}
			cursor[v]++
		}
	}

	return in
}

// countEdges derives the logical edge count from stored records: one per
// directed entry; for undirected graphs non-loop entries pair up.
func (g *CSRGraph[K]) countEdges() int {
	if g.directed {
		return len(g.out.cols)
	}
	loops := 0
	for u := range g.ids {
		for k := g.out.offsets[u]; k < g.out.offsets[u+1]; k++ {
			if g.out.cols[k] == u {
				loops++
			}
		}
	}

	return (len(g.out.cols)-loops)/2 + loops
}

// Directed reports whether the snapshot is directed.
func (g *CSRGraph[K]) Directed() bool { return g.directed }

// NodeCount returns the number of nodes.
func (g *CSRGraph[K]) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of logical edges.
func (g *CSRGraph[K]) EdgeCount() int { return g.edgeCount }

// TotalEdgeCount returns the number of stored (outgoing) adjacency entries.
func (g *CSRGraph[K]) TotalEdgeCount() int { return len(g.out.cols) }

// Weighted reports whether any captured weight differs from 1.
func (g *CSRGraph[K]) Weighted() bool { return g.out.weights != nil }

// HasNode reports whether id is part of the snapshot.
func (g *CSRGraph[K]) HasNode(id K) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether from's row contains to. Complexity: O(deg(from)).
func (g *CSRGraph[K]) HasEdge(from, to K) bool {
	i, ok := g.index[from]
	if !ok {
		return false
	}
	j, ok := g.index[to]
	if !ok {
		return false
	}
	for k := g.out.offsets[i]; k < g.out.offsets[i+1]; k++ {
		if g.out.cols[k] == j {
			return true
		}
	}

	return false
}

// Nodes yields node IDs in captured order.
func (g *CSRGraph[K]) Nodes() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, id := range g.ids {
			if !yield(id) {
				return
			}
		}
	}
}

func (g *CSRGraph[K]) rowSeq(r *rows, id K) iter.Seq2[K, float64] {
	return func(yield func(K, float64) bool) {
		i, ok := g.index[id]
		if !ok {
			return
		}
		for k := r.offsets[i]; k < r.offsets[i+1]; k++ {
			if !yield(g.ids[r.cols[k]], r.weight(k)) {
				return
			}
		}
	}
}

// Neighbors yields (neighbor, weight) pairs of id in captured order.
func (g *CSRGraph[K]) Neighbors(id K) iter.Seq2[K, float64] { return g.rowSeq(&g.out, id) }

// InNeighbors yields in-neighbors for directed snapshots and equals
// Neighbors for undirected ones.
func (g *CSRGraph[K]) InNeighbors(id K) iter.Seq2[K, float64] { return g.rowSeq(&g.in, id) }

// OutDegree returns the row length of id.
// Errors: core.ErrNodeNotFound.
func (g *CSRGraph[K]) OutDegree(id K) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("csr: OutDegree(%v): %w", id, core.ErrNodeNotFound)
	}

	return g.out.degree(i), nil
}

// InDegree returns the incoming row length of id.
// Errors: core.ErrNodeNotFound.
func (g *CSRGraph[K]) InDegree(id K) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("csr: InDegree(%v): %w", id, core.ErrNodeNotFound)
	}

	return g.in.degree(i), nil
}

// IndexOf returns the dense index of id.
func (g *CSRGraph[K]) IndexOf(id K) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// IDAt returns the node ID at dense index i. It panics when i is out of range.
func (g *CSRGraph[K]) IDAt(i int) K { return g.ids[i] }

// Row returns the column indices of node i. The slice aliases internal
// storage and must not be modified.
func (g *CSRGraph[K]) Row(i int) []int { return g.out.cols[g.out.offsets[i]:g.out.offsets[i+1]] }

// RowWeights returns the weights parallel to Row(i), or nil when the
// snapshot is unweighted. The slice must not be modified.
func (g *CSRGraph[K]) RowWeights(i int) []float64 {
	if g.out.weights == nil {
		return nil
	}

	return g.out.weights[g.out.offsets[i]:g.out.offsets[i+1]]
}

// Offsets returns a copy of the row offset array (length NodeCount()+1).
func (g *CSRGraph[K]) Offsets() []int {
	out := make([]int, len(g.out.offsets))
	copy(out, g.out.offsets)

	return out
}

// Columns returns a copy of the flat column index array.
func (g *CSRGraph[K]) Columns() []int {
	out := make([]int, len(g.out.cols))
	copy(out, g.out.cols)

	return out
}
