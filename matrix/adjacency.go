// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: dense adjacency and Laplacian views of a graph, backed by gonum/mat.
// Determinism:
//   - Row/column i is the i-th node of g in graph order.
//   - Parallel edges accumulate: an entry is the sum of their weights.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphengine/core"
)

var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNotSymmetric indicates a Laplacian request on a directed,
	// unsymmetrized adjacency.
	ErrNotSymmetric = fmt.Errorf("matrix: adjacency is not symmetric: %w", core.ErrInvalidTopology)

	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigendecomposition failed")
)

// Options controls how edges become entries.
type Options struct {
	// Symmetrize folds a directed graph into an undirected one: arc u->v
	// adds its weight to both (u,v) and (v,u). Undirected graphs are
	// always symmetric.
	Symmetrize bool

	// DropLoops leaves the diagonal at zero.
	DropLoops bool

	// Binary records 1 for every adjacent pair instead of summed weights.
	Binary bool
}

// Adjacency is an n×n weighted adjacency matrix over a fixed node order.
type Adjacency[K comparable] struct {
	ids       []K
	index     map[K]int
	data      *mat.Dense
	symmetric bool
}

// NewAdjacency builds the adjacency matrix of g.
//
// Steps:
//  1. Index nodes by graph order.
//  2. Walk every neighbor entry once: directed arcs fill (u,v); undirected
//     edges fill (u,v) and (v,u) from the lower-index endpoint, and a
//     self-loop fills its diagonal cell once.
//  3. Apply Binary.
//
// Errors: ErrGraphNil.
// Complexity: O(V² + E) time, O(V²) memory.
func NewAdjacency[K comparable](g core.Reader[K], opts Options) (*Adjacency[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	a := &Adjacency[K]{index: make(map[K]int, g.NodeCount())}
	for v := range g.Nodes() {
		a.index[v] = len(a.ids)
		a.ids = append(a.ids, v)
	}
	n := len(a.ids)
	a.symmetric = !g.Directed() || opts.Symmetrize
	if n == 0 {
		return a, nil
	}
	a.data = mat.NewDense(n, n, nil)

	add := func(i, j int, w float64) { a.data.Set(i, j, a.data.At(i, j)+w) }
	for i, u := range a.ids {
		for v, w := range g.Neighbors(u) {
			j := a.index[v]
			switch {
			case i == j:
				if !opts.DropLoops {
					add(i, i, w)
				}
			case g.Directed():
				add(i, j, w)
				if opts.Symmetrize {
					add(j, i, w)
				}
			case i < j:
				add(i, j, w)
				add(j, i, w)
			}
		}
	}
	if opts.Binary {
		a.data.Apply(func(_, _ int, x float64) float64 {
			if x != 0 {
				return 1
			}
			return 0
		}, a.data)
	}

	return a, nil
}

// Nodes returns the row order.
func (a *Adjacency[K]) Nodes() []K { return append([]K(nil), a.ids...) }

// Len returns the number of rows.
func (a *Adjacency[K]) Len() int { return len(a.ids) }

// Index returns the row of id.
func (a *Adjacency[K]) Index(id K) (int, bool) {
	i, ok := a.index[id]

	return i, ok
}

// Symmetric reports whether the matrix equals its transpose by construction.
func (a *Adjacency[K]) Symmetric() bool { return a.symmetric }

// Dense returns a copy of the matrix, or nil for an empty graph.
func (a *Adjacency[K]) Dense() *mat.Dense {
	if a.data == nil {
		return nil
	}

	return mat.DenseCopyOf(a.data)
}

// At returns the entry for the ordered pair (u, v).
// Errors: core.ErrNodeNotFound.
func (a *Adjacency[K]) At(u, v K) (float64, error) {
	i, ok := a.index[u]
	if !ok {
		return 0, fmt.Errorf("matrix: At(%v, %v): %w", u, v, core.ErrNodeNotFound)
	}
	j, ok := a.index[v]
	if !ok {
		return 0, fmt.Errorf("matrix: At(%v, %v): %w", u, v, core.ErrNodeNotFound)
	}

	return a.data.At(i, j), nil
}

// Degrees returns the row sums (weighted out-degree; a loop counts its
// weight once).
func (a *Adjacency[K]) Degrees() []float64 {
	deg := make([]float64, len(a.ids))
	for i := range deg {
		deg[i] = floats.Sum(a.data.RawRowView(i))
	}

	return deg
}

// Laplacian returns L = D - A, or nil for an empty graph.
// Errors: ErrNotSymmetric.
func (a *Adjacency[K]) Laplacian() (*mat.SymDense, error) {
	if !a.symmetric {
		return nil, ErrNotSymmetric
	}
	n := len(a.ids)
	if n == 0 {
		return nil, nil
	}
	deg := a.Degrees()
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		lap.SetSym(i, i, deg[i]-a.data.At(i, i))
		for j := i + 1; j < n; j++ {
			lap.SetSym(i, j, -a.data.At(i, j))
		}
	}

	return lap, nil
}

// NormalizedLaplacian returns I - D^-1/2 A D^-1/2. Rows of isolated nodes
// are all zero, diagonal included.
// Errors: ErrNotSymmetric.
func (a *Adjacency[K]) NormalizedLaplacian() (*mat.SymDense, error) {
	if !a.symmetric {
		return nil, ErrNotSymmetric
	}
	n := len(a.ids)
	if n == 0 {
		return nil, nil
	}
	deg := a.Degrees()
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if deg[i] <= 0 {
			continue
		}
		lap.SetSym(i, i, 1-a.data.At(i, i)/deg[i])
		for j := i + 1; j < n; j++ {
			if deg[j] > 0 {
				lap.SetSym(i, j, -a.data.At(i, j)/math.Sqrt(deg[i]*deg[j]))
			}
		}
	}

	return lap, nil
}

// Eigen holds eigenvalues in ascending order and the matching
// eigenvectors as columns.
type Eigen struct {
	Values  []float64
	Vectors *mat.Dense
}

// Decompose factorizes a symmetric matrix.
// Errors: ErrEigenFailed.
func Decompose(s mat.Symmetric) (*Eigen, error) {
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, ErrEigenFailed
	}
	e := &Eigen{Values: es.Values(nil), Vectors: &mat.Dense{}}
	es.VectorsTo(e.Vectors)

	return e, nil
}

// Spectrum returns the eigenvalues of the (normalized) Laplacian, ascending.
// The multiplicity of 0 is the number of connected components.
// Errors: ErrNotSymmetric, ErrEigenFailed.
func (a *Adjacency[K]) Spectrum(normalized bool) ([]float64, error) {
	if len(a.ids) == 0 {
		return nil, nil
	}
	var (
		lap *mat.SymDense
		err error
	)
	if normalized {
		lap, err = a.NormalizedLaplacian()
	} else {
		lap, err = a.Laplacian()
	}
	if err != nil {
		return nil, err
	}
	e, err := Decompose(lap)
	if err != nil {
		return nil, err
	}

	return e.Values, nil
}

// ToGraph rebuilds a graph from the matrix: directed unless symmetric,
// one edge per nonzero entry (upper triangle when symmetric), self-loops
// enabled when the diagonal is nonzero.
func (a *Adjacency[K]) ToGraph() *core.Graph[K] {
	n := len(a.ids)
	opts := []core.GraphOption{core.WithDirected(!a.symmetric)}
	for i := 0; i < n; i++ {
		if a.data.At(i, i) != 0 {
			opts = append(opts, core.WithSelfLoops())
			break
		}
	}
	g := core.NewGraph[K](opts...)
	for _, id := range a.ids {
		g.AddNode(id)
	}
	for i := 0; i < n; i++ {
		start := 0
		if a.symmetric {
			start = i
		}
		for j := start; j < n; j++ {
			if w := a.data.At(i, j); w != 0 {
				_, _ = g.AddEdge(a.ids[i], a.ids[j], core.WithWeight(w))
			}
		}
	}

	return g
}
