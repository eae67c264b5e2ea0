// SPDX-License-Identifier: MIT

package centrality

import (
	"iter"

	"github.com/katalvlaran/graphengine/core"
)

// link is one adjacency entry over dense indices.
type link struct {
	to int
	w  float64
}

// dense is a position-indexed copy of a Reader's adjacency. Index i is the
// i-th node in the Reader's order, so results built from it are
// deterministic for a given graph.
type dense[K comparable] struct {
	directed bool
	ids      []K
	pos      map[K]int
	out      [][]link
	in       [][]link
}

func newDense[K comparable](g core.Reader[K]) *dense[K] {
	n := g.NodeCount()
	d := &dense[K]{
		directed: g.Directed(),
		ids:      make([]K, 0, n),
		pos:      make(map[K]int, n),
	}
	for v := range g.Nodes() {
		d.pos[v] = len(d.ids)
		d.ids = append(d.ids, v)
	}
	d.out = make([][]link, len(d.ids))
	d.in = make([][]link, len(d.ids))
	for i, v := range d.ids {
		for nb, w := range g.Neighbors(v) {
			d.out[i] = append(d.out[i], link{to: d.pos[nb], w: w})
		}
		for nb, w := range g.InNeighbors(v) {
			d.in[i] = append(d.in[i], link{to: d.pos[nb], w: w})
		}
	}

	return d
}

func (d *dense[K]) n() int { return len(d.ids) }

// scores converts a dense vector back to a map.
func (d *dense[K]) scores(vec []float64) Scores[K] {
	out := make(Scores[K], len(vec))
	for i, s := range vec {
		out[d.ids[i]] = s
	}

	return out
}

// reversed swaps the out and in views of a directed Reader, so a traversal
// over it follows edges backwards.
type reversed[K comparable] struct {
	core.Reader[K]
}

func (r reversed[K]) HasEdge(from, to K) bool { return r.Reader.HasEdge(to, from) }

func (r reversed[K]) Neighbors(id K) iter.Seq2[K, float64] { return r.Reader.InNeighbors(id) }

func (r reversed[K]) InNeighbors(id K) iter.Seq2[K, float64] { return r.Reader.Neighbors(id) }

func (r reversed[K]) OutDegree(id K) (int, error) { return r.Reader.InDegree(id) }

func (r reversed[K]) InDegree(id K) (int, error) { return r.Reader.OutDegree(id) }

