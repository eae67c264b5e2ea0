// SPDX-License-Identifier: MIT

// Package gonumgraph exposes any core.Reader as a read-only gonum graph so
// gonum's graph algorithms (topo, path, community, network, ...) can run
// over engine graphs without copying them.
//
// Node IDs are the dense positions of the Reader's node order (0..n-1);
// View.ID and View.Key translate between the two spaces.
package gonumgraph

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphengine/core"
)

var (
	_ graph.Directed   = (*Directed[string])(nil)
	_ graph.Weighted   = (*Directed[string])(nil)
	_ graph.Undirected = (*Undirected[string])(nil)
	_ graph.Weighted   = (*Undirected[string])(nil)
)

// View holds the ID mapping shared by Directed and Undirected.
type View[K comparable] struct {
	src   core.Reader[K]
	keys  []K
	ids   map[K]int64
	nodes []graph.Node
}

func newView[K comparable](r core.Reader[K]) View[K] {
	v := View[K]{src: r, ids: make(map[K]int64, r.NodeCount())}
	for k := range r.Nodes() {
		id := int64(len(v.keys))
		v.ids[k] = id
		v.keys = append(v.keys, k)
		v.nodes = append(v.nodes, simple.Node(id))
	}

	return v
}

// ID returns the gonum node ID of k.
func (v *View[K]) ID(k K) (int64, bool) {
	id, ok := v.ids[k]

	return id, ok
}

// Key returns the engine node ID behind a gonum node ID.
func (v *View[K]) Key(id int64) (K, bool) {
	if id < 0 || id >= int64(len(v.keys)) {
		var zero K
		return zero, false
	}

	return v.keys[id], true
}

// Keys converts a gonum node slice back to engine IDs.
func (v *View[K]) Keys(nodes []graph.Node) []K {
	out := make([]K, 0, len(nodes))
	for _, n := range nodes {
		if k, ok := v.Key(n.ID()); ok {
			out = append(out, k)
		}
	}

	return out
}

// Node returns the node with the given ID, or nil.
func (v *View[K]) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(v.nodes)) {
		return nil
	}

	return v.nodes[id]
}

// Nodes returns every node in Reader order.
func (v *View[K]) Nodes() graph.Nodes {
	return iterator.NewOrderedNodes(v.nodes)
}

// From returns the nodes reachable in one step from id, without duplicates.
func (v *View[K]) From(id int64) graph.Nodes {
	k, ok := v.Key(id)
	if !ok {
		return graph.Empty
	}

	return v.collect(v.src.Neighbors(k))
}

func (v *View[K]) collect(seq func(func(K, float64) bool)) graph.Nodes {
	seen := make(map[int64]struct{})
	var out []graph.Node
	for nb := range seq {
		id := v.ids[nb]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, v.nodes[id])
	}
	if len(out) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(out)
}

// weight returns the minimum weight over the arcs x→y, if any.
func (v *View[K]) weight(xid, yid int64) (float64, bool) {
	x, okX := v.Key(xid)
	y, okY := v.Key(yid)
	if !okX || !okY {
		return 0, false
	}
	best, found := math.Inf(1), false
	for nb, w := range v.src.Neighbors(x) {
		if nb == y && w < best {
			best, found = w, true
		}
	}

	return best, found
}

// Weight returns the edge weight x→y. A node's weight to itself is 0 unless
// a self-loop is stored; absent edges report ok == false.
func (v *View[K]) Weight(xid, yid int64) (float64, bool) {
	if w, ok := v.weight(xid, yid); ok {
		return w, true
	}
	if xid == yid && v.Node(xid) != nil {
		return 0, true
	}

	return 0, false
}

// WeightedEdge returns the edge u→v with its (minimum) weight, or nil.
func (v *View[K]) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	w, ok := v.weight(uid, vid)
	if !ok {
		return nil
	}

	return simple.WeightedEdge{F: v.nodes[uid], T: v.nodes[vid], W: w}
}

// Edge returns the edge u→v, or nil.
func (v *View[K]) Edge(uid, vid int64) graph.Edge {
	e := v.WeightedEdge(uid, vid)
	if e == nil {
		return nil
	}

	return e
}

// Directed is a gonum graph.Directed and graph.Weighted view of a directed Reader.
type Directed[K comparable] struct {
	View[K]
}

// NewDirected wraps a directed Reader. The node order is captured now; later
// edge changes in the source are visible, node additions are not.
func NewDirected[K comparable](r core.Reader[K]) *Directed[K] {
	return &Directed[K]{View: newView(r)}
}

// HasEdgeBetween reports an edge in either direction.
func (d *Directed[K]) HasEdgeBetween(xid, yid int64) bool {
	return d.HasEdgeFromTo(xid, yid) || d.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports an edge u→v.
func (d *Directed[K]) HasEdgeFromTo(uid, vid int64) bool {
	u, okU := d.Key(uid)
	v, okV := d.Key(vid)

	return okU && okV && d.src.HasEdge(u, v)
}

// To returns the nodes with an edge into id.
func (d *Directed[K]) To(id int64) graph.Nodes {
	k, ok := d.Key(id)
	if !ok {
		return graph.Empty
	}

	return d.collect(d.src.InNeighbors(k))
}

// Undirected is a gonum graph.Undirected and graph.Weighted view. A directed
// Reader is seen as its undirected projection: an arc in either direction
// joins the pair.
type Undirected[K comparable] struct {
	View[K]
}

// NewUndirected wraps a Reader as an undirected graph.
func NewUndirected[K comparable](r core.Reader[K]) *Undirected[K] {
	return &Undirected[K]{View: newView(r)}
}

// From returns the neighbors of id in the undirected projection.
func (u *Undirected[K]) From(id int64) graph.Nodes {
	k, ok := u.Key(id)
	if !ok {
		return graph.Empty
	}
	if !u.src.Directed() {
		return u.collect(u.src.Neighbors(k))
	}

	return u.collect(func(yield func(K, float64) bool) {
		for nb, w := range u.src.Neighbors(k) {
			if !yield(nb, w) {
				return
			}
		}
		for nb, w := range u.src.InNeighbors(k) {
			if !yield(nb, w) {
				return
			}
		}
	})
}

// HasEdgeBetween reports an edge joining x and y in either direction.
func (u *Undirected[K]) HasEdgeBetween(xid, yid int64) bool {
	x, okX := u.Key(xid)
	y, okY := u.Key(yid)

	return okX && okY && (u.src.HasEdge(x, y) || u.src.HasEdge(y, x))
}

// WeightedEdge returns the edge joining u and v, or nil.
func (u *Undirected[K]) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if e := u.View.WeightedEdge(uid, vid); e != nil {
		return e
	}
	if e := u.View.WeightedEdge(vid, uid); e != nil {
		return simple.WeightedEdge{F: u.nodes[uid], T: u.nodes[vid], W: e.Weight()}
	}

	return nil
}

// Weight returns the edge weight joining x and y.
func (u *Undirected[K]) Weight(xid, yid int64) (float64, bool) {
	if w, ok := u.View.Weight(xid, yid); ok {
		return w, true
	}

	return u.View.Weight(yid, xid)
}

// Edge returns the edge joining u and v, or nil.
func (u *Undirected[K]) Edge(uid, vid int64) graph.Edge {
	if e := u.WeightedEdge(uid, vid); e != nil {
		return e
	}

	return nil
}

// EdgeBetween is Edge for undirected graphs.
func (u *Undirected[K]) EdgeBetween(xid, yid int64) graph.Edge {
	return u.Edge(xid, yid)
}

// New returns a Directed view for directed Readers and an Undirected view otherwise.
func New[K comparable](r core.Reader[K]) graph.Weighted {
	if r.Directed() {
		return NewDirected(r)
	}

	return NewUndirected(r)
}
