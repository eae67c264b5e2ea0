// SPDX-License-Identifier: MIT
//
// File: louvain.go
// Role: Louvain modularity optimization (local moving + coarsening).
// Determinism:
//   - Nodes are visited in index order and candidate communities in
//     adjacency order; the first strictly best gain wins.

package community

import (
	"github.com/katalvlaran/graphengine/core"
)

// mover holds the scratch state of a local-moving sweep.
type mover struct {
	g       *wgraph
	gamma   float64
	tol     float64
	tot     []float64 // degree sum per community label
	kin     []float64 // weight from the current node to each label
	touched []int
}

func newMover(g *wgraph, member []int, gamma, tol float64) *mover {
	mv := &mover{
		g:     g,
		gamma: gamma,
		tol:   tol,
		tot:   make([]float64, g.n()),
		kin:   make([]float64, g.n()),
	}
	for i, c := range member {
		mv.tot[c] += g.degree[i]
	}

	return mv
}

// gather fills kin for node i under member and returns the labels touched
// in adjacency order. Self-loops are skipped.
func (mv *mover) gather(i int, member []int) []int {
	for _, c := range mv.touched {
		mv.kin[c] = 0
	}
	mv.touched = mv.touched[:0]
	for _, l := range mv.g.adj[i] {
		c := member[l.to]
		if mv.kin[c] == 0 {
			mv.touched = append(mv.touched, c)
		}
		mv.kin[c] += l.w
	}

	return mv.touched
}

// sweep moves every node once, in index order, to the neighboring
// community with the best modularity gain. It returns the number of moves.
//
// Removing i from its community c0 and inserting it into c changes Q by
//
//	[kin(c) - γ·tot(c)·k_i/2m]/m - [kin(c0) - γ·(tot(c0)-k_i)·k_i/2m]/m
func (mv *mover) sweep(member []int) int {
	g := mv.g
	twoM := 2 * g.m
	moves := 0
	for i := 0; i < g.n(); i++ {
		ki := g.degree[i]
		c0 := member[i]
		mv.tot[c0] -= ki
		touched := mv.gather(i, member)

		stay := mv.kin[c0] - mv.gamma*mv.tot[c0]*ki/twoM
		best, bestGain := c0, stay
		for _, c := range touched {
			if c == c0 {
				continue
			}
			gain := mv.kin[c] - mv.gamma*mv.tot[c]*ki/twoM
			if gain > bestGain {
				best, bestGain = c, gain
			}
		}
		if best != c0 && (bestGain-stay)/g.m > mv.tol {
			member[i] = best
			moves++
		}
		mv.tot[member[i]] += ki
	}

	return moves
}

// moveNodes repeats sweeps until one moves nothing and reports whether any
// node changed community. Every accepted move raises Q by more than tol, so
// the loop terminates.
func (g *wgraph) moveNodes(member []int, gamma, tol float64) bool {
	if g.m == 0 {
		return false
	}
	mv := newMover(g, member, gamma, tol)
	moved := false
	for mv.sweep(member) > 0 {
		moved = true
	}

	return moved
}

// Louvain detects communities by greedy modularity optimization. Each
// level moves nodes between neighboring communities while modularity
// improves, then contracts every community into a single node; levels stop
// when no node moves or after MaxIterations levels. Directed graphs are
// read as their undirected projection.
//
// Errors: ErrGraphNil, ErrBadOption, ErrNegativeWeight.
// Complexity: O(L·S·(V + E)) for L levels of S sweeps each.
func Louvain[K comparable](g core.Reader[K], opts Options) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	base, ids, _ := project(g)
	if err = base.checkWeights(); err != nil {
		return nil, err
	}

	// 1) Every original node starts in its own community.
	orig := identity(base.n())
	cur := base
	levels := 0
	for levels < opts.MaxIterations {
		// 2) Local moving on the current (possibly contracted) graph.
		member := identity(cur.n())
		if !cur.moveNodes(member, opts.Resolution, opts.Tolerance) {
			break
		}
		k := relabel(member)
		for i := range orig {
			orig[i] = member[orig[i]]
		}
		levels++
		opts.Logger.Debug().
			Int("level", levels).
			Int("communities", k).
			Float64("modularity", base.quality(orig, opts.Resolution)).
			Msg("louvain level")

		// 3) Contract communities into nodes.
		if k == cur.n() {
			break
		}
		cur = cur.aggregate(member, k)
	}

	return newResult(g, ids, orig, base.quality(orig, opts.Resolution), levels), nil
}
