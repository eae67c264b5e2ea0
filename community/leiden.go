// SPDX-License-Identifier: MIT
//
// File: leiden.go
// Role: Leiden modularity optimization: local moving, refinement, and
// aggregation on the refined partition.
// Determinism:
//   - Refinement visits nodes in index order and merges greedily into the
//     best well-connected sub-community; no randomness is involved.

package community

import (
	"github.com/katalvlaran/graphengine/core"
)

// refine splits every community of member into well-connected
// sub-communities. A node that is still alone may join a sub-community of
// its own community when both are well connected to the rest of that
// community:
//
//	w(S, C∖S) >= γ·tot(S)·(tot(C) - tot(S))/2m
//
// Merges require a positive gain and an edge into the target, so every
// sub-community induces a connected subgraph.
func (g *wgraph) refine(member []int, gamma float64) []int {
	n := g.n()
	twoM := 2 * g.m
	refined := identity(n)
	if g.m == 0 {
		return refined
	}

	totC := make([]float64, n)
	inC := make([]float64, n) // weight from node i to the rest of its community
	for i, nbrs := range g.adj {
		totC[member[i]] += g.degree[i]
		for _, l := range nbrs {
			if member[l.to] == member[i] {
				inC[i] += l.w
			}
		}
	}
	totR := append([]float64(nil), g.degree...)
	extR := append([]float64(nil), inC...)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	kin := make([]float64, n)
	var touched []int
	for i := 0; i < n; i++ {
		if size[i] != 1 || refined[i] != i {
			continue
		}
		c := member[i]
		ki := g.degree[i]
		if inC[i] < gamma*ki*(totC[c]-ki)/twoM {
			continue
		}

		for _, r := range touched {
			kin[r] = 0
		}
		touched = touched[:0]
		for _, l := range g.adj[i] {
			if member[l.to] != c {
				continue
			}
			r := refined[l.to]
			if kin[r] == 0 {
				touched = append(touched, r)
			}
			kin[r] += l.w
		}

		best, bestGain := i, 0.0
		for _, r := range touched {
			if r == i || extR[r] < gamma*totR[r]*(totC[c]-totR[r])/twoM {
				continue
			}
			gain := kin[r] - gamma*ki*totR[r]/twoM
			if gain > bestGain {
				best, bestGain = r, gain
			}
		}
		if best == i {
			continue
		}
		refined[i] = best
		extR[best] += inC[i] - 2*kin[best]
		totR[best] += ki
		size[best]++
		size[i] = 0
	}

	return refined
}

// splitDisconnected relabels member so every community induces a connected
// subgraph of g; disconnected communities are split into their components.
func (g *wgraph) splitDisconnected(member []int) {
	n := g.n()
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	next := 0
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if out[s] >= 0 {
			continue
		}
		out[s] = next
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, l := range g.adj[u] {
				if out[l.to] < 0 && member[l.to] == member[s] {
					out[l.to] = next
					queue = append(queue, l.to)
				}
			}
		}
		next++
	}
	copy(member, out)
}

// Leiden detects communities with the Leiden refinement of Louvain. Each
// level (1) moves nodes greedily as Louvain does, (2) refines every
// community into well-connected sub-communities and (3) contracts the
// refined partition, the contracted nodes starting in the community their
// members belonged to. Levels stop when refinement leaves nothing to
// contract or after MaxIterations levels. Every returned community is
// connected.
//
// Errors: ErrGraphNil, ErrBadOption, ErrNegativeWeight.
func Leiden[K comparable](g core.Reader[K], opts Options) (*Result[K], error) {
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

	orig := identity(base.n()) // original node -> node of cur
	cur := base
	member := identity(cur.n())
	levels := 0
	for levels < opts.MaxIterations {
		// 1) Local moving.
		moved := cur.moveNodes(member, opts.Resolution, opts.Tolerance)
		relabel(member)

		// 2) Refinement within each community.
		refined := cur.refine(member, opts.Resolution)
		k := relabel(refined)
		levels++
		opts.Logger.Debug().
			Int("level", levels).
			Int("nodes", cur.n()).
			Int("refined", k).
			Bool("moved", moved).
			Msg("leiden level")
		if k == cur.n() {
			break
		}

		// 3) Aggregate on the refined partition; contracted nodes inherit
		// the community of their members.
		parent := make([]int, k)
		for i, r := range refined {
			parent[r] = member[i]
		}
		for i := range orig {
			orig[i] = refined[orig[i]]
		}
		cur = cur.aggregate(refined, k)
		member = parent
	}

	final := make([]int, base.n())
	for i, v := range orig {
		final[i] = member[v]
	}
	base.splitDisconnected(final)

	return newResult(g, ids, final, base.quality(final, opts.Resolution), levels), nil
}
