// SPDX-License-Identifier: MIT
//
// File: girvannewman.go
// Role: divisive community detection by repeated removal of the edge with
// the highest betweenness.
// Determinism:
//   - Among edges of equal betweenness the first in graph order is removed.

package community

import (
	"fmt"

	"github.com/katalvlaran/graphengine/centrality"
	"github.com/katalvlaran/graphengine/components"
	"github.com/katalvlaran/graphengine/core"
)

// GirvanNewmanOptions configures GirvanNewman.
type GirvanNewmanOptions struct {
	// TargetCommunities stops the division once at least this many
	// communities exist and selects that level. Zero runs until no edge is
	// left and selects the level of highest modularity.
	TargetCommunities int

	// Weighted uses edge weights as distances when computing betweenness.
	Weighted bool

	// Resolution γ used to score each level (zero means 1).
	Resolution float64
}

// Level is one split of the Girvan-Newman dendrogram.
type Level[K comparable] struct {
	Communities [][]K
	Modularity  float64

	// Removed counts the edges deleted before this split appeared.
	Removed int
}

// GirvanNewmanResult carries the selected partition and every level.
type GirvanNewmanResult[K comparable] struct {
	Result[K]

	// Dendrogram lists levels in order of increasing community count.
	Dendrogram []Level[K]
}

// GirvanNewman detects communities by removing, one at a time, the edge of
// highest edge betweenness and recording a level each time the number of
// connected components grows. Scores are recomputed after every removal.
// Modularity is evaluated on the original graph; directed graphs are read
// as their undirected projection and self-loops play no part in the division.
//
// Errors: ErrGraphNil, ErrBadOption, ErrNegativeWeight.
// Complexity: O(E²·V) unweighted, O(E²·V·log V) weighted.
func GirvanNewman[K comparable](g core.Reader[K], opts GirvanNewmanOptions) (*GirvanNewmanResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if opts.TargetCommunities < 0 || opts.Resolution < 0 {
		return nil, fmt.Errorf("%w: TargetCommunities=%d Resolution=%g must be >= 0",
			ErrBadOption, opts.TargetCommunities, opts.Resolution)
	}
	gamma := opts.Resolution
	if gamma == 0 {
		gamma = DefaultResolution
	}
	base, ids, _ := project(g)
	if err := base.checkWeights(); err != nil {
		return nil, err
	}

	// 1) Working copy over dense indices, parallel edges already merged.
	work := core.NewGraph[int]()
	for i := range ids {
		work.AddNode(i)
	}
	for i, nbrs := range base.adj {
		for _, l := range nbrs {
			if i < l.to {
				if _, err := work.AddEdge(i, l.to, core.WithWeight(l.w)); err != nil {
					return nil, fmt.Errorf("community: %w", err)
				}
			}
		}
	}

	var (
		levels  []Level[K]
		members [][]int
	)
	record := func(removed int) (int, error) {
		comps, err := components.Connected(work)
		if err != nil {
			return 0, fmt.Errorf("community: %w", err)
		}
		member := make([]int, len(ids))
		for i := range member {
			member[i] = comps.Membership[i]
		}
		p := make(Partition[K], len(ids))
		for i, id := range ids {
			p[id] = member[i]
		}
		levels = append(levels, Level[K]{
			Communities: Communities(g, p),
			Modularity:  base.quality(member, gamma),
			Removed:     removed,
		})
		members = append(members, member)

		return comps.Count(), nil
	}

	// 2) Remove the top edge until the target is met or no edge is left.
	count, err := record(0)
	if err != nil {
		return nil, err
	}
	removed := 0
	for work.EdgeCount() > 0 && (opts.TargetCommunities == 0 || count < opts.TargetCommunities) {
		scores, err := centrality.EdgeBetweenness[int](work, centrality.BetweennessOptions{Weighted: opts.Weighted})
		if err != nil {
			return nil, fmt.Errorf("community: %w", err)
		}
		top := 0
		for i, s := range scores {
			if s.Score > scores[top].Score {
				top = i
			}
		}
		e, err := work.GetEdge(scores[top].From, scores[top].To)
		if err != nil {
			return nil, fmt.Errorf("community: %w", err)
		}
		if err = work.RemoveEdge(e.ID); err != nil {
			return nil, fmt.Errorf("community: %w", err)
		}
		removed++

		if comps, err := components.Connected(work); err != nil {
			return nil, fmt.Errorf("community: %w", err)
		} else if comps.Count() > count {
			if count, err = record(removed); err != nil {
				return nil, err
			}
		}
	}

	// 3) Select the level.
	pick := 0
	for i, lv := range levels {
		if opts.TargetCommunities > 0 {
			pick = i
			continue
		}
		if lv.Modularity > levels[pick].Modularity {
			pick = i
		}
	}
	chosen := newResult(g, ids, members[pick], levels[pick].Modularity, len(levels))

	return &GirvanNewmanResult[K]{Result: *chosen, Dendrogram: levels}, nil
}
