// SPDX-License-Identifier: MIT

package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
	"github.com/katalvlaran/graphengine/pqueue"
)

// Heuristic estimates the remaining cost from a node to the target.
// It must never overestimate for AStar to return an optimal path; this is
// not checked.
type Heuristic[K comparable] func(node K) float64

// PathResult is the outcome of a point-to-point search.
type PathResult[K comparable] struct {
	Path []K
	Cost float64

	// Expanded counts the nodes popped from the open set.
	Expanded int
}

// AStar finds a path from source to target, expanding nodes in order of
// g(n) + h(n). A nil heuristic reduces it to Dijkstra with early exit.
// A node whose cost improves after it was expanded is reopened, so an
// inconsistent (but admissible) heuristic still yields the optimum.
//
// Errors: ErrGraphNil, ErrSourceNotFound, ErrTargetNotFound, ErrNoPath.
func AStar[K comparable](g core.Reader[K], source, target K, h Heuristic[K]) (*PathResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}
	if h == nil {
		h = func(K) float64 { return 0 }
	}

	gScore := map[K]float64{source: 0}
	prev := make(map[K]K)
	open := pqueue.New[K]()
	open.Enqueue(source, h(source))
	expanded := 0

	for !open.IsEmpty() {
		u, _, _ := open.Dequeue()
		expanded++
		if u == target {
			return &PathResult[K]{Path: walkBack(prev, source, target), Cost: gScore[u], Expanded: expanded}, nil
		}

		for v, w := range g.Neighbors(u) {
			cand := gScore[u] + w
			if old, seen := gScore[v]; seen && cand >= old {
				continue
			}
			gScore[v] = cand
			prev[v] = u
			if !open.UpdatePriority(v, cand+h(v)) {
				open.Enqueue(v, cand+h(v))
			}
		}
	}

	return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, source, target)
}

func walkBack[K comparable](prev map[K]K, source, target K) []K {
	path := []K{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ZeroHeuristic is the trivially admissible heuristic.
func ZeroHeuristic[K comparable](K) float64 { return 0 }
