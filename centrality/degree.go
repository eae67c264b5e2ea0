// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Degree returns each node's degree in the chosen Mode, counted the way
// core.Graph.Degree counts it: on undirected graphs the mode is ignored and
// a self-loop contributes 2; on directed graphs ModeTotal is in + out, so a
// loop contributes 1 to each. With Normalized the counts are divided by n-1
// (left unscaled when n <= 1).
func Degree[K comparable](g core.Reader[K], opts DegreeOptions) (Scores[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	scale := 1.0
	if n := g.NodeCount(); opts.Normalized && n > 1 {
		scale = 1 / float64(n-1)
	}

	out := make(Scores[K], g.NodeCount())
	for v := range g.Nodes() {
		deg, err := degreeOf(g, v, opts.Mode)
		if err != nil {
			return nil, fmt.Errorf("centrality: %w", err)
		}
		out[v] = float64(deg) * scale
	}

	return out, nil
}

func degreeOf[K comparable](g core.Reader[K], v K, mode Mode) (int, error) {
	if !g.Directed() {
		deg, err := g.OutDegree(v)
		for nb := range g.Neighbors(v) {
			if nb == v {
				deg++
			}
		}

		return deg, err
	}
	in, err := g.InDegree(v)
	if err != nil {
		return 0, err
	}
	out, err := g.OutDegree(v)
	if err != nil {
		return 0, err
	}
	switch mode {
	case ModeIn:
		return in, nil
	case ModeOut:
		return out, nil
	default:
		return in + out, nil
	}
}
