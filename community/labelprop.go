// SPDX-License-Identifier: MIT

package community

import (
	"github.com/katalvlaran/graphengine/core"
)

// LabelPropagation detects communities by weighted label spreading. Every
// node starts with its own label; sweeps visit nodes in graph order and
// give each node the label carrying the most edge weight among its
// neighbors. A node keeps its label when that label is among the heaviest,
// otherwise the smallest heaviest label wins. Sweeps stop when nothing
// changes or after MaxIterations. Resolution only affects the reported
// modularity.
//
// Errors: ErrGraphNil, ErrBadOption, ErrNegativeWeight.
func LabelPropagation[K comparable](g core.Reader[K], opts Options) (*Result[K], error) {
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

	n := base.n()
	label := identity(n)
	weight := make([]float64, n)
	var touched []int
	sweeps := 0
	for sweeps < opts.MaxIterations {
		sweeps++
		changed := 0
		for i := 0; i < n; i++ {
			if len(base.adj[i]) == 0 {
				continue
			}
			for _, c := range touched {
				weight[c] = 0
			}
			touched = touched[:0]
			for _, l := range base.adj[i] {
				c := label[l.to]
				if weight[c] == 0 {
					touched = append(touched, c)
				}
				weight[c] += l.w
			}

			best := label[i]
			for _, c := range touched {
				switch {
				case weight[c] > weight[best]:
					best = c
				case weight[c] == weight[best] && best != label[i] && c < best:
					best = c
				}
			}
			if best != label[i] {
				label[i] = best
				changed++
			}
		}
		opts.Logger.Debug().Int("sweep", sweeps).Int("changed", changed).Msg("label propagation sweep")
		if changed == 0 {
			break
		}
	}

	return newResult(g, ids, label, base.quality(label, opts.Resolution), sweeps), nil
}
