// SPDX-License-Identifier: MIT

package linkpred

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphengine/core"
)

// Prediction is a scored candidate link. U precedes V in node order.
type Prediction[K comparable] struct {
	U, V  K
	Score float64
}

// PredictOptions configures Predict.
type PredictOptions struct {
	// TopK keeps only the best TopK predictions (0 keeps all).
	TopK int

	// IncludeZero keeps pairs scoring 0.
	IncludeZero bool
}

// Predict scores every unordered pair of distinct, non-adjacent nodes with
// method m and returns them by descending score; equal scores keep node
// order (by U, then V).
//
// Errors: ErrGraphNil, ErrBadOption.
// Complexity: O(V² · d) for average neighborhood size d.
func Predict[K comparable](g core.Reader[K], m Method, opts PredictOptions) ([]Prediction[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m < CommonNeighborsMethod || m > PreferentialAttachmentMethod {
		return nil, fmt.Errorf("%w: unknown method %d", ErrBadOption, int(m))
	}
	if opts.TopK < 0 {
		return nil, fmt.Errorf("%w: TopK=%d must be >= 0", ErrBadOption, opts.TopK)
	}

	x := newIndex(g)
	var out []Prediction[K]
	for i := range x.ids {
		for j := i + 1; j < len(x.ids); j++ {
			if x.nbr[i][j] {
				continue
			}
			s := x.score(m, i, j)
			if s == 0 && !opts.IncludeZero {
				continue
			}
			out = append(out, Prediction[K]{U: x.ids[i], V: x.ids[j], Score: s})
		}
	}
	slices.SortStableFunc(out, func(a, b Prediction[K]) int { return cmp.Compare(b.Score, a.Score) })
	if opts.TopK > 0 && len(out) > opts.TopK {
		out = out[:opts.TopK]
	}

	return out, nil
}
