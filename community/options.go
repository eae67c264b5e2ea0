// SPDX-License-Identifier: MIT

package community

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults shared by the detectors.
const (
	DefaultResolution    = 1.0
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-7
)

// Options configures Louvain, Leiden and LabelPropagation.
// Zero numeric fields fall back to the defaults above.
type Options struct {
	// Resolution γ weights the null model; values above 1 favor smaller communities.
	Resolution float64

	// MaxIterations caps aggregation levels (Louvain, Leiden) or sweeps
	// (label propagation).
	MaxIterations int

	// Tolerance is the smallest modularity gain that counts as an improvement.
	Tolerance float64

	// Logger receives per-level progress at debug level. The zero Logger is silent.
	Logger zerolog.Logger
}

// DefaultOptions returns resolution 1, 100 levels, tolerance 1e-7 and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Resolution:    DefaultResolution,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Logger:        zerolog.Nop(),
	}
}

// resolve fills zero values and rejects negative ones.
func (o Options) resolve() (Options, error) {
	if o.Resolution < 0 || o.MaxIterations < 0 || o.Tolerance < 0 {
		return o, fmt.Errorf("%w: Resolution=%g MaxIterations=%d Tolerance=%g must be >= 0",
			ErrBadOption, o.Resolution, o.MaxIterations, o.Tolerance)
	}
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}

	return o, nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
