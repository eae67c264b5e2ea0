// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors for the max-flow family.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = fmt.Errorf("flow: source %w", core.ErrNodeNotFound)

	// ErrSinkNotFound is returned when the sink vertex is missing.
	ErrSinkNotFound = fmt.Errorf("flow: sink %w", core.ErrNodeNotFound)

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = fmt.Errorf("flow: source equals sink: %w", core.ErrInvalidParameter)

	// ErrBadOption indicates a negative Epsilon or LevelRebuildInterval.
	ErrBadOption = fmt.Errorf("flow: %w", core.ErrInvalidParameter)
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To any
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %v→%v: %g", e.From, e.To, e.Cap)
}

// Unwrap classifies a negative capacity as an invalid topology.
func (e EdgeError) Unwrap() error { return core.ErrInvalidTopology }

// DefaultEpsilon is the capacity at or below which an arc counts as saturated.
const DefaultEpsilon = 1e-9

// Options configures all max-flow algorithms.
//   - Epsilon: treat capacities <= Epsilon as zero (default 1e-9).
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N
//     augmentations (0 means only when blocked).
//   - Logger: receives every augmentation at debug level.
type Options struct {
	Epsilon              float64
	LevelRebuildInterval int
	Logger               zerolog.Logger
}

// DefaultOptions returns Epsilon 1e-9 and a no-op logger.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, Logger: zerolog.Nop()}
}

func (o *Options) normalize() error {
	if o.Epsilon < 0 || o.LevelRebuildInterval < 0 {
		return fmt.Errorf("%w: Epsilon=%g LevelRebuildInterval=%d must be >= 0",
			ErrBadOption, o.Epsilon, o.LevelRebuildInterval)
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}

	return nil
}

// Result is a maximum flow and the minimum cut that certifies it.
type Result[K comparable] struct {
	// MaxFlow is the total value sent from source to sink.
	MaxFlow float64

	// Flow holds the net flow on every ordered pair u→v that carries some,
	// opposite arcs cancelled.
	Flow map[K]map[K]float64

	// MinCut is the source side of a minimum cut: the nodes reachable from
	// the source in the final residual network, in node order.
	MinCut []K

	// CutEdges lists the saturated pairs u→v crossing the cut, with their
	// capacity as Weight. Their total equals MaxFlow.
	CutEdges []core.Edge[K]

	// Residual holds the remaining capacity of every arc, reverse arcs included.
	Residual *core.Graph[K]
}

// FlowOn returns the net flow on u→v (0 when none).
func (r *Result[K]) FlowOn(u, v K) float64 {
	return r.Flow[u][v]
}
