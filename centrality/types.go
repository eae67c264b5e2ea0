// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

// Sentinel errors for the centrality family.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = fmt.Errorf("centrality: %w", core.ErrInvalidParameter)

	// ErrSeedNotFound indicates a personalization seed absent from the graph.
	ErrSeedNotFound = fmt.Errorf("centrality: seed %w", core.ErrNodeNotFound)
)

// Scores maps every node to its centrality.
type Scores[K comparable] map[K]float64

// Of returns the score of id. A bare index reads 0 for a node the graph
// never had; Of tells the two apart.
// Errors: core.ErrNodeNotFound.
func (s Scores[K]) Of(id K) (float64, error) {
	v, ok := s[id]
	if !ok {
		return 0, fmt.Errorf("centrality: score of %v: %w", id, core.ErrNodeNotFound)
	}

	return v, nil
}

// Mode selects which edge direction a measure follows on directed graphs.
// Undirected graphs ignore it.
type Mode int

const (
	// ModeOut follows outgoing edges.
	ModeOut Mode = iota
	// ModeIn follows incoming edges.
	ModeIn
	// ModeTotal combines both directions (degree only).
	ModeTotal
)

// String returns "out", "in" or "total".
func (m Mode) String() string {
	switch m {
	case ModeIn:
		return "in"
	case ModeTotal:
		return "total"
	default:
		return "out"
	}
}

// DegreeOptions configures Degree.
type DegreeOptions struct {
	Mode Mode

	// Normalized divides by n-1.
	Normalized bool
}

// DefaultDegreeOptions counts total degree without normalization.
func DefaultDegreeOptions() DegreeOptions {
	return DegreeOptions{Mode: ModeTotal}
}

// ClosenessOptions configures Closeness.
type ClosenessOptions struct {
	// Mode is ModeOut (distances from the node) or ModeIn (distances to it).
	Mode Mode

	// Normalized applies the Wasserman-Faust scaling (r/(n-1))·(r/Σd),
	// r being the number of other nodes reached. Otherwise the score is 1/Σd.
	Normalized bool

	// Weighted uses edge weights as distances (Dijkstra) instead of hop counts (BFS).
	Weighted bool
}

// DefaultClosenessOptions returns outgoing, normalized, unweighted closeness.
func DefaultClosenessOptions() ClosenessOptions {
	return ClosenessOptions{Mode: ModeOut, Normalized: true}
}

// BetweennessOptions configures Betweenness and EdgeBetweenness.
type BetweennessOptions struct {
	// Normalized rescales by 1/((n-1)(n-2)) (1/(n(n-1)) with Endpoints, and
	// for EdgeBetweenness). Unnormalized undirected scores are halved since
	// every pair is counted from both ends.
	Normalized bool

	// Endpoints counts path endpoints as lying on the path.
	Endpoints bool

	// Weighted uses edge weights as distances.
	Weighted bool
}

// Default iteration settings shared by the fixed-point measures.
const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
	DefaultDamping       = 0.85
)

// IterativeOptions configures Eigenvector and HITS.
// Zero fields fall back to the package defaults.
type IterativeOptions struct {
	MaxIterations int
	Tolerance     float64
}

// KatzOptions configures Katz.
type KatzOptions struct {
	// Alpha attenuates longer walks; it should be below 1/λmax for convergence.
	Alpha float64
	// Beta is the constant term every node receives. Unlike the iteration
	// limits it has no fallback: zero means no exogenous term, and the
	// scores then decay towards 0. DefaultKatzOptions sets 1.
	Beta          float64
	MaxIterations int
	Tolerance     float64

	// Normalized rescales the scores to [0,1] with min-max normalization.
	Normalized bool
}

// DefaultKatzOptions returns alpha 0.1, beta 1, 1000 iterations, tolerance 1e-6.
func DefaultKatzOptions() KatzOptions {
	return KatzOptions{Alpha: 0.1, Beta: 1, MaxIterations: 1000, Tolerance: DefaultTolerance}
}

// PageRankOptions configures PageRank and PersonalizedPageRank.
// Zero fields fall back to the package defaults.
type PageRankOptions struct {
	// Damping is the probability of following a link rather than teleporting,
	// in (0,1]. Zero reads as unset and resolves to DefaultDamping; a surfer
	// that never follows links is the teleport vector itself, which
	// PersonalizedPageRank seeds already express.
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

// DefaultPageRankOptions returns damping 0.85, 100 iterations, tolerance 1e-6.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{Damping: DefaultDamping, MaxIterations: DefaultMaxIterations, Tolerance: DefaultTolerance}
}

// IterativeResult is returned by Eigenvector and Katz.
type IterativeResult[K comparable] struct {
	Scores     Scores[K]
	Iterations int
}

// PageRankResult reports whether the power iteration converged.
type PageRankResult[K comparable] struct {
	Scores     Scores[K]
	Iterations int
	Converged  bool

	// MaxDiff is the largest per-node change in the last iteration.
	MaxDiff float64
}

// HITSResult holds hub and authority scores, each summing to 1.
type HITSResult[K comparable] struct {
	Hubs        Scores[K]
	Authorities Scores[K]
	Iterations  int
}

// iterationLimits resolves zero values to defaults and rejects negatives.
func iterationLimits(maxIter int, tol float64, defIter int) (int, float64, error) {
	if maxIter < 0 || tol < 0 {
		return 0, 0, fmt.Errorf("%w: MaxIterations=%d Tolerance=%g must be >= 0", ErrBadOption, maxIter, tol)
	}
	if maxIter == 0 {
		maxIter = defIter
	}
	if tol == 0 {
		tol = DefaultTolerance
	}

	return maxIter, tol, nil
}
