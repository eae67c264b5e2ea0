// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
// Policy:
//   - Callers branch with errors.Is; constructors attach context with %w.
//   - Constructors never panic at runtime. Only option constructors (WithX)
//     panic, and only on programmer error such as a nil function.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree)
	// below the constructor's minimum.
	ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidParameter)

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", core.ErrInvalidParameter)

	// ErrBadCellGrid indicates an empty or ragged cell matrix.
	ErrBadCellGrid = fmt.Errorf("builder: cell grid must be non-empty and rectangular: %w", core.ErrInvalidParameter)

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnsupportedGraphMode indicates the graph's Config is incompatible
	// with the constructor (for example RandomRegular on a directed graph).
	ErrUnsupportedGraphMode = fmt.Errorf("builder: unsupported graph mode: %w", core.ErrInvalidTopology)

	// ErrConstructFailed indicates a constructor gave up after its bounded
	// attempts, or BuildGraph received a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
