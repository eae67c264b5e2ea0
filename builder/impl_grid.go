// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid constructor (4-neighborhood lattice).
// Contract:
//   - Vertex IDs are "r,c"; cfg.idFn is not consulted.
//   - Vertices are added row-major. For each cell the right edge is emitted
//     before the down edge, so edges point right/down on directed graphs.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphengine/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID formats the Grid vertex ID of cell (r, c).
func GridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid builds a rows×cols lattice with (rows-1)·cols + rows·(cols-1) edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
