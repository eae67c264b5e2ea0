// SPDX-License-Identifier: MIT
//
// File: impl_cells.go
// Role: CellGrid constructor, a graph over the "land" cells of a value matrix.
// Contract:
//   - A cell is land when its value >= threshold; water cells get no vertex.
//   - Vertex IDs are GridID(r, c) with data {"row", "col", "value"}.
//   - Vertices are added row-major. Each cell emits its forward neighbors in
//     the order right, down, down-right, down-left (diagonals only with
//     Conn8), so every adjacent land pair is linked exactly once.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphengine/core"
)

const methodCellGrid = "CellGrid"

// Connectivity selects which cells touch.
type Connectivity int

const (
	// Conn4 links orthogonal neighbors.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal neighbors.
	Conn8
)

var (
	forward4 = [][2]int{{0, 1}, {1, 0}}
	forward8 = [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
)

// CellGrid builds the land graph of values. Connected components of the
// result are the "islands" of the matrix.
func CellGrid(values [][]int, threshold int, conn Connectivity) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if len(values) == 0 || len(values[0]) == 0 {
			return fmt.Errorf("%s: empty matrix: %w", methodCellGrid, ErrBadCellGrid)
		}
		rows, cols := len(values), len(values[0])
		for r, row := range values {
			if len(row) != cols {
				return fmt.Errorf("%s: row %d has %d cells, want %d: %w", methodCellGrid, r, len(row), cols, ErrBadCellGrid)
			}
		}
		land := func(r, c int) bool {
			return r >= 0 && r < rows && c >= 0 && c < cols && values[r][c] >= threshold
		}
		offsets := forward4
		if conn == Conn8 {
			offsets = forward8
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if land(r, c) {
					g.AddNode(GridID(r, c), core.WithNodeData(map[string]any{"row": r, "col": c, "value": values[r][c]}))
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !land(r, c) {
					continue
				}
				for _, d := range offsets {
					nr, nc := r+d[0], c+d[1]
					if !land(nr, nc) {
						continue
					}
					if err := link(g, cfg, methodCellGrid, GridID(r, c), GridID(nr, nc)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
