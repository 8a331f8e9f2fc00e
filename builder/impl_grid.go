// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_grid.go: Grid(rows, cols): a street grid with "r,c" stop IDs.
//
// Contract:
//   • rows, cols ≥ 1.
//   • Each cell links to its right and bottom neighbour.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

const gridIDFmt = "%d,%d"

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := make([][]*network.Node, rows)
		for r := 0; r < rows; r++ {
			cells[r] = make([]*network.Node, cols)
			for c := 0; c < cols; c++ {
				s, err := stop(g, cfg, MethodGrid, fmt.Sprintf(gridIDFmt, r, c))
				if err != nil {
					return err
				}
				cells[r][c] = s
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, MethodGrid, cells[r][c], cells[r][c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, MethodGrid, cells[r][c], cells[r+1][c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
