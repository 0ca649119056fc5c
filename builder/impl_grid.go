// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// impl_grid.go - Grid(rows, cols): the product of two chains.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewElements), rows·cols ≤ 4096
//     (else ErrTooLarge).
//   - Element names use the fixed scheme "r,c"; cfg.idFn is not consulted.
//   - (r,c) ≤ (r',c') exactly when r ≤ r' and c ≤ c'.
//   - Inserts in row-major order, then adds covers Right and Up per cell.
//
// Complexity: O(rows·cols) elements, O((rows·cols)²) closure work worst case.

package builder

import (
	"fmt"

	"github.com/katalvlaran/poset/registry"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor for the rows × cols product order.
func Grid(rows, cols int) Constructor {
	return func(r *registry.Registry, id registry.PosetID, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewElements)
		}
		// cols ≤ maxElements first, so rows*cols cannot overflow
		if cols > maxElements || rows > maxElements/cols {
			return fmt.Errorf("%s: rows=%d × cols=%d > max=%d: %w", methodGrid, rows, cols, maxElements, ErrTooLarge)
		}
		cell := func(i, j int) string { return fmt.Sprintf(gridIDFmt, i, j) }

		// 1) Elements, row-major
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if err := r.Insert(id, cell(i, j)); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}
		// 2) Covers: (i,j) → (i,j+1) and (i,j) → (i+1,j)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if j+1 < cols {
					if err := relate(methodGrid, r, id, cell(i, j), cell(i, j+1)); err != nil {
						return err
					}
				}
				if i+1 < rows {
					if err := relate(methodGrid, r, id, cell(i, j), cell(i+1, j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
