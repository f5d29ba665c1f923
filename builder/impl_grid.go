// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// impl_grid.go: implementation of Grid(rows, cols) and Line(n).
//
// Contract:
//   • rows, cols ≥ MinGridDim and n ≥ MinLineNodes (else ErrTooFewVertices).
//   • Turbines are added in row-major order on fresh rows spaced
//     cfg.spacing apart, column 0 aligned with the substation.
//
// Complexity:
//   • Time: O(rows*cols); Space: O(1) extra.
//
// Determinism:
//   • Stable node order: row-major (r asc, then c asc).

package builder

// Grid returns a Constructor that lays out a rows×cols turbine array.
func Grid(rows, cols int) Constructor {
	return func(f *Farm, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				f.add(f.slot(cfg, r, c), true)
			}
		}
		f.row += rows

		return nil
	}
}

// Line returns a Constructor that lays out one string of n turbines.
func Line(n int) Constructor {
	return func(f *Farm, cfg builderConfig) error {
		if err := validateMin(MethodLine, n, MinLineNodes); err != nil {
			return err
		}

		for c := 0; c < n; c++ {
			f.add(f.slot(cfg, 0, c), true)
		}
		f.row++

		return nil
	}
}
