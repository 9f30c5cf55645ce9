// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 storage used for cost
// tables in the transportation toolkit.
//
// The package is intentionally small:
//
//   - Matrix — minimal interface (Rows, Cols, At, Set, Clone) so algorithms can
//     consume any rectangular table.
//   - Dense  — concrete row-major implementation with a flat backing slice and
//     a per-instance numeric policy (reject NaN/±Inf on Set by default).
//   - Validators — shape, nil and finiteness guards shared by callers.
//
// All public accessors bounds-check and return sentinel errors instead of
// panicking; tests match them with errors.Is.
//
// Complexity quicksheet:
//
//	NewDense / NewDenseFromRows: O(r*c)   At / Set: O(1)
//	Clone / Row copy:            O(r*c) / O(c)
//
// Quick example:
//
//	cost, err := matrix.NewDenseFromRows([][]float64{
//		{4, 6, 8, 7},
//		{5, 7, 6, 5},
//	})
//	if err != nil {
//		// matrix.ErrInvalidDimensions, matrix.ErrDimensionMismatch or matrix.ErrNaNInf
//	}
//	v, _ := cost.At(1, 3) // 5
package matrix
