// SPDX-License-Identifier: MIT
// Package matrix provides four interchangeable square-matrix multipliers that
// return bit-identical products for identical inputs.
//
// Purpose:
//   - Declare the canonical summation order (naive, ascending k) that every
//     strategy reproduces exactly.
//   - Define operation tags and the shared row kernel used by the reordered
//     and parallel strategies.
//
// Notes:
//   - Every product is written as float64(x*y) before it is added. The explicit
//     conversion forces rounding of the product, which forbids the compiler from
//     fusing multiply and add into an FMA on platforms that have one. Fusion in
//     one loop shape and not another would break bit-equality.
//   - Kernels never mutate operands and always allocate a fresh result.

package matrix

import "fmt"

// ZeroSum is the additive identity every accumulator starts from.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMulNaive     = "MulNaive"
	opMulBlocked   = "MulBlocked"
	opMulReordered = "MulReordered"
	opMulParallel  = "MulParallel"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accumulateRow adds row i of A·B into cRow using the streaming pattern:
// for each summation index j (tile by tile, ascending), cRow[col] += aRow[j]*B[j][col]
// across the whole contiguous row j of B.
//
// For any fixed col the terms arrive in ascending j, starting from the zero
// in cRow, i.e. exactly the naive order.
//
// Inputs:
//   - cRow: output row, len n, zero-initialized, written only by this call.
//   - aRow: row i of A, len n.
//   - b:    row-major B, len n*n (read-only).
//   - n, blocks: dimension and n/TileSize.
//
// Complexity: O(n²) per row.
func accumulateRow(cRow, aRow, b []float64, n, blocks int) {
	var jj, j, col int
	var aij float64
	var bRow []float64
	for jj = 0; jj < blocks; jj++ {
		for j = jj * TileSize; j < (jj+1)*TileSize; j++ {
			aij = aRow[j]
			bRow = b[j*n : (j+1)*n : (j+1)*n]
			for col = range bRow {
				cRow[col] += float64(aij * bRow[col])
			}
		}
	}
}
