// SPDX-License-Identifier: MIT

package matrix

// MulReordered computes C = A × B row by row, streaming rows of B.
// MAIN DESCRIPTION:
//   - Loop-interchanged sequential form: for output row i and each summation
//     index j, the scalar A[i][j] scales the contiguous row j of B into row i of C.
//
// Implementation:
//   - Stage 1: validate operands and alignment (NumberOfBlocks).
//   - Stage 2: for each i, accumulateRow over j tiles ascending.
//
// Behavior highlights:
//   - No strided access into B: one contiguous read of row j per step.
//   - Each C cell receives its terms in ascending j, so the result equals MulNaive exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnalignedSize (wrapped with "MulReordered").
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result.
func MulReordered(a, b *Dense) (*Dense, error) {
	blocks, err := validateTiled(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulReordered, err)
	}

	n := a.n
	c := newDense(n)
	for i := 0; i < n; i++ {
		accumulateRow(c.data[i*n:(i+1)*n], a.data[i*n:(i+1)*n], b.data, n, blocks)
	}

	return c, nil
}
