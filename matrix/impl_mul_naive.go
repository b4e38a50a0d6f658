// SPDX-License-Identifier: MIT

package matrix

// MulNaive computes C = A × B with the reference triple loop.
// MAIN DESCRIPTION:
//   - Defines the canonical summation order: C[i][j] = Σ_{k=0}^{n-1} A[i][k]·B[k][j],
//     accumulated one term at a time in ascending k from ZeroSum.
//
// Implementation:
//   - Stage 1: validate operands (nil, equal dimension).
//   - Stage 2: i → j → k over the flat buffers; B is read column-wise (stride n).
//
// Behavior highlights:
//   - No tile alignment requirement; any n > 0 works.
//   - Operands are never mutated; the result is freshly allocated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MulNaive").
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result.
func MulNaive(a, b *Dense) (*Dense, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	n := a.n
	c := newDense(n)
	ad, bd, cd := a.data, b.data, c.data

	var i, j, k, rowA int
	var sum float64
	for i = 0; i < n; i++ {
		rowA = i * n
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += float64(ad[rowA+k] * bd[k*n+j])
			}
			cd[rowA+j] = sum
		}
	}

	return c, nil
}
