// SPDX-License-Identifier: MIT

package matrix

// MulBlocked computes C = A × B with all three loop indices tiled by TileSize.
// MAIN DESCRIPTION:
//   - Cache-blocked form of MulNaive with an identical per-cell summation order.
//
// Implementation:
//   - Stage 1: validate operands and alignment (NumberOfBlocks).
//   - Stage 2: outer ii → jj → kk over tiles, inner i → j → k within the tiles.
//     Each (i,j) cell is loaded, extended by the TileSize terms of block kk,
//     and stored back.
//
// Behavior highlights:
//   - kk is outer to k and both ascend, so the visits of k for a fixed (i,j)
//     are 0,1,...,n-1: the same partial sums as MulNaive, bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnalignedSize (wrapped with "MulBlocked").
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result.
func MulBlocked(a, b *Dense) (*Dense, error) {
	blocks, err := validateTiled(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulBlocked, err)
	}

	n := a.n
	c := newDense(n)
	ad, bd, cd := a.data, b.data, c.data

	var ii, jj, kk, i, j, k int
	var iEnd, jEnd, kEnd, rowA int
	var sum float64
	for ii = 0; ii < blocks; ii++ {
		iEnd = (ii + 1) * TileSize
		for jj = 0; jj < blocks; jj++ {
			jEnd = (jj + 1) * TileSize
			for kk = 0; kk < blocks; kk++ {
				kEnd = (kk + 1) * TileSize
				for i = ii * TileSize; i < iEnd; i++ {
					rowA = i * n
					for j = jj * TileSize; j < jEnd; j++ {
						sum = cd[rowA+j] // partial sum over k < kk*TileSize
						for k = kk * TileSize; k < kEnd; k++ {
							sum += float64(ad[rowA+k] * bd[k*n+j])
						}
						cd[rowA+j] = sum
					}
				}
			}
		}
	}

	return c, nil
}
