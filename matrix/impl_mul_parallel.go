// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matmul/workerpool"

// MulParallel computes C = A × B with the MulReordered access pattern, fanning
// disjoint row ranges of C out to a worker pool (fork-join).
// MAIN DESCRIPTION:
//   - Same per-row kernel and summation order as MulReordered; only the
//     assignment of rows to goroutines differs.
//
// Implementation:
//   - Stage 1: validate operands and alignment before any task is dispatched.
//   - Stage 2: resolve the pool (WithPool, else workerpool.Default()).
//   - Stage 3: ParallelFor over rows (one contiguous chunk per worker), or
//     ParallelForBatched when WithRowsPerTask(k>0) is set.
//   - Stage 4: the pool call returns at the join barrier; return C.
//
// Behavior highlights:
//   - Each task writes only its own rows of C and reads A and B; no locks.
//   - Uneven partitions change load balance only; output is bit-identical to MulNaive.
//   - Synchronous: no partial result is observable by the caller.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnalignedSize (wrapped with "MulParallel").
//
// Complexity:
//   - Work O(n³), Space O(n²) for the result.
func MulParallel(a, b *Dense, opts ...Option) (*Dense, error) {
	blocks, err := validateTiled(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	o := gatherOptions(opts...)
	pool := o.pool
	if pool == nil {
		pool = workerpool.Default()
	}

	n := a.n
	c := newDense(n)
	ad, bd, cd := a.data, b.data, c.data
	rows := func(start, end int) {
		for i := start; i < end; i++ {
			accumulateRow(cd[i*n:(i+1)*n], ad[i*n:(i+1)*n], bd, n, blocks)
		}
	}

	if o.rowsPerTask > 0 {
		pool.ParallelForBatched(n, o.rowsPerTask, rows)
	} else {
		pool.ParallelFor(n, rows)
	}

	return c, nil
}
