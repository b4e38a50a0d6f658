// Package matrix_test covers the concrete scenarios and failure modes of the
// four multipliers.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/workerpool"
)

// TestMulNaiveIdentity2x2: I · M == M for a hand-written 2×2.
func TestMulNaiveIdentity2x2(t *testing.T) {
	m := MustNew(t, 2, []float64{1, 2, 3, 4})
	got, err := matrix.MulNaive(MustIdentity(t, 2), m)
	require.NoError(t, err)
	require.True(t, got.Equal(m), "got %v", got)
}

// TestMulNaive2x2: [1 2;3 4]·[4 3;2 1] == [8 5;20 13].
func TestMulNaive2x2(t *testing.T) {
	a := MustNew(t, 2, []float64{1, 2, 3, 4})
	b := MustNew(t, 2, []float64{4, 3, 2, 1})

	got, err := matrix.MulNaive(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 5, 20, 13}, got.Values())
}

// TestMulNaiveOddSize: naive has no alignment restriction.
func TestMulNaiveOddSize(t *testing.T) {
	a := MustNew(t, 3, seq(1, 9)) // [1 2 3;4 5 6;7 8 9]
	got, err := matrix.MulNaive(a, MustIdentity(t, 3))
	require.NoError(t, err)
	require.Equal(t, seq(1, 9), got.Values())

	sq, err := matrix.MulNaive(a, a)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 36, 42, 66, 81, 96, 102, 126, 150}, sq.Values())
}

// TestMulBlockedIdentityRandom: for n = 3·TileSize, I · R == R with one R on both sides.
func TestMulBlockedIdentityRandom(t *testing.T) {
	r := MustRandom(t, alignedN, 3)
	got, err := matrix.MulBlocked(MustIdentity(t, alignedN), r)
	require.NoError(t, err)
	require.True(t, got.Equal(r))
}

// TestMultipliersRejectDimensionMismatch: operands of different n fail on every strategy.
func TestMultipliersRejectDimensionMismatch(t *testing.T) {
	a := MustIdentity(t, matrix.TileSize)
	b := MustIdentity(t, 2*matrix.TileSize)

	for _, alg := range matrix.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			_, err := matrix.Multiply(alg, a, b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

// TestMultipliersRejectNil: nil operands fail with ErrNilMatrix, never panic.
func TestMultipliersRejectNil(t *testing.T) {
	a := MustIdentity(t, matrix.TileSize)
	for _, alg := range matrix.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			_, err := matrix.Multiply(alg, nil, a)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = matrix.Multiply(alg, a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

// TestTiledStrategiesRejectUnaligned: blocked/reordered/parallel need n % TileSize == 0.
func TestTiledStrategiesRejectUnaligned(t *testing.T) {
	for _, n := range []int{2, 3, matrix.TileSize + 1, 2*matrix.TileSize - 1} {
		a := MustRandom(t, n, 1)
		b := MustRandom(t, n, 2)

		_, err := matrix.MulBlocked(a, b)
		require.ErrorIs(t, err, matrix.ErrUnalignedSize, "blocked n=%d", n)
		_, err = matrix.MulReordered(a, b)
		require.ErrorIs(t, err, matrix.ErrUnalignedSize, "reordered n=%d", n)
		_, err = matrix.MulParallel(a, b)
		require.ErrorIs(t, err, matrix.ErrUnalignedSize, "parallel n=%d", n)

		_, err = matrix.MulNaive(a, b)
		require.NoError(t, err, "naive n=%d", n)
	}
}

// TestMismatchReportedBeforeAlignment: error priority is dimension, then alignment.
func TestMismatchReportedBeforeAlignment(t *testing.T) {
	a := MustIdentity(t, 3)
	b := MustIdentity(t, 5)
	_, err := matrix.MulBlocked(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.NotErrorIs(t, err, matrix.ErrUnalignedSize)
}

// TestMultipliersDoNotMutateOperands: inputs are read-only.
func TestMultipliersDoNotMutateOperands(t *testing.T) {
	a := MustRandom(t, matrix.TileSize, 10)
	b := MustRandom(t, matrix.TileSize, 11)
	wantA, wantB := a.Values(), b.Values()

	for _, alg := range matrix.Algorithms() {
		_ = MustMul(t, alg, a, b)
		require.Equal(t, wantA, a.Values(), "%s mutated A", alg)
		require.Equal(t, wantB, b.Values(), "%s mutated B", alg)
	}
}

// TestSelfProduct: the same matrix may be passed as both operands.
func TestSelfProduct(t *testing.T) {
	a := MustRandom(t, matrix.TileSize, 12)
	want := MustMul(t, matrix.Naive, a, a)
	for _, alg := range matrix.Algorithms() {
		require.True(t, MustMul(t, alg, a, a).Equal(want), "%s", alg)
	}
}

// TestSummationOrderIsAscending pins the rounding sequence that ascending-k
// addition produces. Row 0 of A is [1e17, 1, -1e17, 1, 0...] and B is all
// ones: ((1e17 + 1) - 1e17) + 1 rounds to 1, while the exact sum is 2. Any
// strategy that regrouped the terms could return 2 or 0 instead.
func TestSummationOrderIsAscending(t *testing.T) {
	const n = matrix.TileSize
	av := make([]float64, n*n)
	av[0], av[1], av[2], av[3] = 1e17, 1, -1e17, 1
	bv := make([]float64, n*n)
	for i := range bv {
		bv[i] = 1
	}
	a, b := MustNew(t, n, av), MustNew(t, n, bv)

	for _, alg := range matrix.Algorithms() {
		c := MustMul(t, alg, a, b)
		row, err := c.Row(0)
		require.NoError(t, err)
		for j, v := range row {
			require.Equal(t, 1.0, v, "%s: C[0][%d]", alg, j)
		}
	}
}

// TestMulParallelOptions: pool size and batch size never change the product.
func TestMulParallelOptions(t *testing.T) {
	a := MustRandom(t, 2*matrix.TileSize, 20)
	b := MustRandom(t, 2*matrix.TileSize, 21)
	want := MustMul(t, matrix.Naive, a, b)

	for _, workers := range []int{1, 3, 7, 16} {
		pool := workerpool.New(workers)
		for _, rows := range []int{0, 1, 5, 64, 1000} {
			got, err := matrix.MulParallel(a, b, matrix.WithPool(pool), matrix.WithRowsPerTask(rows))
			require.NoError(t, err)
			require.True(t, got.Equal(want), "workers=%d rows=%d", workers, rows)
		}
		pool.Close()
	}
}

// TestMulParallelUsesPool: the selected pool runs the row tasks.
func TestMulParallelUsesPool(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	a := MustRandom(t, matrix.TileSize, 30)
	_, err := matrix.MulParallel(a, a, matrix.WithPool(pool))
	require.NoError(t, err)

	var total uint64
	for _, c := range pool.Completed() {
		total += c
	}
	require.Equal(t, uint64(4), total) // 64 rows / 4 workers -> 4 chunks
}

// TestMulParallelClosedPool: a closed pool degrades to inline execution.
func TestMulParallelClosedPool(t *testing.T) {
	pool := workerpool.New(4)
	pool.Close()

	a := MustRandom(t, matrix.TileSize, 31)
	got, err := matrix.MulParallel(a, a, matrix.WithPool(pool))
	require.NoError(t, err)
	require.True(t, got.Equal(MustMul(t, matrix.Naive, a, a)))
}
