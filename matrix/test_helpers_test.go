// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the store and the multipliers.
//   - Keep every random operand seeded so failures are reproducible.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// alignedN is the size used by the scenario tests: three tiles per axis.
const alignedN = 3 * matrix.TileSize

// MustNew builds an n×n *Dense from row-major values or fails the test.
func MustNew(t testing.TB, n int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(n, vals)
	if err != nil {
		t.Fatalf("New(%d, len=%d): %v", n, len(vals), err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustRandom returns a seeded U[-1,1) matrix or fails the test.
func MustRandom(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(n, matrix.WithSeed(seed))
	if err != nil {
		t.Fatalf("Random(%d, seed=%d): %v", n, seed, err)
	}

	return m
}

// MustMul runs alg on (a, b) or fails the test.
func MustMul(t testing.TB, alg matrix.Algorithm, a, b *matrix.Dense, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	c, err := matrix.Multiply(alg, a, b, opts...)
	if err != nil {
		t.Fatalf("Multiply(%s): %v", alg, err)
	}

	return c
}

// seq returns [start, start+1, ..., start+count-1] as float64.
func seq(start, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = float64(start + i)
	}

	return out
}
