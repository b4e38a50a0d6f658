// SPDX-License-Identifier: MIT

// Package matrix - generators: zero, identity and uniform-random constructors.
//
// Purpose:
//   - Build operands for the multipliers with explicit, owned buffers.
//   - Keep randomness explicit: Random draws from the *rand.Rand resolved by
//     options (WithRand / WithSeed) and never touches a package-level source.
//
// These are not on the critical path; loops are plain and deterministic.

package matrix

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	ctxZero     = "Zero"
	ctxIdentity = "Identity"
	ctxRandom   = "Random"
)

// Zero returns an n×n matrix with every element 0.0.
// Errors: ErrInvalidDimensions when n is outside [1, MaxDimension].
// Complexity: O(n²) zeroing by the runtime.
func Zero(n int) (*Dense, error) {
	if err := checkDimension(n); err != nil {
		return nil, fmt.Errorf("%s(n=%d): %w", ctxZero, n, err)
	}

	return newDense(n), nil
}

// Identity returns I_n: 1.0 on the main diagonal, 0.0 elsewhere.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	if err := checkDimension(n); err != nil {
		return nil, fmt.Errorf("%s(n=%d): %w", ctxIdentity, n, err)
	}
	m := newDense(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0 // diagonal offset i*n + i
	}

	return m, nil
}

// Random returns an n×n matrix whose elements are drawn independently and
// uniformly from the half-open interval [-1, 1).
// MAIN DESCRIPTION:
//   - Stochastic constructor with an explicit randomness source.
//
// Implementation:
//   - Stage 1: validate n.
//   - Stage 2: resolve the source: WithRand / WithSeed, else a fresh
//     time-seeded source owned by this call.
//   - Stage 3: fill row-major with 2*Float64()-1.
//
// Behavior highlights:
//   - Float64() is in [0,1); doubling is exact and 2x-1 stays below 1.0,
//     so the upper bound is never produced.
//   - Same seed => identical matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Random(n int, opts ...Option) (*Dense, error) {
	if err := checkDimension(n); err != nil {
		return nil, fmt.Errorf("%s(n=%d): %w", ctxRandom, n, err)
	}
	o := gatherOptions(opts...)
	r := o.rng
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := newDense(n)
	for i := range m.data {
		m.data[i] = 2*r.Float64() - 1
	}

	return m, nil
}
