// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, accessors and multipliers MUST return these sentinels
// (possibly wrapped with %w) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions; panics are reserved for
// nonsensical Option arguments (programmer errors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Public entry points wrap with fmt.Errorf("<Op>: %w", ErrX) so callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> tile alignment.

var (
	// ErrInvalidDimensions indicates that a requested dimension n is not in
	// [1, MaxDimension].
	ErrInvalidDimensions = errors.New("matrix: dimension out of range")

	// ErrDimensionMismatch indicates that a value count differs from n*n,
	// or that two operands of a multiplication have different dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnalignedSize indicates that n is not a multiple of TileSize where the
	// tiled strategies (blocked, reordered, parallel) require it.
	ErrUnalignedSize = errors.New("matrix: size must be a multiple of the tile size")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownAlgorithm indicates that an algorithm name did not resolve.
	ErrUnknownAlgorithm = errors.New("matrix: unknown algorithm")
)
