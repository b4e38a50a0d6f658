// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for operand checks shared by all multipliers.
//  - Return plain (tagged) sentinels so call sites wrap uniformly with matrixErrorf.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil -> SameDimension -> Aligned.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures neither operand is nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDimension ensures a and b have equal n.
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameDimension(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameDimension(%d,%d)", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// validateOperands runs NotNil -> SameDimension.
func validateOperands(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}

	return ValidateSameDimension(a, b)
}

// validateTiled runs NotNil -> SameDimension -> Aligned and returns the
// tile count per axis for the tiled strategies.
func validateTiled(a, b *Dense) (int, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}

	return a.NumberOfBlocks()
}
