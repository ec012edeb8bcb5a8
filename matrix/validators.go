// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return tagged sentinel errors so call sites can match them via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is only accepted when n == 0.
func ValidateVecLen(x []complex128, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
