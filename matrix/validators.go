// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/worker checks here.
//  - Return plain sentinel errors (no wrapping beyond the validator tag) so
//    call sites can wrap uniformly with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateMulShapes – Ensures a and b are multiplication-compatible.
//
// Implementation: NotNil(a) → NotNil(b) → inner-dimension match.
// Inputs: Two Matrix values (operand order matters: a × b).
// Return: nil, or wrapped ErrNilMatrix / ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulShapes(a, b Matrix) error {
	// Nil guards first: a dereference below must be safe.
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Inner dimensions must agree: a.Cols() drives the dot-product length.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShapes", ErrDimensionMismatch)
	}

	return nil
}

// ValidateWorkerCount – Ensures a parallel worker count is usable.
//
// Inputs: requested worker count.
// Return: nil, or wrapped ErrBadWorkerCount when workers < 1.
// Complexity: O(1).
func ValidateWorkerCount(workers int) error {
	// Zero would divide the flat index space by nothing; negatives are nonsense.
	if workers < 1 {
		return validatorErrorf("ValidateWorkerCount", ErrBadWorkerCount)
	}

	return nil
}
