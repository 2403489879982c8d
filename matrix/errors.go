// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matmul: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> worker count.

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matmul: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matmul: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions for
	// multiplication, i.e. a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matmul: dimension mismatch")

	// ErrBadWorkerCount is returned by MulParallel when the requested worker
	// count is below one. Validated before any goroutine is started.
	ErrBadWorkerCount = errors.New("matmul: worker count must be >= 1")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matmul: nil matrix")
)
