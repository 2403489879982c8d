// SPDX-License-Identifier: MIT

// Package matrix: multiplication kernels. Mul below is the sequential
// reference; the statically partitioned variant lives in parallel.go. Both
// share validators, the result allocation path, and error wrapping, so their
// outputs are comparable cell-for-cell by construction.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMulParallel = "MulParallel"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication of a and b (a × b) on a single
// goroutine.
//
// Implementation:
//   - Stage 1 (Validate): nil-checks and inner-dimension match.
//   - Stage 2 (Prepare): allocate result Dense(a.Rows() × b.Cols()).
//   - Stage 3 (Execute): triple loop i→j→k, with a flat fast-path when both
//     operands are *Dense and an At/Set fallback otherwise.
//   - Stage 4 (Finalize): return result.
//
// Behavior highlights:
//   - Operands are never mutated; the result is freshly allocated and
//     exclusively owned by the caller.
//   - Deterministic loop order; integer accumulation cannot fail mid-flight,
//     so a non-nil return is always fully formed.
//
// Errors:
//   - ErrNilMatrix          (nil operand).
//   - ErrDimensionMismatch  (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs.
	if err := ValidateMulShapes(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k     int // loop iterators
		av, bv, sum int
	)
	// Stage 3: Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				if av == 0 {
					continue // skip zero for performance
				}
				bv, _ = b.At(k, j)
				sum += av * bv // accumulate product
			}
			_ = res.Set(i, j, sum)
		}
	}

	// Stage 4: Return result.
	return res, nil
}
