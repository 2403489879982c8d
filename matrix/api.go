// SPDX-License-Identifier: MIT

// Package matrix: public facade. Thin, documented aliases over the kernel
// functions so call sites can read naturally (Product / ProductParallel)
// while the kernels keep their canonical names for internal reference.

package matrix

// NewZeros returns an r×c Dense with every cell 0.
// Alias of NewDense kept for readable call sites.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a zero Dense with the same shape as m.
// Errors mirror NewDense (ErrBadShape on degenerate shapes, ErrNilMatrix on nil).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Product is a readable alias for the sequential kernel Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// ProductParallel is a readable alias for the partitioned kernel MulParallel.
func ProductParallel(a, b Matrix, workers int) (Matrix, error) {
	return MulParallel(a, b, workers)
}
