// SPDX-License-Identifier: MIT

// Package matrix: Dense — the concrete, row-major implementation of Matrix,
// storing int cells in a flat slice for performance and cache friendliness.
// The flat layout is load-bearing: the parallel kernel partitions the very
// same [0, r*c) index space that backs the storage.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c cells in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Implementation:
//   - Stage 1 (Validate): ensure rows and cols > 0.
//   - Stage 2 (Prepare): allocate flat backing slice; make() zero-fills it.
//   - Stage 3 (Finalize): return new Dense or ErrBadShape.
//
// Inputs:
//   - rows: positive number of rows.
//   - cols: positive number of columns.
//
// Returns:
//   - *Dense: newly allocated matrix, every cell 0.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Determinism:
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]int, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	// Compute flat index or error.
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value.
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col, v int) error {
	// Compute flat index or error.
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}

	// Store the value.
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of m as a Matrix.
// The copy shares no storage with the original.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	// Fresh buffer, then a single bulk copy of the flat storage.
	buf := make([]int, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Grid returns the cells as a freshly allocated [][]int, row by row.
// The result shares no storage with m; it is the canonical shape for
// element-wise comparison and diffing by external validators.
// Complexity: O(r*c).
func (m *Dense) Grid() [][]int {
	out := make([][]int, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]int, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders the matrix in a compact human-readable form,
// one bracketed row per line. Intended for diagnostics, not parsing.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dense(%dx%d)\n", m.r, m.c))
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
