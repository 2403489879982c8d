// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep fills seeded so every comparison is reproducible.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) fallback paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test (fatal on error).
func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillSeeded fills m deterministically from the given seed.
func fillSeeded(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	m.FillRandom(matrix.WithRand(rand.New(rand.NewSource(seed))))
}

// fromGrid builds a *Dense from explicit rows or fails the test.
func fromGrid(t testing.TB, grid [][]int) *matrix.Dense {
	t.Helper()
	m := mustDense(t, len(grid), len(grid[0]))
	for i, row := range grid {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
