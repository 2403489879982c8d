// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul_KnownProduct2x2(t *testing.T) {
	a := fromGrid(t, [][]int{{1, 2}, {3, 4}})
	b := fromGrid(t, [][]int{{5, 6}, {7, 8}})

	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{19, 22}, {43, 50}}, res.(*matrix.Dense).Grid())
}

func TestMul_OnesRowTimesOnesCol(t *testing.T) {
	a := fromGrid(t, [][]int{{1, 1, 1, 1, 1}})
	b := fromGrid(t, [][]int{{1}, {1}, {1}, {1}, {1}})

	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{5}}, res.(*matrix.Dense).Grid())
}

func TestMul_DimensionMismatch(t *testing.T) {
	cases := []struct {
		name           string
		r1, c1, r2, c2 int
	}{
		{"2x3 times 2x3", 2, 3, 2, 3},
		{"1x5 times 1x5", 1, 5, 1, 5},
		{"4x2 times 3x4", 4, 2, 3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustDense(t, tc.r1, tc.c1)
			b := mustDense(t, tc.r2, tc.c2)
			_, err := matrix.Mul(a, b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

func TestMul_NilOperands(t *testing.T) {
	a := mustDense(t, 2, 2)

	_, err := matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_InputsNotMutated(t *testing.T) {
	a := mustDense(t, 3, 3)
	b := mustDense(t, 3, 3)
	fillSeeded(t, a, 5)
	fillSeeded(t, b, 6)
	wantA, wantB := a.Grid(), b.Grid()

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, wantA, a.Grid())
	require.Equal(t, wantB, b.Grid())
}

// TestMul_FallbackAgreesWithFastPath de-opts the *Dense fast path by hiding
// the concrete types and asserts both paths produce the same cells.
func TestMul_FallbackAgreesWithFastPath(t *testing.T) {
	a := mustDense(t, 7, 5)
	b := mustDense(t, 5, 9)
	fillSeeded(t, a, 21)
	fillSeeded(t, b, 22)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	require.Equal(t, fast.(*matrix.Dense).Grid(), slow.(*matrix.Dense).Grid())
}

func TestProduct_AliasMatchesMul(t *testing.T) {
	a := fromGrid(t, [][]int{{2, 0}, {1, 3}})
	b := fromGrid(t, [][]int{{4, 1}, {2, 2}})

	viaAlias, err := matrix.Product(a, b)
	require.NoError(t, err)
	viaKernel, err := matrix.Mul(a, b)
	require.NoError(t, err)

	require.Equal(t, viaKernel.(*matrix.Dense).Grid(), viaAlias.(*matrix.Dense).Grid())
}
