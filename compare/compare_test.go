// SPDX-License-Identifier: MIT

package compare_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/matmul/compare"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

func mustFilled(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	m.FillRandom(matrix.WithRand(rand.New(rand.NewSource(seed))))

	return m
}

func TestRun_KernelsAgree(t *testing.T) {
	a := mustFilled(t, 20, 30, 1)
	b := mustFilled(t, 30, 10, 2)

	for _, workers := range []int{1, 2, 7, 200, 205} {
		rep, err := compare.Run(a, b, workers)
		require.NoError(t, err, "workers=%d", workers)

		require.True(t, rep.Match, "workers=%d", workers)
		require.Empty(t, rep.Diff)
		require.Equal(t, 20, rep.Rows)
		require.Equal(t, 10, rep.Cols)
		require.Equal(t, workers, rep.Workers)
		require.GreaterOrEqual(t, rep.Sequential, time.Duration(0))
		require.GreaterOrEqual(t, rep.Parallel, time.Duration(0))
	}
}

func TestRun_PropagatesDimensionMismatch(t *testing.T) {
	a := mustFilled(t, 2, 3, 3)
	b := mustFilled(t, 4, 2, 4)

	_, err := compare.Run(a, b, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRun_PropagatesBadWorkerCount(t *testing.T) {
	a := mustFilled(t, 2, 2, 5)
	b := mustFilled(t, 2, 2, 6)

	_, err := compare.Run(a, b, 0)
	require.ErrorIs(t, err, matrix.ErrBadWorkerCount)
}

func TestRun_DoesNotMutateOperands(t *testing.T) {
	a := mustFilled(t, 5, 5, 7)
	b := mustFilled(t, 5, 5, 8)
	wantA, wantB := a.Grid(), b.Grid()

	_, err := compare.Run(a, b, 3)
	require.NoError(t, err)
	require.Equal(t, wantA, a.Grid())
	require.Equal(t, wantB, b.Grid())
}

func TestReport_Speedup(t *testing.T) {
	rep := &compare.Report{Sequential: 100, Parallel: 50}
	require.InDelta(t, 2.0, rep.Speedup(), 1e-12)

	// Unmeasurably fast parallel round reports 0 rather than dividing by zero.
	rep = &compare.Report{Sequential: 100, Parallel: 0}
	require.Zero(t, rep.Speedup())
}
