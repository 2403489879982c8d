// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/matmul/matrix"
)

// runErrorf wraps an underlying kernel error with Run context.
// The matrix sentinels stay matchable via errors.Is through the wrap.
func runErrorf(stage string, err error) error {
	return fmt.Errorf("compare.Run: %s: %w", stage, err)
}

// Report is the outcome of one comparison round over a single operand pair.
// It carries timings and the verdict only; the result matrices themselves are
// discarded once validated.
type Report struct {
	Rows    int // rows of the output (== a.Rows())
	Cols    int // cols of the output (== b.Cols())
	Workers int // worker count used by the parallel kernel

	Sequential time.Duration // wall-clock time of matrix.Mul
	Parallel   time.Duration // wall-clock time of matrix.MulParallel

	Match bool   // true when every output cell agrees
	Diff  string // cmp.Diff of the two grids when Match is false, else ""
}

// Speedup reports Sequential/Parallel as a ratio, or 0 when the parallel
// duration is too small to measure. Diagnostic only.
func (r *Report) Speedup() float64 {
	if r.Parallel <= 0 {
		return 0
	}

	return float64(r.Sequential) / float64(r.Parallel)
}

// Run multiplies a × b with the sequential kernel, then with the parallel
// kernel using the given worker count, timing each call and comparing every
// output cell pairwise.
//
// Implementation:
//   - Stage 1 (Sequential): time matrix.Mul around the call only.
//   - Stage 2 (Parallel): time matrix.MulParallel the same way.
//   - Stage 3 (Validate): diff the two grids; identical grids yield an empty
//     diff and Match=true.
//
// Behavior highlights:
//   - Operands are never mutated; both kernels allocate their own results.
//   - Kernel errors abort the round and propagate with their sentinels
//     intact (errors.Is still matches matrix.ErrDimensionMismatch etc.).
//
// Complexity:
//   - Time: both kernels O(r*n*c) plus an O(r*c) validation pass.
func Run(a, b matrix.Matrix, workers int) (*Report, error) {
	// Stage 1: sequential reference, timed.
	start := time.Now()
	seq, err := matrix.Mul(a, b)
	if err != nil {
		return nil, runErrorf("sequential", err)
	}
	seqElapsed := time.Since(start)

	// Stage 2: partitioned kernel, timed.
	start = time.Now()
	par, err := matrix.MulParallel(a, b, workers)
	if err != nil {
		return nil, runErrorf("parallel", err)
	}
	parElapsed := time.Since(start)

	// Stage 3: element-wise validation over copied-out grids.
	diff := cmp.Diff(seq.(*matrix.Dense).Grid(), par.(*matrix.Dense).Grid())

	return &Report{
		Rows:       seq.Rows(),
		Cols:       seq.Cols(),
		Workers:    workers,
		Sequential: seqElapsed,
		Parallel:   parElapsed,
		Match:      diff == "",
		Diff:       diff,
	}, nil
}
