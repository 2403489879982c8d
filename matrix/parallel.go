// SPDX-License-Identifier: MIT

// Package matrix: statically partitioned parallel multiplication.
//
// Partition policy (load-bearing, do not "improve"):
//   - The output's rows×cols cells form one flat index space [0, total).
//   - chunk = total / workers (floor). Worker i ∈ [0, workers-2] owns
//     [i*chunk, (i+1)*chunk); the LAST worker owns [(workers-1)*chunk, total),
//     absorbing the remainder of the floor division. Ranges are contiguous,
//     exhaustive and pairwise disjoint; the imbalance is bounded by workers-1
//     cells and is an accepted performance characteristic.
//   - Each worker maps flat→(row,col) via row = idx / cols, col = idx % cols
//     and computes that cell's dot product alone. Disjoint write sets make
//     the result race-free without locks or atomics; the WaitGroup join is
//     the only synchronization point.

package matrix

import "sync"

// chunkBounds returns the half-open flat-index range [start, end) owned by
// worker i out of `workers` over a `total`-cell output.
// The last worker absorbs the remainder of the floor division; with
// workers > total, trailing workers receive empty ranges (start >= end).
// Assumes workers >= 1 and 0 <= i < workers (callers validate).
// Complexity: O(1).
func chunkBounds(total, workers, i int) (start, end int) {
	chunk := total / workers
	start = i * chunk
	end = start + chunk
	if i == workers-1 {
		end = total
	}

	return start, end
}

// MulParallel performs matrix multiplication of a and b (a × b) across
// `workers` goroutines over statically partitioned output chunks.
//
// Implementation:
//   - Stage 1 (Validate): worker count, nil-checks, inner-dimension match —
//     all before any goroutine starts (fail fast, nothing to roll back).
//   - Stage 2 (Prepare): allocate result Dense(a.Rows() × b.Cols()).
//   - Stage 3 (Execute): launch ALL workers, each over its chunkBounds range,
//     then join. Workers write disjoint cells of the shared result slice.
//   - Stage 4 (Finalize): return the assembled result.
//
// Behavior highlights:
//   - Element-wise identical to Mul for every valid operand pair and every
//     workers >= 1, including workers > total (surplus workers are no-ops).
//   - Workers are created fresh per call (not a reusable pool) and run to
//     completion without blocking on each other; no cancellation support.
//   - Operands are read-only for the duration of the call and must not be
//     mutated concurrently by the caller.
//
// Errors:
//   - ErrBadWorkerCount     (workers < 1).
//   - ErrNilMatrix          (nil operand).
//   - ErrDimensionMismatch  (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*n*c) work split across workers, Space O(r*c) for the result.
func MulParallel(a, b Matrix, workers int) (Matrix, error) {
	// Stage 1: Validate before spawning anything.
	if err := ValidateWorkerCount(workers); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	if err := ValidateMulShapes(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	// Stage 2: Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	total := aRows * bCols

	// Fast-path operand views; nil when an operand is not *Dense.
	da, _ := a.(*Dense)
	db, _ := b.(*Dense)

	// Stage 3: Launch all workers, then join.
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start, end := chunkBounds(total, workers, w)
		if start >= end {
			continue // empty range: surplus worker, nothing to do
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			var row, col, k, av, bv, sum int
			for idx := start; idx < end; idx++ {
				row = idx / bCols
				col = idx % bCols

				sum = 0
				if da != nil && db != nil {
					// Flat dot product: row of da against column of db.
					for k = 0; k < aCols; k++ {
						sum += da.data[row*aCols+k] * db.data[k*bCols+col]
					}
				} else {
					// Generic fallback: reads are bounds-safe by loop construction.
					for k = 0; k < aCols; k++ {
						av, _ = a.At(row, k)
						bv, _ = b.At(k, col)
						sum += av * bv
					}
				}

				// Disjoint by partition: no other worker touches idx.
				res.data[idx] = sum
			}
		}(start, end)
	}
	wg.Wait()

	// Stage 4: Return the assembled result.
	return res, nil
}
