// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer matrix core of matmul:
// a row-major Dense container with bounds-checked access, randomized fill,
// and two multiplication kernels — a sequential reference (Mul) and a
// statically partitioned parallel variant (MulParallel).
//
// What & why:
//
//	The package exists to compare a single-goroutine triple-loop product
//	against a fixed-partition concurrent product over the same operands.
//	Both kernels share validation, allocation, and error surfaces so that
//	any divergence between their results is a partitioning bug, never an
//	API asymmetry.
//
// Design highlights:
//
//   - Dense stores cells in one contiguous []int (row-major), so the flat
//     index space [0, rows*cols) used by the parallel partitioner is the
//     storage layout itself — no translation tables.
//   - Public indexers (At/Set) return sentinel errors (ErrOutOfRange), never
//     panic; panics are reserved for nonsensical option values.
//   - MulParallel slices the output index space into contiguous chunks,
//     one worker per chunk, with the last worker absorbing the remainder of
//     the floor division. Workers write disjoint cells of the shared result,
//     so the join is the only synchronization point.
//   - FillRandom draws uniform integers in [1,10] from a non-deterministic
//     source by default; tests inject a seeded *rand.Rand via WithRand.
//
// Typical use:
//
//	a, _ := matrix.NewDense(300, 200)
//	b, _ := matrix.NewDense(200, 400)
//	a.FillRandom()
//	b.FillRandom()
//	ref, _ := matrix.Mul(a, b)
//	par, _ := matrix.MulParallel(a, b, 8)
//	// ref and par are element-wise identical by construction.
//
// Errors are plain sentinels (errors.go) matched via errors.Is; facades wrap
// them with an operation tag for readable diagnostics.
package matrix
