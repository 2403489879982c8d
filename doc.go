// Package matmul is a compact playground for comparing sequential and
// statically partitioned parallel dense integer matrix multiplication.
//
// 🚀 What is matmul?
//
//	A small, focused module that brings together:
//		• matrix/  — row-major Dense int container, bounds-checked access,
//		  randomized fill, and the two multiplication kernels
//		• compare/ — one-call benchmark round: time both kernels, validate
//		  every output cell pairwise
//		• cmd/matmul — interactive driver (prompt → multiply → report → loop)
//
// ✨ Why choose matmul?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – disjoint write partitioning, join-all barrier,
//     sentinel errors matched via errors.Is
//   - Pure Go core – no cgo; the partition invariant replaces locks
//
// Quick ASCII example of the parallel partition (3 workers over a 2×4
// output, total = 8, chunk = 8/3 = 2):
//
//	flat index:  0 1 | 2 3 | 4 5 6 7
//	worker:       w0 |  w1 |   w2     (last worker absorbs the remainder)
//
// Each worker maps its flat indices back to (row, col) and computes those
// dot products alone, so the result needs no synchronization beyond the
// final join.
//
// Dive into DESIGN.md for the partitioning policy and error-surface notes.
//
//	go get github.com/katalvlaran/matmul
package matmul
