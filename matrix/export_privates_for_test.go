// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the UNEXPORTED chunkBounds partitioner to matrix_test ONLY,
//     so the coverage/disjointness invariant can be verified exhaustively
//     without widening the prod API.
//
// Behavior & Determinism:
//   - Thin pass-through; no allocations, no side effects.
//
// Risks & Maintenance:
//   - If chunkBounds changes signature, mirror the change here once.

// ExportedChunkBounds exposes chunkBounds for white-box partition tests.
var ExportedChunkBounds = chunkBounds

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicFillRangeInvalid_TestOnly = panicFillRangeInvalid
	PanicRandNil_TestOnly          = panicRandNil
)
