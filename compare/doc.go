// SPDX-License-Identifier: MIT

// Package compare runs both multiplication kernels on one operand pair,
// measures wall-clock time around each call, and validates the two result
// matrices element-wise.
//
// The package is the programmatic form of the benchmark round that the CLI
// driver exposes interactively: one Run produces one Report carrying both
// durations, the verdict, and — on the (never expected) mismatch — a
// cell-level diff of the two grids.
//
// compare never mutates its operands and keeps no state between runs.
package compare
