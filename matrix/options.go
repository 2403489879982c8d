// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for randomized fill. This file
// defines:
//   - FillOption / fillOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFillOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior on demand: tests inject a seeded source, callers
//     that want benchmark-style operands get a non-deterministic one.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: fillOptions fields are unexported; public APIs consume
//     ...FillOption.
package matrix

import (
	"math/rand"
	"time"
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultFillOptions.
const (
	// DefaultFillMin is the inclusive lower bound of randomized cell values.
	DefaultFillMin = 1

	// DefaultFillMax is the inclusive upper bound of randomized cell values.
	DefaultFillMax = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFillRangeInvalid = "matmul: WithFillRange: lo must not exceed hi"
	panicRandNil          = "matmul: WithRand: source must be non-nil"
)

// ---------- Public option type (functional) ----------

// FillOption mutates internal fill options. Safe to apply repeatedly
// (idempotent). Constructors MUST panic only on nonsensical values
// (programmer error).
type FillOption func(*fillOptions)

// fillOptions carries the gathered fill configuration. Unexported on purpose:
// the struct is an implementation detail of FillRandom.
type fillOptions struct {
	rng    *rand.Rand // value source; nil until gathered
	lo, hi int        // inclusive bounds, lo <= hi
}

// WithRand injects a deterministic value source (typically
// rand.New(rand.NewSource(seed)) in tests). Panics on nil.
func WithRand(rng *rand.Rand) FillOption {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *fillOptions) { o.rng = rng }
}

// WithFillRange overrides the inclusive [lo, hi] value bounds.
// Panics when lo > hi.
func WithFillRange(lo, hi int) FillOption {
	if lo > hi {
		panic(panicFillRangeInvalid)
	}

	return func(o *fillOptions) { o.lo, o.hi = lo, hi }
}

// gatherFillOptions applies opts over the documented defaults and resolves
// the value source. When no source was injected, a fresh time-seeded one is
// created per call, matching the original "new generator per fill" behavior.
func gatherFillOptions(opts []FillOption) fillOptions {
	o := fillOptions{lo: DefaultFillMin, hi: DefaultFillMax}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
