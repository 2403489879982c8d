// SPDX-License-Identifier: MIT

package matrix

// FillRandom overwrites every cell with an independently drawn uniform int
// in [DefaultFillMin, DefaultFillMax] (inclusive), or in the range injected
// via WithFillRange.
//
// Implementation:
//   - Stage 1 (Gather): resolve options; default source is time-seeded,
//     tests inject a deterministic one via WithRand.
//   - Stage 2 (Execute): single flat walk over the backing slice.
//
// Behavior highlights:
//   - Mutates ALL cells; previous contents are discarded.
//   - No return value and no error: the receiver's shape is already valid.
//
// Determinism:
//   - Non-deterministic by default; fully reproducible under WithRand with a
//     fixed seed.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the generator.
func (m *Dense) FillRandom(opts ...FillOption) {
	o := gatherFillOptions(opts)

	// Width of the inclusive range; Intn is exclusive on its bound.
	span := o.hi - o.lo + 1
	for i := range m.data {
		m.data[i] = o.lo + o.rng.Intn(span)
	}
}
