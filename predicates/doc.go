// SPDX-License-Identifier: MIT
// Package predicates implements the two robust geometric oracles the
// Delaunay builder depends on: Orient2D and InCircle.
//
// Both return a float64 whose SIGN is the contract; magnitude is
// informational only. Each is evaluated with a fast floating-point
// path plus an error bound (Shewchuk's static-filter style); when the
// fast result falls inside the bound — meaning rounding error could
// have flipped the sign — the exact sign is recovered with
// arbitrary-precision rational arithmetic (math/big.Rat). Every
// float64 is exactly representable as a Rat, so this is exact, not
// approximate: the returned sign is correct for every double-precision
// input, matching the "adaptive-precision arithmetic or equivalent"
// requirement without porting Shewchuk's full expansion machinery.
//
// Values of InCircle whose absolute magnitude is below 1e-18 are
// treated as exactly zero by callers (see zeroSnap in package delaunay); this
// package does not itself snap values, it only guarantees sign
// correctness, so the snap is documented and applied once, at the
// single call site that needs the tie-break discipline.
package predicates
