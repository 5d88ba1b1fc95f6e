// Package pwbasis maps a plane-wave basis under the unitary operations of
// a little group.
//
// A Basis is an ordered list of integer G-vectors around a wavevector k;
// the list may be over-allocated (reserved capacity), so Active bounds the
// entries that are valid for this k-point. Setup produces, per operation:
//
//   - the k-phase exp(−2πi·k·τ) from the fractional translation,
//   - a permutation over the active indices (image of each basis vector
//     under the inverse rotation), and
//   - a per-basis phase exp(−2πi·τ·G′) with G′ the matched vector.
//
// Matching uses a hash keyed by rounded integer coordinates with a linear
// L1-tolerance scan as fallback, so match/no-match decisions are identical
// to a pure linear search at the same tolerance. A rotated vector with no
// image in the active set means the caller under-provisioned the basis:
// ErrBasisNotClosed, fatal for the wavevector.
package pwbasis
