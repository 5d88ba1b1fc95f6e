// Package latmat provides exact 3×3 integer lattice-matrix arithmetic and
// the small real vector/matrix helpers the symmetry pipeline builds on.
//
// Crystallographic rotations expressed in a lattice basis are unimodular
// integer matrices (determinant ±1) and therefore possess exact integer
// inverses. Inverse computes that inverse by cofactor expansion and
// verifies it, failing loudly on any input that is not a valid lattice
// rotation:
//
//   - ErrSingular          — zero determinant (degenerate input).
//   - ErrNonIntegerInverse — determinant does not divide the adjugate
//     (input was not unimodular).
//   - ErrInverseMismatch   — the verified product with the original is
//     not the identity (internal consistency guard).
//
// All functions are pure; no value is mutated in place.
package latmat
