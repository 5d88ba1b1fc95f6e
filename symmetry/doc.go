// Package symmetry defines space-group symmetry operations and the
// little-group filter over a wavevector.
//
// An Operation bundles the integer rotation (lattice basis), the Cartesian
// rotation, the fractional translation, the SU(2) spin rotation and the
// time-reversal flag. The package also carries the small amount of group
// algebra (Compose, Invert, Square, Find) that the corepresentation
// classifier needs to evaluate squares of antiunitary elements and locate
// them in an operation list modulo lattice translations.
//
// FindLittleGroup is a pure filter: it returns, in input order, the
// operations that map a wavevector onto itself modulo a reciprocal lattice
// vector (time-reversal operations additionally negate the transformed
// vector), split into unitary and antiunitary subsets that retain their
// global indices for positional bookkeeping downstream.
package symmetry
