// Package corep identifies which irreducible representations (or, for
// little groups containing antiunitary operations, which
// co-representations) degenerate band blocks realize.
//
// Decompose projects each block's character vector onto the rows of a
// reference character table via the group-theoretic inner product. The
// projections must round to non-negative integers whose dimension-weighted
// sum reproduces the block size; anything else is a
// CharacterDecompositionMismatch, which is block-scoped: the offending
// block is reported unresolved (and logged) while the remaining blocks
// still decode. A block may legitimately carry a direct sum when
// accidental degeneracy is present.
//
// Classify resolves the relation of every unitary irrep to time reversal
// through the Frobenius–Schur-type discriminant, the normalized sum of
// characters over squares of the antiunitary elements:
//
//	+1 → SelfPaired   (case a: stays irreducible at the same dimension)
//	−1 → Doubled      (case c: pairs with itself, dimension doubles)
//	 0 → DistinctPair (case b: pairs with a different irrep of equal dimension)
//
// The raw integer discriminant and the un-normalized torsion sum are kept
// on the Relation as diagnostics.
package corep
