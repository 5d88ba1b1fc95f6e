// Package character computes representation characters of little-group
// operations directly from wavefunction coefficients.
//
// Bands inside a window are grouped into blocks of exactly degenerate
// states (consecutive energy difference below a tolerance). For each
// block and each unitary operation the package forms the operation's
// matrix restricted to the block's coefficient subspace (the basis
// permutation and per-basis phase from pwbasis combined with the 2×2
// spin rotation across spin channels) and takes its trace.
//
// The per-operation k-phase from pwbasis is deliberately not folded in
// here; it is applied later, uniformly, once the reference table's
// operation order is matched. Coefficients are read-only throughout.
package character
