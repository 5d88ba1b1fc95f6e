// Package bandrep labels electronic bands by the irreducible
// (co-)representations they carry under a crystal's space-group symmetry,
// including spin-1/2 rotations and antiunitary (time-reversal) operations.
//
// The pipeline, leaf-first:
//
//	latmat/    — exact integer 3×3 lattice arithmetic (unimodular inverses)
//	symmetry/  — symmetry operations, their algebra, and little-group finding
//	pwbasis/   — the symmetry action on a plane-wave basis (permutation + phases)
//	character/ — degeneracy blocking and per-operation character traces
//	corep/     — projection onto reference irrep tables and the
//	             time-reversal (corepresentation) case analysis
//
// This root package is the facade: it wires the leaves into a
// per-wavevector pipeline and drives batches of k-points in parallel.
// Callers supply three collaborators (an operation source, a
// wavefunction source, and a reference-table provider) and a Collector
// that accumulates per-k-point results and failures. A failed wavevector
// never stops the batch; it is recorded with full attribution and the
// remaining k-points proceed.
//
// Minimal use:
//
//	eng := bandrep.New(ops, wfs, tables)
//	var col bandrep.Collector
//	eng.Run(&col)
//	for _, res := range col.Results() { ... }
//
// All tolerances are functional options with documented defaults; see
// options.go and the leaf packages for the knobs each stage exposes.
package bandrep
