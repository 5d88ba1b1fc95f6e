package corep

import "errors"

var (
	// ErrDecompositionMismatch indicates a block's characters do not resolve
	// into an integral non-negative combination of table rows matching the
	// block dimension. Typically numerical noise at a near-degeneracy
	// boundary or inconsistent upstream data; block-scoped and recoverable.
	ErrDecompositionMismatch = errors.New("corep: character decomposition mismatch")

	// ErrTableShape indicates the reference table rows do not match the
	// operation list length.
	ErrTableShape = errors.New("corep: table shape mismatch")

	// ErrNoIdentity indicates the operation list contains no identity, so
	// irrep dimensions cannot be read off the table.
	ErrNoIdentity = errors.New("corep: identity operation not found")

	// ErrGroupIncomplete indicates a product of little-group elements
	// (a square of an antiunitary element, or a conjugated unitary element)
	// could not be located in the unitary operation list.
	ErrGroupIncomplete = errors.New("corep: little group not closed over required products")

	// ErrPartnerNotFound indicates a type-b irrep's time-reversal partner
	// row is missing from the table.
	ErrPartnerNotFound = errors.New("corep: time-reversal partner not in table")
)
