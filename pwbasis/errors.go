package pwbasis

import "errors"

var (
	// ErrBasisNotClosed indicates a rotated basis vector has no image inside
	// the active basis range: the supplied basis is not symmetry-complete
	// under the little group. Caller contract violation, fatal for the
	// current wavevector.
	ErrBasisNotClosed = errors.New("pwbasis: basis not closed under symmetry")

	// ErrBasisCollision indicates two distinct basis vectors mapped onto the
	// same image, so the candidate permutation is not a bijection. This is a
	// consistency error: it cannot happen when the little group and basis
	// are both well-formed.
	ErrBasisCollision = errors.New("pwbasis: permutation image collision")

	// ErrActiveOutOfRange indicates the active count does not fit the
	// supplied G-vector storage.
	ErrActiveOutOfRange = errors.New("pwbasis: active count out of range")
)
