package latmat

import "errors"

var (
	// ErrSingular indicates a zero determinant where an invertible lattice
	// rotation was required.
	ErrSingular = errors.New("latmat: singular matrix")

	// ErrNonIntegerInverse indicates the determinant does not divide every
	// adjugate entry, i.e. the input rotation is not unimodular. Valid
	// crystallographic input never triggers this; it signals corrupted or
	// mislabeled operation data.
	ErrNonIntegerInverse = errors.New("latmat: inverse is not integral")

	// ErrInverseMismatch indicates the candidate inverse composed with the
	// original did not reproduce the identity. Reaching it means an internal
	// arithmetic inconsistency rather than bad user data.
	ErrInverseMismatch = errors.New("latmat: inverse verification failed")
)
