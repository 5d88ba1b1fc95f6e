package character

import "errors"

var (
	// ErrBandWindow indicates the requested band window is empty or falls
	// outside the supplied energies.
	ErrBandWindow = errors.New("character: band window out of range")

	// ErrCoefficientShape indicates coefficient rows are missing for the
	// window or shorter than the active basis.
	ErrCoefficientShape = errors.New("character: coefficient shape mismatch")

	// ErrActionShape indicates the basis action does not cover the supplied
	// operation list.
	ErrActionShape = errors.New("character: action/operation shape mismatch")
)
