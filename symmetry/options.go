package symmetry

import "math"

// DefaultKTolerance is the tolerance under which a transformed wavevector
// component is considered integral in the little-group membership test.
const DefaultKTolerance = 1e-4

// DefaultOpTolerance is the tolerance used when identifying an operation
// inside a list (translation modulo lattice, spin entries).
const DefaultOpTolerance = 1e-6

const panicToleranceInvalid = "symmetry: WithTolerance: tol must be finite and > 0"

// Option configures the little-group search.
type Option func(*options)

type options struct {
	tol float64
}

func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultKTolerance}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// WithTolerance overrides the integral-comparison tolerance. Panics on a
// non-positive or non-finite value (programmer error, not user data).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}
