package pwbasis

import "math"

// DefaultMatchTolerance is the L1 tolerance under which a rotated basis
// vector matches an entry of the active set.
const DefaultMatchTolerance = 1e-3

const panicMatchToleranceInvalid = "pwbasis: WithMatchTolerance: tol must be finite and > 0"

// Option configures Setup.
type Option func(*options)

type options struct {
	tol float64
}

func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultMatchTolerance}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// WithMatchTolerance overrides the L1 match tolerance. Panics on a
// non-positive or non-finite value.
func WithMatchTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicMatchToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}
