package character

import "math"

// Coefficients holds each band's complex coefficients on the plane-wave
// basis, split into at most two spin channels. Down == nil means scalar
// bands: the spatial part alone defines the action and the operations'
// spin rotations are ignored. When Down is present the two channels form
// spinors mixed by the SU(2) part of every operation.
//
// The package only ever reads these slices.
type Coefficients struct {
	Up   [][]complex128
	Down [][]complex128
}

// Spinor reports whether a second spin channel is present.
func (c Coefficients) Spinor() bool { return c.Down != nil }

// Window is an inclusive band index range [Lo, Hi].
type Window struct {
	Lo, Hi int
}

// Block is a contiguous run of bands judged exactly degenerate, with one
// complex character per little-group unitary operation, positionally
// aligned with the operation list handed to Compute.
type Block struct {
	Bands []int
	Chars []complex128
}

// Size returns the block dimension (number of member bands).
func (b Block) Size() int { return len(b.Bands) }

// DefaultDegeneracyTolerance is the energy difference below which two
// consecutive bands are grouped into the same degenerate block.
const DefaultDegeneracyTolerance = 1e-4

const panicDegeneracyToleranceInvalid = "character: WithDegeneracyTolerance: tol must be finite and > 0"

// Option configures Compute.
type Option func(*options)

type options struct {
	degTol float64
}

func gatherOptions(opts ...Option) options {
	o := options{degTol: DefaultDegeneracyTolerance}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// WithDegeneracyTolerance overrides the degeneracy grouping tolerance.
// Panics on a non-positive or non-finite value.
func WithDegeneracyTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicDegeneracyToleranceInvalid)
	}

	return func(o *options) { o.degTol = tol }
}
