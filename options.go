package bandrep

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/bandstruct/bandrep/character"
	"github.com/bandstruct/bandrep/corep"
	"github.com/bandstruct/bandrep/pwbasis"
	"github.com/bandstruct/bandrep/symmetry"
)

const (
	panicWorkersInvalid   = "bandrep: WithWorkers: n must be > 0"
	panicToleranceInvalid = "bandrep: tolerance must be finite and > 0"
	panicLoggerNil        = "bandrep: WithLogger: logger must not be nil"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	workers  int
	kTol     float64
	matchTol float64
	degTol   float64
	projTol  float64
	log      *zap.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{
		workers:  runtime.GOMAXPROCS(0),
		kTol:     symmetry.DefaultKTolerance,
		matchTol: pwbasis.DefaultMatchTolerance,
		degTol:   character.DefaultDegeneracyTolerance,
		projTol:  corep.DefaultProjectionTolerance,
		log:      zap.NewNop(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

func checkTol(tol float64) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
}

// WithWorkers bounds the number of wavevectors processed concurrently.
// Defaults to GOMAXPROCS. Panics on n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithKTolerance overrides the little-group membership tolerance
// (symmetry.DefaultKTolerance).
func WithKTolerance(tol float64) Option {
	checkTol(tol)

	return func(o *options) { o.kTol = tol }
}

// WithMatchTolerance overrides the basis-image matching tolerance
// (pwbasis.DefaultMatchTolerance).
func WithMatchTolerance(tol float64) Option {
	checkTol(tol)

	return func(o *options) { o.matchTol = tol }
}

// WithDegeneracyTolerance overrides the degeneracy grouping tolerance
// (character.DefaultDegeneracyTolerance).
func WithDegeneracyTolerance(tol float64) Option {
	checkTol(tol)

	return func(o *options) { o.degTol = tol }
}

// WithProjectionTolerance overrides the integral-projection tolerance
// (corep.DefaultProjectionTolerance).
func WithProjectionTolerance(tol float64) Option {
	checkTol(tol)

	return func(o *options) { o.projTol = tol }
}

// WithLogger routes per-wavevector progress and failure attribution to
// the given logger instead of the default no-op. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.log = log }
}
