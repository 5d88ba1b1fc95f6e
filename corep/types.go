package corep

import (
	"math"

	"go.uber.org/zap"

	"github.com/bandstruct/bandrep/latmat"
)

// Table is a reference character table for one little group: one row per
// irreducible representation, one column per operation, positionally
// aligned with the operation list in use. Supplied by an external
// group-theory data source, never computed here.
type Table struct {
	Labels []string
	Chars  [][]complex128
}

// Rows returns the number of irreducible representations in the table.
func (t Table) Rows() int { return len(t.Chars) }

// RelationKind tags how a unitary irrep relates to time reversal.
type RelationKind int

const (
	// SelfPaired: the irrep extends to a co-representation of the same
	// dimension (case a, discriminant +1).
	SelfPaired RelationKind = iota

	// DistinctPair: the irrep pairs with a different irrep of equal
	// dimension (case b, discriminant 0).
	DistinctPair

	// Doubled: the irrep pairs with itself and the co-representation
	// doubles in dimension (case c, discriminant −1).
	Doubled
)

// String implements fmt.Stringer for diagnostics.
func (k RelationKind) String() string {
	switch k {
	case SelfPaired:
		return "self-paired"
	case DistinctPair:
		return "distinct-pair"
	case Doubled:
		return "doubled"
	default:
		return "unknown"
	}
}

// Relation is one irrep's classification against the antiunitary coset.
// Partner indexes the paired table row and is meaningful only for
// DistinctPair. Discriminant is the normalized indicator (+1/0/−1) and
// Torsion the un-normalized integer sum over the coset, both retained as
// diagnostics.
type Relation struct {
	Kind         RelationKind
	Partner      int
	Discriminant int
	Torsion      int
}

// Assignment is one block's decomposition result. Multiplicities is
// indexed by table row; Labels repeats each realized label by its
// multiplicity, in table order. Unresolved blocks carry the wrapped
// mismatch in Err and empty multiplicities.
type Assignment struct {
	Block          int
	Bands          []int
	Multiplicities []int
	Labels         []string
	Unresolved     bool
	Err            error
}

// DefaultProjectionTolerance bounds how far a projection may sit from the
// nearest integer before the block is declared mismatched.
const DefaultProjectionTolerance = 1e-3

const (
	panicProjectionToleranceInvalid = "corep: WithProjectionTolerance: tol must be finite and > 0"
	panicOperationToleranceInvalid  = "corep: WithOperationTolerance: tol must be finite and > 0"
	panicLoggerNil                  = "corep: WithLogger: logger must not be nil"
)

// Option configures Decompose and Classify.
type Option func(*options)

type options struct {
	projTol float64
	opTol   float64
	k       latmat.Vec3
	log     *zap.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{
		projTol: DefaultProjectionTolerance,
		opTol:   1e-6,
		log:     zap.NewNop(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// WithProjectionTolerance overrides the integral-projection tolerance.
// Panics on a non-positive or non-finite value.
func WithProjectionTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicProjectionToleranceInvalid)
	}

	return func(o *options) { o.projTol = tol }
}

// WithOperationTolerance overrides the tolerance used to identify group
// elements (translations modulo lattice, spin entries). Panics on a
// non-positive or non-finite value.
func WithOperationTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicOperationToleranceInvalid)
	}

	return func(o *options) { o.opTol = tol }
}

// WithWavevector supplies the wavevector the character table belongs
// to. Products of little-group elements can reproduce a listed
// operation only up to a lattice translation t, whose character at k is
// the Bloch phase exp(−2πi·k·t); Classify weights its character sums by
// that phase. The default zero wavevector makes every weight 1, which
// is exact at Γ and for symmorphic groups.
func WithWavevector(k latmat.Vec3) Option {
	return func(o *options) { o.k = k }
}

// WithLogger routes block-scoped mismatch reports to the given logger
// instead of the default no-op. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.log = log }
}
