package symmetry

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/bandstruct/bandrep/latmat"
)

// SU2 is a 2×2 complex spin-rotation matrix in row-major order.
type SU2 [2][2]complex128

// IdentitySpin returns the identity spin rotation.
func IdentitySpin() SU2 {
	return SU2{{1, 0}, {0, 1}}
}

// Mul returns the product s·o.
func (s SU2) Mul(o SU2) SU2 {
	var out SU2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = s[i][0]*o[0][j] + s[i][1]*o[1][j]
		}
	}

	return out
}

// Conj returns the elementwise complex conjugate.
func (s SU2) Conj() SU2 {
	var out SU2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = cmplx.Conj(s[i][j])
		}
	}

	return out
}

// Transpose returns sᵀ.
func (s SU2) Transpose() SU2 {
	return SU2{{s[0][0], s[1][0]}, {s[0][1], s[1][1]}}
}

// Dagger returns the conjugate transpose, which is the inverse for a
// unitary spin rotation.
func (s SU2) Dagger() SU2 {
	return s.Conj().Transpose()
}

// EqualWithin reports elementwise agreement of two spin rotations within
// tol on both real and imaginary parts.
func (s SU2) EqualWithin(o SU2, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !scalar.EqualWithinAbs(real(s[i][j]), real(o[i][j]), tol) ||
				!scalar.EqualWithinAbs(imag(s[i][j]), imag(o[i][j]), tol) {
				return false
			}
		}
	}

	return true
}

// Operation is one space-group symmetry operation. Rot must be unimodular
// (integer inverse exists); Spin carries the spin-1/2 rotation associated
// with the Cartesian rotation; TimeReversal marks antiunitary operations.
type Operation struct {
	Rot          latmat.Mat3i // rotation, lattice (fractional) basis
	Cart         latmat.Mat3  // the same rotation in Cartesian coordinates
	Trans        latmat.Vec3  // fractional translation
	Spin         SU2          // spin-1/2 rotation
	TimeReversal bool         // antiunitary marker
}

// IdentityOp returns the identity operation with no translation, identity
// spin and no time reversal.
func IdentityOp() Operation {
	return Operation{
		Rot:  latmat.Identity(),
		Cart: latmat.Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Spin: IdentitySpin(),
	}
}

// IsIdentity reports whether op is the identity: unit rotation, integral
// translation, identity spin and unitary. The translation is compared
// modulo a lattice vector so centering conventions do not matter.
func (op Operation) IsIdentity(tol float64) bool {
	return !op.TimeReversal &&
		op.Rot.IsIdentity() &&
		op.Trans.IsIntegral(tol) &&
		op.Spin.EqualWithin(IdentitySpin(), tol)
}

// LittleGroup is the subset of an operation table fixing one wavevector
// modulo a reciprocal lattice vector. All three slices hold indices into
// the original table and preserve its order; Members is the concatenation
// of the unitary and antiunitary subsets in that same order. Downstream
// phase and character bookkeeping is positionally aligned with Unitary,
// so the order must never be re-sorted.
type LittleGroup struct {
	K           latmat.Vec3
	Members     []int
	Unitary     []int
	Antiunitary []int
}

// Order returns the total number of little-group elements.
func (lg LittleGroup) Order() int { return len(lg.Members) }

// Select resolves a slice of global indices against the full operation
// table, in order.
func Select(ops []Operation, indices []int) []Operation {
	out := make([]Operation, len(indices))
	for i, idx := range indices {
		out[i] = ops[idx]
	}

	return out
}
