package symmetry

import (
	"fmt"

	"github.com/bandstruct/bandrep/latmat"
)

// Compose returns the product a∘b in the Seitz convention
// {R_a|τ_a}{R_b|τ_b} = {R_a·R_b | R_a·τ_b + τ_a}.
//
// When a is antiunitary its complex-conjugation passes through b, so b's
// spin part enters conjugated; the spatial parts are real and unaffected.
// The time-reversal flag of the product is the XOR of the factors.
func Compose(a, b Operation) Operation {
	bSpin := b.Spin
	if a.TimeReversal {
		bSpin = bSpin.Conj()
	}

	var cart latmat.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cart[i][j] = a.Cart[i][0]*b.Cart[0][j] + a.Cart[i][1]*b.Cart[1][j] + a.Cart[i][2]*b.Cart[2][j]
		}
	}

	return Operation{
		Rot:          a.Rot.Mul(b.Rot),
		Cart:         cart,
		Trans:        a.Rot.MulVec(b.Trans).Add(a.Trans),
		Spin:         a.Spin.Mul(bSpin),
		TimeReversal: a.TimeReversal != b.TimeReversal,
	}
}

// Invert returns op⁻¹. For a unitary operation the spin inverse is the
// conjugate transpose; for an antiunitary one (U·K) it is the transpose,
// since (U·K)⁻¹ = conj(U†)·K. Fails only on a malformed rotation.
func Invert(op Operation) (Operation, error) {
	rotInv, err := latmat.Inverse(op.Rot)
	if err != nil {
		return Operation{}, fmt.Errorf("invert: %w", err)
	}

	spin := op.Spin.Dagger()
	if op.TimeReversal {
		spin = op.Spin.Transpose()
	}

	return Operation{
		Rot:          rotInv,
		Cart:         cartTranspose(op.Cart),
		Trans:        rotInv.MulVec(op.Trans).Neg(),
		Spin:         spin,
		TimeReversal: op.TimeReversal,
	}, nil
}

// Square returns op∘op. For an antiunitary element the result is always
// unitary; this is the quantity the corepresentation discriminant sums
// characters over.
func Square(op Operation) Operation {
	return Compose(op, op)
}

// Find locates target inside ops: equal integer rotation, equal
// time-reversal flag, translations equal modulo a lattice vector and spin
// entries equal within tol. Returns the first matching index or −1.
//
// Matching includes the spin part because in a double group an operation
// and its 2π-rotated partner share the spatial data and differ only by
// the sign of the SU(2) matrix.
func Find(ops []Operation, target Operation, tol float64) int {
	for i, op := range ops {
		if op.TimeReversal != target.TimeReversal || op.Rot != target.Rot {
			continue
		}
		if !op.Trans.Sub(target.Trans).IsIntegral(tol) {
			continue
		}
		if !op.Spin.EqualWithin(target.Spin, tol) {
			continue
		}

		return i
	}

	return -1
}

func cartTranspose(m latmat.Mat3) latmat.Mat3 {
	var out latmat.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}
