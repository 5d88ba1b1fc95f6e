package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandstruct/bandrep/latmat"
	"github.com/bandstruct/bandrep/symmetry"
)

// TestCompose_SeitzConvention pins {R_a|τ_a}{R_b|τ_b} = {R_aR_b|R_aτ_b+τ_a}.
func TestCompose_SeitzConvention(t *testing.T) {
	a := c2zOp()
	a.Trans = latmat.Vec3{0, 0, 0.5}
	b := symmetry.IdentityOp()
	b.Trans = latmat.Vec3{0.5, 0, 0}

	ab := symmetry.Compose(a, b)
	assert.Equal(t, a.Rot, ab.Rot)
	assert.InDeltaSlice(t, []float64{-0.5, 0, 0.5}, ab.Trans[:], 1e-12)
	assert.False(t, ab.TimeReversal)
}

// TestCompose_AntiunitaryConjugatesSpin: an antiunitary left factor
// conjugates the right factor's spin part and flips the flag.
func TestCompose_AntiunitaryConjugatesSpin(t *testing.T) {
	trOp := timeReversalOp()
	u := symmetry.IdentityOp()
	u.Spin = symmetry.SU2{{complex(0, 1), 0}, {0, complex(0, -1)}} // exp(±iπ/2) about z

	prod := symmetry.Compose(trOp, u)
	assert.True(t, prod.TimeReversal)
	// (-iσ_y)·conj(diag(i,-i)) = (-iσ_y)·diag(-i,i)
	want := symmetry.SU2{{0, complex(0, -1)}, {complex(0, -1), 0}}
	assert.True(t, prod.Spin.EqualWithin(want, 1e-12), "got %v", prod.Spin)
}

// TestInvert_RoundTrip: op∘op⁻¹ must be the identity for a screw rotation.
func TestInvert_RoundTrip(t *testing.T) {
	op := c2zOp()
	op.Trans = latmat.Vec3{0, 0, 0.5}

	inv, err := symmetry.Invert(op)
	require.NoError(t, err)

	e := symmetry.Compose(op, inv)
	assert.True(t, e.IsIdentity(1e-10), "op·op⁻¹ must be identity, got %+v", e)

	e = symmetry.Compose(inv, op)
	assert.True(t, e.IsIdentity(1e-10), "op⁻¹·op must be identity, got %+v", e)
}

// TestInvert_Antiunitary: (U·K)⁻¹∘(U·K) is the unitary identity.
func TestInvert_Antiunitary(t *testing.T) {
	trOp := timeReversalOp()
	inv, err := symmetry.Invert(trOp)
	require.NoError(t, err)

	e := symmetry.Compose(inv, trOp)
	assert.True(t, e.IsIdentity(1e-10), "T⁻¹·T must be identity, got %+v", e)
}

// TestSquare_TimeReversal: T² = −1 on spin-1/2 (spatially the identity,
// spin part −1), and (T·C2z)² is spatially C2z².
func TestSquare_TimeReversal(t *testing.T) {
	sq := symmetry.Square(timeReversalOp())
	assert.False(t, sq.TimeReversal, "square of antiunitary is unitary")
	assert.True(t, sq.Rot.IsIdentity())
	minusOne := symmetry.SU2{{-1, 0}, {0, -1}}
	assert.True(t, sq.Spin.EqualWithin(minusOne, 1e-12), "T² must be −1 on spinors, got %v", sq.Spin)
}

// TestFind_ModuloLattice: identification tolerates integral translation
// offsets but distinguishes spin sign (double-group partners).
func TestFind_ModuloLattice(t *testing.T) {
	a := c2zOp()
	a.Trans = latmat.Vec3{0, 0, 0.5}
	barA := a
	barA.Spin = symmetry.SU2{{-1, 0}, {0, -1}}
	ops := []symmetry.Operation{symmetry.IdentityOp(), a, barA}

	shifted := a
	shifted.Trans = latmat.Vec3{1, -2, 1.5}
	assert.Equal(t, 1, symmetry.Find(ops, shifted, 1e-6))

	shifted.Spin = barA.Spin
	assert.Equal(t, 2, symmetry.Find(ops, shifted, 1e-6), "spin sign selects the 2π partner")

	missing := c2zOp()
	missing.Trans = latmat.Vec3{0.25, 0, 0}
	assert.Equal(t, -1, symmetry.Find(ops, missing, 1e-6))
}
