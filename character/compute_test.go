package character_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandstruct/bandrep/character"
	"github.com/bandstruct/bandrep/latmat"
	"github.com/bandstruct/bandrep/pwbasis"
	"github.com/bandstruct/bandrep/symmetry"
)

func c2zOp() symmetry.Operation {
	op := symmetry.IdentityOp()
	op.Rot = latmat.Mat3i{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	op.Cart = latmat.Mat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	return op
}

// threeWaveSetup builds the {E, C2z} little group at Γ over the basis
// {0, +G, −G} along x, with the action precomputed.
func threeWaveSetup(t *testing.T) ([]symmetry.Operation, *pwbasis.Action) {
	t.Helper()

	ops := []symmetry.Operation{symmetry.IdentityOp(), c2zOp()}
	b := pwbasis.Basis{
		K:      latmat.Vec3{},
		G:      []latmat.Vec3i{{0, 0, 0}, {1, 0, 0}, {-1, 0, 0}},
		Active: 3,
	}
	act, err := pwbasis.Setup(b, ops)
	require.NoError(t, err)

	return ops, act
}

// symmetric/antisymmetric standing-wave coefficients over {0, +G, −G}.
var (
	even = []complex128{0, complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)}
	odd  = []complex128{0, complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}
)

// TestCompute_IdentityCharacterEqualsBlockSize: trace of the identity is
// the block dimension, for split and degenerate spectra alike.
func TestCompute_IdentityCharacterEqualsBlockSize(t *testing.T) {
	ops, act := threeWaveSetup(t)
	coeff := character.Coefficients{Up: [][]complex128{even, odd}}

	blocks, err := character.Compute(ops, act, coeff, []float64{1.0, 1.0}, character.Window{Lo: 0, Hi: 1})
	require.NoError(t, err)
	require.Len(t, blocks, 1, "equal energies must merge into one block")
	assert.Equal(t, 2, blocks[0].Size())
	assert.InDelta(t, 2, real(blocks[0].Chars[0]), 1e-12)
	assert.InDelta(t, 0, imag(blocks[0].Chars[0]), 1e-12)
}

// TestCompute_ParityCharacters: the even standing wave carries {1,1}, the
// odd one {1,−1} under {E, C2z}.
func TestCompute_ParityCharacters(t *testing.T) {
	ops, act := threeWaveSetup(t)
	coeff := character.Coefficients{Up: [][]complex128{even, odd}}

	blocks, err := character.Compute(ops, act, coeff, []float64{1.0, 2.0}, character.Window{Lo: 0, Hi: 1})
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.InDelta(t, 1, real(blocks[0].Chars[1]), 1e-12, "even state is C2z-symmetric")
	assert.InDelta(t, -1, real(blocks[1].Chars[1]), 1e-12, "odd state is C2z-antisymmetric")
}

// TestCompute_OrthogonalityNorm: Σ_r |χ(r)|² / |G| is 1 for an irreducible
// block and larger for a composite (accidentally degenerate) block.
func TestCompute_OrthogonalityNorm(t *testing.T) {
	ops, act := threeWaveSetup(t)
	coeff := character.Coefficients{Up: [][]complex128{even, odd}}

	norm := func(chars []complex128) float64 {
		var s float64
		for _, ch := range chars {
			s += real(ch)*real(ch) + imag(ch)*imag(ch)
		}
		return s / float64(len(ops))
	}

	split, err := character.Compute(ops, act, coeff, []float64{1.0, 2.0}, character.Window{Lo: 0, Hi: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, norm(split[0].Chars), 1e-10, "irreducible block")
	assert.InDelta(t, 1, norm(split[1].Chars), 1e-10, "irreducible block")

	merged, err := character.Compute(ops, act, coeff, []float64{1.0, 1.0}, character.Window{Lo: 0, Hi: 1})
	require.NoError(t, err)
	assert.InDelta(t, 2, norm(merged[0].Chars), 1e-10, "composite block")
}

// TestCompute_DegeneracyTolerance: grouping honors the configured energy
// tolerance on consecutive differences.
func TestCompute_DegeneracyTolerance(t *testing.T) {
	ops, act := threeWaveSetup(t)
	coeff := character.Coefficients{Up: [][]complex128{even, odd}}
	energies := []float64{1.0, 1.0 + 5e-4}

	blocks, err := character.Compute(ops, act, coeff, energies, character.Window{Lo: 0, Hi: 1})
	require.NoError(t, err)
	assert.Len(t, blocks, 2, "gap above default tolerance splits")

	blocks, err = character.Compute(ops, act, coeff, energies, character.Window{Lo: 0, Hi: 1},
		character.WithDegeneracyTolerance(1e-3))
	require.NoError(t, err)
	assert.Len(t, blocks, 1, "gap below widened tolerance merges")
}

// TestCompute_SpinorChannel: an up-polarized spinor under a spin rotation
// about z picks up the Spin[0][0] diagonal element as its character.
func TestCompute_SpinorChannel(t *testing.T) {
	phi := math.Pi / 3
	op := symmetry.IdentityOp()
	op.Spin = symmetry.SU2{
		{complex(math.Cos(phi/2), -math.Sin(phi/2)), 0},
		{0, complex(math.Cos(phi/2), math.Sin(phi/2))},
	}

	b := pwbasis.Basis{K: latmat.Vec3{}, G: []latmat.Vec3i{{0, 0, 0}}, Active: 1}
	act, err := pwbasis.Setup(b, []symmetry.Operation{op})
	require.NoError(t, err)

	coeff := character.Coefficients{
		Up:   [][]complex128{{1}},
		Down: [][]complex128{{0}},
	}
	blocks, err := character.Compute([]symmetry.Operation{op}, act, coeff, []float64{0}, character.Window{Lo: 0, Hi: 0})
	require.NoError(t, err)

	assert.InDelta(t, math.Cos(phi/2), real(blocks[0].Chars[0]), 1e-12)
	assert.InDelta(t, -math.Sin(phi/2), imag(blocks[0].Chars[0]), 1e-12)
}

// TestCompute_ShapeErrors covers the fail-fast validation paths.
func TestCompute_ShapeErrors(t *testing.T) {
	ops, act := threeWaveSetup(t)
	coeff := character.Coefficients{Up: [][]complex128{even, odd}}

	_, err := character.Compute(ops, act, coeff, []float64{1, 2}, character.Window{Lo: 1, Hi: 0})
	assert.ErrorIs(t, err, character.ErrBandWindow)

	_, err = character.Compute(ops, act, coeff, []float64{1, 2}, character.Window{Lo: 0, Hi: 2})
	assert.ErrorIs(t, err, character.ErrBandWindow)

	_, err = character.Compute(ops, act, character.Coefficients{Up: [][]complex128{{1, 0}}},
		[]float64{1}, character.Window{Lo: 0, Hi: 0})
	assert.ErrorIs(t, err, character.ErrCoefficientShape, "row shorter than active basis")

	_, err = character.Compute(ops[:1], act, coeff, []float64{1, 2}, character.Window{Lo: 0, Hi: 1})
	assert.ErrorIs(t, err, character.ErrActionShape)
}
