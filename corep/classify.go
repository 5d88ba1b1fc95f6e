package corep

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/bandstruct/bandrep/latmat"
	"github.com/bandstruct/bandrep/symmetry"
)

// Classify computes the time-reversal relation of every unitary irrep in
// the table from the extended Frobenius–Schur indicator
//
//	ind(i) = (1/|U|) · Σ_{a ∈ A} χ_i(a²)
//
// where A is the antiunitary coset and the squares a² are unitary
// elements located in unitaryOps modulo lattice translations (spin sign
// included, so double-group partners resolve correctly). When a square
// reproduces a listed operation only up to a lattice translation t, its
// character carries the Bloch phase exp(−2πi·k·t) of the wavevector set
// via WithWavevector; at Γ all such phases are 1.
//
// For indicator 0 the partner row is found by matching
// conj(χ_i(a₀⁻¹·g·a₀)) against the table, a₀ being the first antiunitary
// representative. An empty antiunitary coset yields every irrep
// SelfPaired with itself as partner (nothing to relate).
func Classify(tbl Table, unitaryOps, antiOps []symmetry.Operation, opts ...Option) ([]Relation, error) {
	o := gatherOptions(opts...)

	if err := checkTable(tbl, len(unitaryOps)); err != nil {
		return nil, err
	}

	relations := make([]Relation, tbl.Rows())
	if len(antiOps) == 0 {
		for i := range relations {
			relations[i] = Relation{Kind: SelfPaired, Partner: i, Discriminant: 1}
		}

		return relations, nil
	}

	// Column indices and Bloch weights of the squares of all antiunitary
	// elements, shared across irreps.
	sqIdx := make([]int, len(antiOps))
	sqW := make([]complex128, len(antiOps))
	for ai, a := range antiOps {
		sq := symmetry.Square(a)
		idx := symmetry.Find(unitaryOps, sq, o.opTol)
		if idx < 0 {
			return nil, fmt.Errorf("square of antiunitary element %d: %w", ai, ErrGroupIncomplete)
		}
		sqIdx[ai] = idx
		sqW[ai] = latticePhase(o.k, sq.Trans.Sub(unitaryOps[idx].Trans))
	}

	// Conjugation of every unitary column by the antiunitary representative,
	// needed only for the type-b partner search; computed lazily.
	var conjIdx []int
	var conjW []complex128
	conjColumns := func() ([]int, []complex128, error) {
		if conjIdx != nil {
			return conjIdx, conjW, nil
		}
		a0 := antiOps[0]
		a0inv, err := symmetry.Invert(a0)
		if err != nil {
			return nil, nil, fmt.Errorf("antiunitary representative: %w", err)
		}
		conjIdx = make([]int, len(unitaryOps))
		conjW = make([]complex128, len(unitaryOps))
		for r, g := range unitaryOps {
			h := symmetry.Compose(symmetry.Compose(a0inv, g), a0)
			idx := symmetry.Find(unitaryOps, h, o.opTol)
			if idx < 0 {
				return nil, nil, fmt.Errorf("conjugate of operation %d: %w", r, ErrGroupIncomplete)
			}
			conjIdx[r] = idx
			conjW[r] = latticePhase(o.k, h.Trans.Sub(unitaryOps[idx].Trans))
		}

		return conjIdx, conjW, nil
	}

	order := float64(len(unitaryOps))
	for i, row := range tbl.Chars {
		var sum complex128
		for ai, idx := range sqIdx {
			sum += sqW[ai] * row[idx]
		}

		torsion := int(math.Round(real(sum)))
		ind := real(sum) / order
		disc := int(math.Round(ind))

		rel := Relation{Partner: i, Discriminant: disc, Torsion: torsion}
		switch disc {
		case 1:
			rel.Kind = SelfPaired
		case -1:
			rel.Kind = Doubled
		case 0:
			rel.Kind = DistinctPair
			cols, weights, err := conjColumns()
			if err != nil {
				return nil, err
			}
			partner, err := findPartner(tbl, i, cols, weights, o.projTol)
			if err != nil {
				return nil, err
			}
			rel.Partner = partner
		default:
			return nil, fmt.Errorf("irrep %d indicator %.6f: %w", i, ind, ErrDecompositionMismatch)
		}

		relations[i] = rel
	}

	return relations, nil
}

// findPartner matches the time-reversal-conjugated character vector of
// row i against the table and returns the partner row index.
func findPartner(tbl Table, i int, conjIdx []int, conjW []complex128, tol float64) (int, error) {
	want := make([]complex128, len(conjIdx))
	for r, idx := range conjIdx {
		want[r] = cmplx.Conj(conjW[r] * tbl.Chars[i][idx])
	}

	for j, row := range tbl.Chars {
		if j == i {
			continue // a type-b partner is always a distinct row
		}
		if rowsEqual(row, want, tol) {
			return j, nil
		}
	}

	return 0, fmt.Errorf("irrep %d: %w", i, ErrPartnerNotFound)
}

func rowsEqual(a, b []complex128, tol float64) bool {
	for r := range a {
		if cmplx.Abs(a[r]-b[r]) > tol {
			return false
		}
	}

	return true
}

// latticePhase returns the Bloch character exp(−2πi·k·t) of the lattice
// translation t at wavevector k.
func latticePhase(k, t latmat.Vec3) complex128 {
	s, c := math.Sincos(-2 * math.Pi * k.Dot(t))

	return complex(c, s)
}
