package character

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/bandstruct/bandrep/pwbasis"
	"github.com/bandstruct/bandrep/symmetry"
)

// Compute groups the bands of the window into degenerate blocks and
// returns each block's character under every operation.
//
// ops must be the little group's unitary operations in the same order the
// basis action was set up with. energies and coefficients are indexed by
// absolute band number; the window selects the contiguous range of
// interest. Blocks never extend past the window edges, so callers should
// choose windows that do not split a degenerate multiplet.
//
// The character of operation r on a block is the trace of the matrix
//
//	D[m][n] = Σ_{s,s',j} conj(C_m[s][perm_r[j]]) · Spin_r[s][s'] · phase_r[j] · C_n[s'][j]
//
// restricted to the block's bands (scalar bands drop the spin sum). The
// k-phase is intentionally excluded; see the package comment.
//
// Complexity: O(blocks × ops × size² × active).
func Compute(ops []symmetry.Operation, act *pwbasis.Action, coeff Coefficients,
	energies []float64, win Window, opts ...Option) ([]Block, error) {
	o := gatherOptions(opts...)

	if act == nil || act.Ops() != len(ops) {
		return nil, ErrActionShape
	}
	if win.Lo > win.Hi || win.Lo < 0 || win.Hi >= len(energies) {
		return nil, fmt.Errorf("window [%d,%d] over %d bands: %w", win.Lo, win.Hi, len(energies), ErrBandWindow)
	}

	active := 0
	if len(ops) > 0 {
		active = len(act.Perm[0])
	}
	if err := checkCoefficients(coeff, win, active); err != nil {
		return nil, err
	}

	var blocks []Block
	for lo := win.Lo; lo <= win.Hi; {
		hi := lo
		for hi < win.Hi && energies[hi+1]-energies[hi] < o.degTol {
			hi++
		}

		blk := Block{
			Bands: bandRange(lo, hi),
			Chars: make([]complex128, len(ops)),
		}
		for r := range ops {
			blk.Chars[r] = blockTrace(ops[r], act, coeff, blk.Bands, r)
		}
		blocks = append(blocks, blk)

		lo = hi + 1
	}

	return blocks, nil
}

// blockTrace assembles the block-restricted representation matrix of one
// operation and returns its trace.
func blockTrace(op symmetry.Operation, act *pwbasis.Action, coeff Coefficients, bands []int, r int) complex128 {
	d := len(bands)
	rep := mat.NewCDense(d, d, nil)

	perm := act.Perm[r]
	phase := act.Phase[r]

	for m := 0; m < d; m++ {
		for n := 0; n < d; n++ {
			var sum complex128
			if coeff.Spinor() {
				cm := [2][]complex128{coeff.Up[bands[m]], coeff.Down[bands[m]]}
				cn := [2][]complex128{coeff.Up[bands[n]], coeff.Down[bands[n]]}
				for j := range perm {
					mixed := op.Spin[0][0]*cn[0][j] + op.Spin[0][1]*cn[1][j]
					sum += cmplx.Conj(cm[0][perm[j]]) * phase[j] * mixed
					mixed = op.Spin[1][0]*cn[0][j] + op.Spin[1][1]*cn[1][j]
					sum += cmplx.Conj(cm[1][perm[j]]) * phase[j] * mixed
				}
			} else {
				cm := coeff.Up[bands[m]]
				cn := coeff.Up[bands[n]]
				for j := range perm {
					sum += cmplx.Conj(cm[perm[j]]) * phase[j] * cn[j]
				}
			}
			rep.Set(m, n, sum)
		}
	}

	var tr complex128
	for m := 0; m < d; m++ {
		tr += rep.At(m, m)
	}

	return tr
}

func checkCoefficients(coeff Coefficients, win Window, active int) error {
	if len(coeff.Up) <= win.Hi {
		return fmt.Errorf("up channel has %d bands, window ends at %d: %w", len(coeff.Up), win.Hi, ErrCoefficientShape)
	}
	if coeff.Spinor() && len(coeff.Down) <= win.Hi {
		return fmt.Errorf("down channel has %d bands, window ends at %d: %w", len(coeff.Down), win.Hi, ErrCoefficientShape)
	}
	for b := win.Lo; b <= win.Hi; b++ {
		if len(coeff.Up[b]) < active {
			return fmt.Errorf("band %d has %d coefficients, %d active basis vectors: %w", b, len(coeff.Up[b]), active, ErrCoefficientShape)
		}
		if coeff.Spinor() && len(coeff.Down[b]) < active {
			return fmt.Errorf("band %d down channel has %d coefficients, %d active basis vectors: %w", b, len(coeff.Down[b]), active, ErrCoefficientShape)
		}
	}

	return nil
}

func bandRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for b := lo; b <= hi; b++ {
		out = append(out, b)
	}

	return out
}
