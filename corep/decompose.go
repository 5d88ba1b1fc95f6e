package corep

import (
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/bandstruct/bandrep/character"
	"github.com/bandstruct/bandrep/symmetry"
)

// Decompose resolves each block's character vector into multiplicities of
// the table rows over the unitary subgroup.
//
// tbl columns and ops must be positionally aligned; ops is the unitary
// little group (used for the group order and to locate the identity
// column, from which irrep dimensions are read). Table-shape problems are
// reported once, as an error; per-block failures are recoverable and
// yield unresolved assignments instead, logged with full attribution, so
// a batch over many k-points keeps going.
func Decompose(blocks []character.Block, tbl Table, ops []symmetry.Operation, opts ...Option) ([]Assignment, error) {
	o := gatherOptions(opts...)

	if err := checkTable(tbl, len(ops)); err != nil {
		return nil, err
	}
	identCol := identityIndex(ops, o.opTol)
	if identCol < 0 {
		return nil, ErrNoIdentity
	}

	dims := make([]int, tbl.Rows())
	for i := range tbl.Chars {
		dims[i] = int(math.Round(real(tbl.Chars[i][identCol])))
	}

	out := make([]Assignment, 0, len(blocks))
	for bi, blk := range blocks {
		asg := Assignment{Block: bi, Bands: blk.Bands}

		mult, err := project(blk.Chars, tbl, o.projTol)
		if err == nil {
			err = checkDimensionSum(mult, dims, blk.Size())
		}
		if err != nil {
			asg.Unresolved = true
			asg.Err = fmt.Errorf("block %d (bands %v): %w", bi, blk.Bands, err)
			o.log.Warn("character decomposition mismatch",
				zap.Int("block", bi),
				zap.Ints("bands", blk.Bands),
				zap.Error(err))
			out = append(out, asg)

			continue
		}

		asg.Multiplicities = mult
		for i, m := range mult {
			for c := 0; c < m; c++ {
				asg.Labels = append(asg.Labels, tbl.Labels[i])
			}
		}
		out = append(out, asg)
	}

	return out, nil
}

// project computes the inner product of the block characters with each
// table row, normalized by the group order, and demands every projection
// round to a non-negative integer within tol.
func project(chars []complex128, tbl Table, tol float64) ([]int, error) {
	order := float64(len(chars))
	mult := make([]int, tbl.Rows())

	for i, row := range tbl.Chars {
		var p complex128
		for r, ch := range chars {
			p += ch * cmplx.Conj(row[r])
		}
		p /= complex(order, 0)

		n := int(math.Round(real(p)))
		if n < 0 || math.Abs(real(p)-float64(n)) > tol || math.Abs(imag(p)) > tol {
			return nil, fmt.Errorf("row %d projection %.6f%+.6fi not a non-negative integer: %w",
				i, real(p), imag(p), ErrDecompositionMismatch)
		}
		mult[i] = n
	}

	return mult, nil
}

func checkDimensionSum(mult, dims []int, size int) error {
	total := 0
	for i, m := range mult {
		total += m * dims[i]
	}
	if total != size {
		return fmt.Errorf("projected dimension %d != block size %d: %w", total, size, ErrDecompositionMismatch)
	}

	return nil
}

func checkTable(tbl Table, cols int) error {
	if len(tbl.Labels) != tbl.Rows() {
		return fmt.Errorf("%d labels for %d rows: %w", len(tbl.Labels), tbl.Rows(), ErrTableShape)
	}
	for i, row := range tbl.Chars {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, %d operations: %w", i, len(row), cols, ErrTableShape)
		}
	}

	return nil
}

func identityIndex(ops []symmetry.Operation, tol float64) int {
	for i, op := range ops {
		if op.IsIdentity(tol) {
			return i
		}
	}

	return -1
}
