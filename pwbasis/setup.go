package pwbasis

import (
	"fmt"

	"github.com/bandstruct/bandrep/latmat"
	"github.com/bandstruct/bandrep/symmetry"
)

// Setup computes the symmetry action of the little group's unitary
// operations on the basis.
//
// For every operation r and active basis vector G[j], the candidate image
// is R⁻¹·(k+G[j]) − k. The candidate is resolved against the active set
// through a hash keyed by rounded integer coordinates, falling back to a
// linear L1 scan so that match decisions are identical to a pure linear
// search at the same tolerance. The permutation must come out a bijection
// on the active range; any unmatched vector is ErrBasisNotClosed and any
// duplicate image is ErrBasisCollision, both fatal for the wavevector and
// wrapped with the operation and basis indices.
//
// All buffers are freshly allocated per call; Setup keeps no state between
// wavevectors.
//
// Complexity: O(ops × active) with the hash, O(ops × active²) worst case
// when every lookup falls through to the scan.
func Setup(b Basis, ops []symmetry.Operation, opts ...Option) (*Action, error) {
	o := gatherOptions(opts...)

	if b.Active <= 0 || b.Active > len(b.G) {
		return nil, fmt.Errorf("active %d of %d stored: %w", b.Active, len(b.G), ErrActiveOutOfRange)
	}

	index := make(map[latmat.Vec3i]int, b.Active)
	for j := 0; j < b.Active; j++ {
		index[b.G[j]] = j
	}

	act := &Action{
		KPhase: make([]complex128, len(ops)),
		Phase:  make([][]complex128, len(ops)),
		Perm:   make([][]int, len(ops)),
	}

	for r, op := range ops {
		inv, err := latmat.Inverse(op.Rot)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", r, err)
		}

		act.KPhase[r] = phaseExp(b.K.Dot(op.Trans))
		act.Phase[r] = make([]complex128, b.Active)
		act.Perm[r] = make([]int, b.Active)

		seen := make([]bool, b.Active)
		for j := 0; j < b.Active; j++ {
			cand := inv.MulVec(b.K.AddI(b.G[j])).Sub(b.K)

			match, ok := lookup(b, index, cand, o.tol)
			if !ok {
				return nil, fmt.Errorf("operation %d, basis %d (G=%v): %w", r, j, b.G[j], ErrBasisNotClosed)
			}
			if seen[match] {
				return nil, fmt.Errorf("operation %d, basis %d → %d: %w", r, j, match, ErrBasisCollision)
			}
			seen[match] = true

			act.Perm[r][j] = match
			act.Phase[r][j] = phaseExp(op.Trans.DotI(b.G[match]))
		}
	}

	return act, nil
}

// lookup resolves a candidate vector to an active basis index. The hash
// path handles the common case (candidate within tolerance of an integer
// vector present in the set); the linear scan preserves the exact
// L1-tolerance semantics for anything the hash misses.
func lookup(b Basis, index map[latmat.Vec3i]int, cand latmat.Vec3, tol float64) (int, bool) {
	rounded, dist := cand.Round()
	if dist <= tol {
		if j, ok := index[rounded]; ok {
			return j, true
		}
	}

	for j := 0; j < b.Active; j++ {
		if l1Dist(cand, b.G[j]) <= tol {
			return j, true
		}
	}

	return 0, false
}

func l1Dist(v latmat.Vec3, w latmat.Vec3i) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		d := v[i] - float64(w[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}

	return sum
}
