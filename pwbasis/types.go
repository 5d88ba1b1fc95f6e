package pwbasis

import (
	"math"

	"github.com/bandstruct/bandrep/latmat"
)

// Basis is the plane-wave basis at one wavevector. G may hold more entries
// than are populated for this k-point (reserved capacity); Active bounds
// the valid prefix. The basis must be symmetry-complete under the little
// group, which callers typically ensure by over-allocating G with a
// superset of the point's own plane waves.
type Basis struct {
	K      latmat.Vec3
	G      []latmat.Vec3i
	Active int
}

// Action is the symmetry action of a little group's unitary operations on
// one basis. All slices are indexed positionally by operation, aligned
// with the operation list given to Setup.
//
// Perm[r][j] is the active index j′ whose G-vector equals the inverse
// rotation of k+G[j] minus k; Phase[r][j] is the accompanying per-basis
// phase factor; KPhase[r] is the basis-independent translation phase of
// the operation. The k-phase is kept separate from the per-basis phases
// so character computation stays convention-pure (it is recombined once
// the reference table order is known).
type Action struct {
	KPhase []complex128
	Phase  [][]complex128
	Perm   [][]int
}

// Ops returns the number of operations the action covers.
func (a *Action) Ops() int { return len(a.Perm) }

const twoPi = 2 * math.Pi

// phaseExp returns exp(−2πi·x).
func phaseExp(x float64) complex128 {
	s, c := math.Sincos(-twoPi * x)

	return complex(c, s)
}
