package symmetry

import (
	"fmt"

	"github.com/bandstruct/bandrep/latmat"
)

// FindLittleGroup filters ops down to the little group of k.
//
// For each operation the wavevector is transformed with the inverse
// rotation; antiunitary operations additionally negate the result
// (time-reversal conjugation). The operation belongs to the little group
// iff transformed − k is integral within the tolerance
// (DefaultKTolerance unless overridden via WithTolerance).
//
// Output preserves input ordering; unitary and antiunitary members are
// additionally collected into separate ordered subsets retaining their
// global indices. The only failure mode is a malformed rotation, which
// surfaces the latmat inversion error wrapped with the operation index.
//
// Complexity: O(len(ops)). Pure function, no retained state.
func FindLittleGroup(ops []Operation, k latmat.Vec3, opts ...Option) (LittleGroup, error) {
	o := gatherOptions(opts...)

	lg := LittleGroup{K: k}
	for idx, op := range ops {
		inv, err := latmat.Inverse(op.Rot)
		if err != nil {
			return LittleGroup{}, fmt.Errorf("operation %d: %w", idx, err)
		}

		kt := inv.MulVec(k)
		if op.TimeReversal {
			kt = kt.Neg()
		}
		if !kt.Sub(k).IsIntegral(o.tol) {
			continue
		}

		lg.Members = append(lg.Members, idx)
		if op.TimeReversal {
			lg.Antiunitary = append(lg.Antiunitary, idx)
		} else {
			lg.Unitary = append(lg.Unitary, idx)
		}
	}

	return lg, nil
}
