package latmat

import "fmt"

// Inverse computes the exact integer inverse of a lattice rotation.
//
// Algorithm:
//  1. Determinant by cofactor expansion; zero → ErrSingular.
//  2. Adjugate; every entry must be divisible by the determinant,
//     otherwise the input was not unimodular → ErrNonIntegerInverse.
//  3. Verify inv·m == identity → ErrInverseMismatch on failure.
//
// The verification step never fires for inputs that pass step 2; it is a
// guard against internal arithmetic faults, kept cheap at 27 multiplies.
//
// Complexity: O(1) (fixed 3×3 size). Pure function.
func Inverse(m Mat3i) (Mat3i, error) {
	det := m.Det()
	if det == 0 {
		return Mat3i{}, ErrSingular
	}

	adj := adjugate(m)

	var inv Mat3i
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if adj[i][j]%det != 0 {
				return Mat3i{}, fmt.Errorf("entry (%d,%d) with det %d: %w", i, j, det, ErrNonIntegerInverse)
			}
			inv[i][j] = adj[i][j] / det
		}
	}

	if !inv.Mul(m).IsIdentity() {
		return Mat3i{}, ErrInverseMismatch
	}

	return inv, nil
}

// adjugate returns the transposed cofactor matrix of m, so that
// m·adj(m) == det(m)·I holds exactly in integer arithmetic.
func adjugate(m Mat3i) Mat3i {
	var adj Mat3i
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// Cofactor of entry (j,i): minor with row j and column i removed.
			r0, r1 := (j+1)%3, (j+2)%3
			c0, c1 := (i+1)%3, (i+2)%3
			adj[i][j] = m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
		}
	}

	return adj
}
