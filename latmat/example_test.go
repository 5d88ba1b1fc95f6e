package latmat_test

import (
	"fmt"

	"github.com/bandstruct/bandrep/latmat"
)

// Scenario:
//
//	Invert the threefold rotation of a hexagonal lattice, written in the
//	lattice (fractional) basis. The inverse of a unimodular rotation is
//	again an integer matrix, and composing the two gives the identity
//	exactly, with no tolerance involved.
func ExampleInverse() {
	c3 := latmat.Mat3i{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}

	inv, err := latmat.Inverse(c3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(inv)
	fmt.Println(inv.Mul(c3) == latmat.Identity())
	// Output:
	// [[-1 1 0] [-1 0 0] [0 0 1]]
	// true
}

// Scenario:
//
//	A matrix with determinant 2 is a valid integer matrix but not a
//	lattice rotation; its inverse is not integral and Inverse refuses it.
func ExampleInverse_nonUnimodular() {
	m := latmat.Mat3i{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	if _, err := latmat.Inverse(m); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: entry (0,0) with det 2: latmat: inverse is not integral
}
