package bandrep_test

import (
	"fmt"

	"github.com/bandstruct/bandrep"
	"github.com/bandstruct/bandrep/corep"
	"github.com/bandstruct/bandrep/latmat"
	"github.com/bandstruct/bandrep/symmetry"
)

// Scenario:
//
//	Label three bands at the Z point, k = (0,0,½), of a crystal with a
//	twofold screw axis along z and time-reversal symmetry. The two
//	one-dimensional irreps Z1 and Z2 carry screw characters ∓i (the
//	translation phase of {C2z|00½}), and time reversal glues them into
//	a single co-representation, forcing all bands at this point to
//	stick in Kramers-like pairs of Z1/Z2 partners.
func ExampleEngine_Run() {
	wfs := &kpointSlice{points: []bandrep.KPointData{zKPoint()}}
	eng := bandrep.New(zOps(), wfs, tableFunc(
		func(latmat.Vec3, symmetry.LittleGroup) (corep.Table, error) { return zTable(), nil },
	))

	var col bandrep.Collector
	if err := eng.Run(&col); err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, res := range col.Results() {
		for _, asg := range res.Assignments {
			fmt.Printf("bands %v: %v\n", asg.Bands, asg.Labels)
		}
		tbl := zTable()
		for i, rel := range res.Relations {
			fmt.Printf("%s: %s with %s\n", tbl.Labels[i], rel.Kind, tbl.Labels[rel.Partner])
		}
	}
	// Output:
	// bands [0]: [Z1]
	// bands [1]: [Z1]
	// bands [2]: [Z2]
	// Z1: distinct-pair with Z2
	// Z2: distinct-pair with Z1
}
