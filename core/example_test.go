package core_test

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/core"
)

// ExampleNetwork_CalculateRingStatistics fits the Aboav–Weaire relation on a perfect
// honeycomb: every full ring is a hexagon with six hexagonal neighbours.
func ExampleNetwork_CalculateRingStatistics() {
	n, err := builder.BuildNetwork(nil, builder.Honeycomb(4, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st, err := n.CalculateRingStatistics()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	aw := st.AboavWeaire
	fmt.Printf("rings %d, mean size %.2f\n", st.Sizes.Total(), st.MeanRingSize())
	fmt.Printf("alpha %.2f, mu %.2f, rsq %.2f\n", aw.Alpha, aw.Mu, aw.RSquared)
	// Output:
	// rings 16, mean size 6.00
	// alpha 1.00, mu 0.00, rsq 1.00
}

// ExampleNetwork_BoundarySection lists the sections a growth step can choose from.
func ExampleNetwork_BoundarySection() {
	n, err := builder.BuildNetwork(nil, builder.TwoRings(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("boundary:", n.Boundary().Units)
	for _, start := range []int{5, 6} {
		fwd, _ := n.BoundarySection(start, true)
		back, _ := n.BoundarySection(start, false)
		fmt.Println(start, "forward:", fwd, "backward:", back)
	}
	// Output:
	// boundary: [2 3 4 5 0 6 7 8 9 1]
	// 5 forward: [5 0 6] backward: [5 4]
	// 6 forward: [6 7] backward: [6 0 5]
}

// ExampleNetwork_AddUnitUnitCnx shows the combined status of a two-sided link.
func ExampleNetwork_AddUnitUnitCnx() {
	n, _ := core.NewNetwork[v2.Vec]()
	for i := 0; i < 2; i++ {
		m := n.AddAtom(v2.Vec{X: float64(i)}, 3)
		_, _ = n.AddUnit(m)
	}
	first, _ := n.AddUnitUnitCnx(0, 1)
	again, _ := n.AddUnitUnitCnx(1, 0)
	fmt.Println(first, again)
	// Output:
	// ok duplicate
}
