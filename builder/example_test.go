package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mx2/builder"
)

// ExampleHoneycomb shows the size of a 2×2 honeycomb seed.
func ExampleHoneycomb() {
	n, err := builder.BuildNetwork(nil, builder.Honeycomb(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("atoms:", n.AtomCount(), "units:", n.UnitCount(), "rings:", n.RingCount())
	fmt.Println("boundary:", n.Boundary().Len())
	// Output:
	// atoms: 45 units: 16 rings: 4
	// boundary: 14
}

// ExampleRingBuilder_BuildRing grows a second hexagon on the bond 0–1 of a seed hexagon.
func ExampleRingBuilder_BuildRing() {
	n, err := builder.BuildNetwork(nil, builder.SingleRing(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ring, err := builder.NewRingBuilder().BuildRing(n, 6, []int{0, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b, err := n.CalculateBoundary()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ring:", ring, "units:", n.UnitCount(), "atoms:", n.AtomCount())
	fmt.Println("boundary:", b.Units)
	// Output:
	// ring: 1 units: 10 atoms: 29
	// boundary: [2 3 4 5 0 9 8 7 6 1]
}
