// SPDX-License-Identifier: MIT
//
// File: region.go
// Role: RegionExtractor — BFS shells around a ring, bounding the subsystem handed to
//       an Optimizer.

package core

import (
	"fmt"

	"github.com/katalvlaran/mx2/bfs"
)

// LocalRegion is the subsystem around a ring.
//
// Flexible units may move during optimisation; Fixed units form the boundary condition.
// Atoms of every unit are numbered densely in first-seen order (M atom first, then
// ligands): LocalToGlobal[i] is the network id of local atom i and GlobalToLocal inverts it.
// FixedAtoms lists the local indices of atoms first seen in the fixed shell.
type LocalRegion struct {
	Flexible      []int
	Fixed         []int
	LocalToGlobal []int
	GlobalToLocal map[int]int
	FixedAtoms    []int
}

// IsFixedAtom reports whether local atom i is held in place.
func (r *LocalRegion) IsFixedAtom(i int) bool {
	for _, f := range r.FixedAtoms {
		if f == i {
			return true
		}
	}

	return false
}

// FindLocalRegion expands BFS shells over the unit–unit graph from the units of ring.
// The ring's own units (shell 0) and the next shells expansions are flexible; the
// shell after them is fixed. shells == 0 therefore yields the ring's units as flexible
// and their direct neighbours as fixed.
//
// Complexity: O(V + E) over the reached part of the unit graph.
func (n *Network[P]) FindLocalRegion(ring, shells int) (*LocalRegion, error) {
	if !n.hasRing(ring) {
		return nil, fmt.Errorf("FindLocalRegion(%d): %w", ring, ErrRingNotFound)
	}
	if shells < 0 {
		return nil, fmt.Errorf("FindLocalRegion(%d): shells=%d: %w", ring, shells, ErrOptionViolation)
	}

	res, err := bfs.Shells(n.rings[ring].Units.IDs(), n.unitNeighbours, bfs.WithMaxDepth(shells+1))
	if err != nil {
		return nil, fmt.Errorf("FindLocalRegion(%d): %w", ring, err)
	}

	region := &LocalRegion{GlobalToLocal: make(map[int]int)}
	for depth := 0; depth <= shells; depth++ {
		region.Flexible = append(region.Flexible, res.Shell(depth)...)
	}
	region.Fixed = append(region.Fixed, res.Shell(shells+1)...)

	for _, u := range region.Flexible {
		n.registerUnitAtoms(region, u, false)
	}
	for _, u := range region.Fixed {
		n.registerUnitAtoms(region, u, true)
	}

	return region, nil
}

func (n *Network[P]) unitNeighbours(u int) ([]int, error) {
	if !n.hasUnit(u) {
		return nil, fmt.Errorf("unit %d: %w", u, ErrUnitNotFound)
	}

	return n.units[u].Units.ids, nil
}

func (n *Network[P]) registerUnitAtoms(region *LocalRegion, u int, fixed bool) {
	register := func(global int) {
		if _, seen := region.GlobalToLocal[global]; seen {
			return
		}
		local := len(region.LocalToGlobal)
		region.LocalToGlobal = append(region.LocalToGlobal, global)
		region.GlobalToLocal[global] = local
		if fixed {
			region.FixedAtoms = append(region.FixedAtoms, local)
		}
	}

	register(n.units[u].AtomM)
	for _, x := range n.units[u].AtomsX.ids {
		register(x)
	}
}
