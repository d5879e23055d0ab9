// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// faces.go — assembly of polygon faces into a network.

package builder

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/mx2/core"
)

// assembler carries the corner and side indices of one FromFaces call.
type assembler struct {
	n *core.Network[v2.Vec]

	corners []v2.Vec // unit id -> corner
	units   map[vertexKey]int
	sides   map[edgeKey]int // side -> first ring bordering it
	twice   map[edgeKey]bool
}

func assemble(faces [][]v2.Vec, nopts []core.Option) (*core.Network[v2.Vec], error) {
	if len(faces) == 0 {
		return nil, builderErrorf(methodFromFaces, ErrTooFewUnits, "no faces")
	}
	n, err := core.NewNetwork[v2.Vec](nopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromFaces, err)
	}

	a := &assembler{
		n:     n,
		units: make(map[vertexKey]int),
		sides: make(map[edgeKey]int),
		twice: make(map[edgeKey]bool),
	}
	for i, face := range faces {
		if err = a.addFace(i, face); err != nil {
			return nil, err
		}
	}
	if err = a.addDanglingLigands(); err != nil {
		return nil, err
	}
	if _, err = n.CalculateBoundary(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromFaces, err)
	}

	return n, nil
}

// addFace creates the ring of one face, its missing units and its missing sides.
func (a *assembler) addFace(index int, face []v2.Vec) error {
	if err := validateMin(methodFromFaces, fmt.Sprintf("face[%d] corners", index), len(face), MinRingSize); err != nil {
		return err
	}

	ids := make([]int, len(face))
	seen := make(map[int]bool, len(face))
	for i, p := range face {
		u, err := a.unitAt(p)
		if err != nil {
			return err
		}
		if seen[u] {
			return builderErrorf(methodFromFaces, ErrConstructFailed, "face[%d] repeats corner %v", index, p)
		}
		seen[u] = true
		ids[i] = u
	}

	ring := a.n.AddRing()
	for _, u := range ids {
		st, err := a.n.AddUnitRingCnx(u, ring)
		if err = checkCnx(methodFromFaces, fmt.Sprintf("AddUnitRingCnx(%d,%d)", u, ring), st, err); err != nil {
			return err
		}
	}

	for i, u := range ids {
		v := ids[(i+1)%len(ids)]
		if err := a.addSide(ring, u, v); err != nil {
			return err
		}
	}

	return nil
}

// unitAt returns the unit on corner p, creating it (and its M atom) on first sight.
func (a *assembler) unitAt(p v2.Vec) (int, error) {
	key := keyOf(p)
	if u, ok := a.units[key]; ok {
		return u, nil
	}
	m := a.n.AddAtom(p, unitMCoordination)
	u, err := a.n.AddUnit(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodFromFaces, err)
	}
	a.units[key] = u
	a.corners = append(a.corners, p)

	return u, nil
}

// addSide bridges u and v through a shared X atom the first time the side is seen,
// and links the two bordering rings the second time.
func (a *assembler) addSide(ring, u, v int) error {
	key := keyOfEdge(u, v)
	if first, ok := a.sides[key]; ok {
		if a.twice[key] {
			return builderErrorf(methodFromFaces, ErrConstructFailed, "side %d-%d borders three faces", u, v)
		}
		a.twice[key] = true
		st, err := a.n.AddRingRingCnx(first, ring)

		return checkCnx(methodFromFaces, fmt.Sprintf("AddRingRingCnx(%d,%d)", first, ring), st, err)
	}
	a.sides[key] = ring

	x := a.n.AddAtom(midpoint(a.corners[u], a.corners[v]), a.n.LigandCoordination())
	for _, w := range [2]int{u, v} {
		st, err := a.n.AddUnitAtomXCnx(w, x)
		if err = checkCnx(methodFromFaces, fmt.Sprintf("AddUnitAtomXCnx(%d,%d)", w, x), st, err); err != nil {
			return err
		}
	}
	st, err := a.n.AddUnitUnitCnx(u, v)

	return checkCnx(methodFromFaces, fmt.Sprintf("AddUnitUnitCnx(%d,%d)", u, v), st, err)
}

// addDanglingLigands fills every unit up to three ligands with free X atoms.
func (a *assembler) addDanglingLigands() error {
	free := a.n.LigandCoordination() - 1
	for u, p := range a.corners {
		unit, err := a.n.Unit(u)
		if err != nil {
			return fmt.Errorf("%s: %w", methodFromFaces, err)
		}
		missing := core.UnitLigands - unit.AtomsX.Len()
		if missing <= 0 {
			continue
		}

		var away v2.Vec
		reach := 0.0
		for _, v := range unit.Units.IDs() {
			d := a.corners[v].Sub(p)
			reach += d.Length()
			if dir, ok := direction(d); ok {
				away = away.Sub(dir)
			}
		}
		reach /= 2 * float64(unit.Units.Len())
		out, ok := direction(away)
		if !ok {
			out = v2.Vec{X: 1}
		}

		for _, dir := range spread(out, missing) {
			x := a.n.AddAtom(p.Add(dir.MulScalar(reach)), free)
			st, err := a.n.AddUnitAtomXCnx(u, x)
			if err = checkCnx(methodFromFaces, fmt.Sprintf("AddUnitAtomXCnx(%d,%d)", u, x), st, err); err != nil {
				return err
			}
		}
	}

	return nil
}

// spread returns k directions fanned symmetrically around out.
func spread(out v2.Vec, k int) []v2.Vec {
	if k == 1 {
		return []v2.Vec{out}
	}
	half := danglingSpread * math.Pi / 180 / 2
	dirs := make([]v2.Vec, k)
	for i := range dirs {
		t := -half + 2*half*float64(i)/float64(k-1)
		dirs[i] = rotate(out, t)
	}

	return dirs
}
