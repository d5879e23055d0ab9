// SPDX-License-Identifier: MIT
//
// File: methods_entities.go
// Role: EntityStore — append / pop-last containers for atoms, units and rings,
//       read accessors returning defensive copies, and journaled scalar mutators.
// Policy:
//   - Ids are positions; only the last entity may be removed.
//   - Every mutation of an entity that existed when a growth transaction opened
//     records the entity's pre-image first (see growth.go).

package core

import "fmt"

// AtomCount returns the number of atoms.
func (n *Network[P]) AtomCount() int { return len(n.atoms) }

// UnitCount returns the number of units.
func (n *Network[P]) UnitCount() int { return len(n.units) }

// RingCount returns the number of rings.
func (n *Network[P]) RingCount() int { return len(n.rings) }

// Energy returns the energy reported by the last accepted optimisation.
func (n *Network[P]) Energy() float64 { return n.energy }

// Iterations returns the iteration count reported by the last accepted optimisation.
func (n *Network[P]) Iterations() int { return n.iterations }

// RingCapacity returns the configured bound on ring size.
func (n *Network[P]) RingCapacity() int { return n.opts.ringCapacity }

// LigandCoordination returns the coordination of a fully bridged X atom.
func (n *Network[P]) LigandCoordination() int { return n.opts.ligandCoordination }

// AddAtom appends an atom and returns its id.
func (n *Network[P]) AddAtom(coord P, coordination int) int {
	id := len(n.atoms)
	n.atoms = append(n.atoms, Atom[P]{ID: id, Coord: coord, Coordination: coordination})

	return id
}

// AddUnit appends a unit owning the central atom atomM and returns its id.
func (n *Network[P]) AddUnit(atomM int) (int, error) {
	if !n.hasAtom(atomM) {
		return 0, fmt.Errorf("AddUnit(M=%d): %w", atomM, ErrAtomNotFound)
	}
	id := len(n.units)
	n.units = append(n.units, Unit{
		ID:     id,
		AtomM:  atomM,
		AtomsX: NewAdjacencyList(UnitLigands),
		Units:  NewAdjacencyList(UnitNeighbours),
		Rings:  NewAdjacencyList(UnitRings),
	})

	return id, nil
}

// AddRing appends an empty ring and returns its id.
func (n *Network[P]) AddRing() int {
	id := len(n.rings)
	n.rings = append(n.rings, Ring{
		ID:    id,
		Units: NewAdjacencyList(n.opts.ringCapacity),
		Rings: NewAdjacencyList(n.opts.ringCapacity),
	})

	return id
}

// DelAtom removes the most recently added atom.
func (n *Network[P]) DelAtom() error {
	last := len(n.atoms) - 1
	if last < 0 {
		return fmt.Errorf("DelAtom: %w", ErrEmptyStore)
	}
	n.touchAtom(last)
	n.atoms = n.atoms[:last]

	return nil
}

// DelUnit removes the most recently added unit.
func (n *Network[P]) DelUnit() error {
	last := len(n.units) - 1
	if last < 0 {
		return fmt.Errorf("DelUnit: %w", ErrEmptyStore)
	}
	n.touchUnit(last)
	n.units = n.units[:last]

	return nil
}

// DelRing removes the most recently added ring.
func (n *Network[P]) DelRing() error {
	last := len(n.rings) - 1
	if last < 0 {
		return fmt.Errorf("DelRing: %w", ErrEmptyStore)
	}
	n.touchRing(last)
	n.rings = n.rings[:last]

	return nil
}

// Atom returns a copy of atom id.
func (n *Network[P]) Atom(id int) (Atom[P], error) {
	if !n.hasAtom(id) {
		return Atom[P]{}, fmt.Errorf("Atom(%d): %w", id, ErrAtomNotFound)
	}

	return n.atoms[id], nil
}

// Unit returns a deep copy of unit id.
func (n *Network[P]) Unit(id int) (Unit, error) {
	if !n.hasUnit(id) {
		return Unit{}, fmt.Errorf("Unit(%d): %w", id, ErrUnitNotFound)
	}

	return n.units[id].clone(), nil
}

// Ring returns a deep copy of ring id.
func (n *Network[P]) Ring(id int) (Ring, error) {
	if !n.hasRing(id) {
		return Ring{}, fmt.Errorf("Ring(%d): %w", id, ErrRingNotFound)
	}

	return n.rings[id].clone(), nil
}

// SetAtomCoord moves atom id.
func (n *Network[P]) SetAtomCoord(id int, coord P) error {
	if !n.hasAtom(id) {
		return fmt.Errorf("SetAtomCoord(%d): %w", id, ErrAtomNotFound)
	}
	n.touchAtom(id)
	n.atoms[id].Coord = coord

	return nil
}

// SetAtomCoordination overwrites the bond count of atom id.
func (n *Network[P]) SetAtomCoordination(id, coordination int) error {
	if !n.hasAtom(id) {
		return fmt.Errorf("SetAtomCoordination(%d): %w", id, ErrAtomNotFound)
	}
	n.touchAtom(id)
	n.atoms[id].Coordination = coordination

	return nil
}

// SetRingFull overwrites the interior flag of ring id. CalculateBoundary recomputes
// the flag for every ring; this setter exists for networks without a perimeter.
func (n *Network[P]) SetRingFull(id int, full bool) error {
	if !n.hasRing(id) {
		return fmt.Errorf("SetRingFull(%d): %w", id, ErrRingNotFound)
	}
	n.touchRing(id)
	n.rings[id].Full = full

	return nil
}

func (n *Network[P]) hasAtom(id int) bool { return id >= 0 && id < len(n.atoms) }
func (n *Network[P]) hasUnit(id int) bool { return id >= 0 && id < len(n.units) }
func (n *Network[P]) hasRing(id int) bool { return id >= 0 && id < len(n.rings) }

func (u Unit) clone() Unit {
	u.AtomsX = u.AtomsX.Clone()
	u.Units = u.Units.Clone()
	u.Rings = u.Rings.Clone()

	return u
}

func (r Ring) clone() Ring {
	r.Units = r.Units.Clone()
	r.Rings = r.Rings.Clone()

	return r
}
