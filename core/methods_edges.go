// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: ConnectivityManager — two-sided Add*Cnx, one-sided Del*Cnx, and the
//       growth-front predicates CheckActiveUnit / CheckEdgeUnit.
// Policy:
//   - Add*Cnx writes both directions and ORs the two Status values.
//   - Del*Cnx removes one direction only; reverse removal is the caller's job.
//   - Unknown ids return wrapped Err*NotFound and leave the network unchanged.

package core

import "fmt"

// AddUnitUnitCnx links units a and b in both directions.
func (n *Network[P]) AddUnitUnitCnx(a, b int) (Status, error) {
	if !n.hasUnit(a) || !n.hasUnit(b) {
		return StatusOK, fmt.Errorf("AddUnitUnitCnx(%d,%d): %w", a, b, ErrUnitNotFound)
	}
	n.touchUnit(a)
	n.touchUnit(b)

	return n.units[a].Units.Add(b) | n.units[b].Units.Add(a), nil
}

// AddUnitRingCnx records unit u as a member of ring r and r as a ring of u.
// Ring membership order is the order of the calls.
func (n *Network[P]) AddUnitRingCnx(u, r int) (Status, error) {
	if !n.hasUnit(u) {
		return StatusOK, fmt.Errorf("AddUnitRingCnx(%d,%d): %w", u, r, ErrUnitNotFound)
	}
	if !n.hasRing(r) {
		return StatusOK, fmt.Errorf("AddUnitRingCnx(%d,%d): %w", u, r, ErrRingNotFound)
	}
	n.touchUnit(u)
	n.touchRing(r)

	return n.units[u].Rings.Add(r) | n.rings[r].Units.Add(u), nil
}

// AddRingRingCnx links rings a and b in both directions.
func (n *Network[P]) AddRingRingCnx(a, b int) (Status, error) {
	if !n.hasRing(a) || !n.hasRing(b) {
		return StatusOK, fmt.Errorf("AddRingRingCnx(%d,%d): %w", a, b, ErrRingNotFound)
	}
	n.touchRing(a)
	n.touchRing(b)

	return n.rings[a].Rings.Add(b) | n.rings[b].Rings.Add(a), nil
}

// AddUnitAtomXCnx registers atom x as a ligand of unit u. Atoms keep no back-reference.
func (n *Network[P]) AddUnitAtomXCnx(u, x int) (Status, error) {
	if !n.hasUnit(u) {
		return StatusOK, fmt.Errorf("AddUnitAtomXCnx(%d,%d): %w", u, x, ErrUnitNotFound)
	}
	if !n.hasAtom(x) {
		return StatusOK, fmt.Errorf("AddUnitAtomXCnx(%d,%d): %w", u, x, ErrAtomNotFound)
	}
	n.touchUnit(u)

	return n.units[u].AtomsX.Add(x), nil
}

// DelUnitUnitCnx removes b from the neighbours of a.
func (n *Network[P]) DelUnitUnitCnx(a, b int) error {
	if !n.hasUnit(a) {
		return fmt.Errorf("DelUnitUnitCnx(%d,%d): %w", a, b, ErrUnitNotFound)
	}
	n.touchUnit(a)
	n.units[a].Units.Del(b)

	return nil
}

// DelUnitRingCnx removes ring r from the rings of unit u.
func (n *Network[P]) DelUnitRingCnx(u, r int) error {
	if !n.hasUnit(u) {
		return fmt.Errorf("DelUnitRingCnx(%d,%d): %w", u, r, ErrUnitNotFound)
	}
	n.touchUnit(u)
	n.units[u].Rings.Del(r)

	return nil
}

// DelRingUnitCnx removes unit u from the members of ring r.
func (n *Network[P]) DelRingUnitCnx(r, u int) error {
	if !n.hasRing(r) {
		return fmt.Errorf("DelRingUnitCnx(%d,%d): %w", r, u, ErrRingNotFound)
	}
	n.touchRing(r)
	n.rings[r].Units.Del(u)

	return nil
}

// DelRingRingCnx removes b from the neighbours of ring a.
func (n *Network[P]) DelRingRingCnx(a, b int) error {
	if !n.hasRing(a) {
		return fmt.Errorf("DelRingRingCnx(%d,%d): %w", a, b, ErrRingNotFound)
	}
	n.touchRing(a)
	n.rings[a].Rings.Del(b)

	return nil
}

// DelUnitAtomXCnx removes ligand x from unit u.
func (n *Network[P]) DelUnitAtomXCnx(u, x int) error {
	if !n.hasUnit(u) {
		return fmt.Errorf("DelUnitAtomXCnx(%d,%d): %w", u, x, ErrUnitNotFound)
	}
	n.touchUnit(u)
	n.units[u].AtomsX.Del(x)

	return nil
}

// CheckActiveUnit reports whether the ligand coordination sum of unit u is below threshold.
// Active units sit on the growth front.
func (n *Network[P]) CheckActiveUnit(u, threshold int) (bool, error) {
	if !n.hasUnit(u) {
		return false, fmt.Errorf("CheckActiveUnit(%d): %w", u, ErrUnitNotFound)
	}

	return n.ligandCoordination(u) < threshold, nil
}

// CheckEdgeUnit reports whether unit u belongs to fewer than threshold rings.
// Edge units sit on the perimeter.
func (n *Network[P]) CheckEdgeUnit(u, threshold int) (bool, error) {
	if !n.hasUnit(u) {
		return false, fmt.Errorf("CheckEdgeUnit(%d): %w", u, ErrUnitNotFound)
	}

	return n.units[u].Rings.Len() < threshold, nil
}

// IsActive is CheckActiveUnit with the configured threshold.
func (n *Network[P]) IsActive(u int) (bool, error) {
	return n.CheckActiveUnit(u, n.opts.activeThreshold)
}

// IsEdge is CheckEdgeUnit with the configured threshold.
func (n *Network[P]) IsEdge(u int) (bool, error) {
	return n.CheckEdgeUnit(u, n.opts.edgeThreshold)
}

// UndercoordinatedLigand returns the first ligand of u whose coordination is below the
// fully bridged value, or InactiveStatus.
func (n *Network[P]) UndercoordinatedLigand(u int) (int, error) {
	if !n.hasUnit(u) {
		return InactiveStatus, fmt.Errorf("UndercoordinatedLigand(%d): %w", u, ErrUnitNotFound)
	}

	return n.undercoordinatedLigand(u), nil
}

func (n *Network[P]) ligandCoordination(u int) int {
	sum := 0
	for _, x := range n.units[u].AtomsX.ids {
		sum += n.atoms[x].Coordination
	}

	return sum
}

func (n *Network[P]) undercoordinatedLigand(u int) int {
	for _, x := range n.units[u].AtomsX.ids {
		if n.atoms[x].Coordination < n.opts.ligandCoordination {
			return x
		}
	}

	return InactiveStatus
}

// frontLigand is the ligand a new ring bonds to at active unit u: the first
// undercoordinated one, else the least coordinated one. Only a unit without ligands
// yields InactiveStatus.
func (n *Network[P]) frontLigand(u int) int {
	if x := n.undercoordinatedLigand(u); x != InactiveStatus {
		return x
	}
	best := InactiveStatus
	for _, x := range n.units[u].AtomsX.ids {
		if best == InactiveStatus || n.atoms[x].Coordination < n.atoms[best].Coordination {
			best = x
		}
	}

	return best
}

func (n *Network[P]) active(u int) bool {
	return n.ligandCoordination(u) < n.opts.activeThreshold
}

func (n *Network[P]) edge(u int) bool {
	return n.units[u].Rings.Len() < n.opts.edgeThreshold
}
