// SPDX-License-Identifier: MIT
//
// File: boundary.go
// Role: BoundaryTracer — ordered perimeter walk of the network and its sections.
//
// Walk:
//   - Seed: the lowest-id active unit, paired with an active neighbour (an edge
//     neighbour when no neighbour is active).
//   - Step: the next unit is an unvisited neighbour of the current one. An active
//     current unit has exactly one. An inactive one may have two; the tie is broken by
//     (1) edge unit over non-edge, (2) single-ring unit over multi-ring, (3) the
//     candidate sharing no ring with the current unit. Any tie left after that is an
//     error; the walk never guesses.
//   - Stop: when the start unit is reachable again and the walk holds ≥ 3 units.
//
// The visited set lives only for the duration of one CalculateBoundary call.

package core

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/samber/lo"
)

// minBoundaryLen is the shortest closed perimeter walk.
const minBoundaryLen = 3

// CalculateBoundary traces the perimeter, stores it on the network, refreshes every
// ring's Full flag and returns a copy.
//
// Errors:
//   - ErrNoActiveUnit if no unit is on the growth front.
//   - *BoundaryTraceError (wrapping ErrBoundaryAmbiguous) if the walk cannot continue.
//
// Complexity: O(U) for the seed scan plus O(L) steps of O(1) work, L = perimeter length.
func (n *Network[P]) CalculateBoundary() (Boundary, error) {
	start := -1
	for u := range n.units {
		if n.active(u) {
			start = u
			break
		}
	}
	if start < 0 {
		return Boundary{}, ErrNoActiveUnit
	}

	second := n.seedPartner(start)
	if second < 0 {
		return Boundary{}, &BoundaryTraceError{
			Path:    []int{start},
			Current: start,
			Reason:  "seed has no perimeter neighbour",
		}
	}

	visited := hashset.New(start, second)
	path := []int{start, second}
	for {
		next, err := n.nextBoundaryUnit(path, visited)
		if err != nil {
			return Boundary{}, err
		}
		if next == start {
			break
		}
		path = append(path, next)
		visited.Add(next)
	}

	status := make([]int, len(path))
	for i, u := range path {
		status[i] = InactiveStatus
		if n.active(u) {
			status[i] = n.frontLigand(u)
		}
	}
	n.boundary = Boundary{Units: path, Status: status}
	n.refreshFull()

	return n.boundary.clone(), nil
}

// Boundary returns a copy of the perimeter computed by the last CalculateBoundary.
func (n *Network[P]) Boundary() Boundary { return n.boundary.clone() }

// BoundarySection walks the stored perimeter from startID, forwards or backwards, and
// returns the units up to and including the next active one. The result holds at least
// two units. If no other unit is active the walk comes back to startID.
func (n *Network[P]) BoundarySection(startID int, forward bool) ([]int, error) {
	b := n.boundary
	at := -1
	for i, u := range b.Units {
		if u == startID {
			at = i
			break
		}
	}
	if at < 0 {
		return nil, fmt.Errorf("BoundarySection(%d): %w", startID, ErrNotOnBoundary)
	}

	step := 1
	if !forward {
		step = -1
	}
	size := b.Len()
	section := []int{startID}
	for k := 1; k <= size; k++ {
		j := ((at+step*k)%size + size) % size
		section = append(section, b.Units[j])
		if j == at || b.Active(j) {
			break
		}
	}

	return section, nil
}

// seedPartner picks the second unit of the walk.
func (n *Network[P]) seedPartner(start int) int {
	fallback := -1
	for _, v := range n.units[start].Units.ids {
		if n.active(v) {
			return v
		}
		if fallback < 0 && n.edge(v) {
			fallback = v
		}
	}

	return fallback
}

// nextBoundaryUnit applies the step rules to the last unit of path.
func (n *Network[P]) nextBoundaryUnit(path []int, visited *hashset.Set) (int, error) {
	start, cur := path[0], path[len(path)-1]
	nbrs := n.units[cur].Units.ids

	if len(path) >= minBoundaryLen && lo.Contains(nbrs, start) {
		return start, nil
	}

	cands := make([]int, 0, len(nbrs))
	for _, v := range nbrs {
		if !visited.Contains(v) {
			cands = append(cands, v)
		}
	}

	fail := func(reason string) (int, error) {
		return -1, &BoundaryTraceError{
			Path:       append([]int(nil), path...),
			Current:    cur,
			Candidates: cands,
			Reason:     reason,
		}
	}

	if n.active(cur) {
		if len(cands) != 1 {
			return fail(fmt.Sprintf("active unit with %d unvisited neighbours", len(cands)))
		}
		return cands[0], nil
	}

	switch len(cands) {
	case 0:
		return fail("dead end")
	case 1:
		return cands[0], nil
	case 2:
		next, ok, reason := n.breakTie(cur, cands[0], cands[1])
		if !ok {
			return fail(reason)
		}
		return next, nil
	default:
		return fail(fmt.Sprintf("%d unvisited neighbours", len(cands)))
	}
}

// breakTie chooses between two unvisited neighbours of an inactive unit.
func (n *Network[P]) breakTie(cur, a, b int) (int, bool, string) {
	if ea, eb := n.edge(a), n.edge(b); ea != eb {
		if ea {
			return a, true, ""
		}
		return b, true, ""
	}

	if sa, sb := n.units[a].Rings.Len() == 1, n.units[b].Rings.Len() == 1; sa != sb {
		if sa {
			return a, true, ""
		}
		return b, true, ""
	}

	curRings := n.units[cur].Rings.ids
	if len(curRings) > 2 {
		return -1, false, fmt.Sprintf("tie at unit in %d rings", len(curRings))
	}
	sharedA := len(lo.Intersect(curRings, n.units[a].Rings.ids))
	sharedB := len(lo.Intersect(curRings, n.units[b].Rings.ids))
	switch {
	case sharedA == 0 && sharedB != 0:
		return a, true, ""
	case sharedB == 0 && sharedA != 0:
		return b, true, ""
	}

	return -1, false, "unresolved tie"
}

// refreshFull marks every ring with no unit on the stored perimeter as full.
func (n *Network[P]) refreshFull() {
	onBoundary := make(map[int]struct{}, len(n.boundary.Units))
	for _, u := range n.boundary.Units {
		onBoundary[u] = struct{}{}
	}
	for r := range n.rings {
		full := true
		for _, u := range n.rings[r].Units.ids {
			if _, ok := onBoundary[u]; ok {
				full = false
				break
			}
		}
		if n.rings[r].Full != full {
			n.touchRing(r)
			n.rings[r].Full = full
		}
	}
}

func (b Boundary) clone() Boundary {
	return Boundary{
		Units:  append([]int(nil), b.Units...),
		Status: append([]int(nil), b.Status...),
	}
}
