// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// ring_builder.go — reference core.RingBuilder for planar v2 networks.
//
// Contract:
//   • path = u0..um is a boundary section: u0 and um are active, interior units are not.
//   • The new ring is u0..um followed by k = size-(m+1) ≥ 1 new units n1..nk, so that
//     um–n1, n(i)–n(i+1) and nk–u0 are the new bonds.
//   • um and u0 give up their free ligand to bridge to n1 and nk; new sides get a fresh
//     bridging X; each new unit gets one free X pointing away from the ring.
//   • The new ring borders every ring that owns a side of the path.
//   • Only public core mutators are used, so a growth transaction can roll it all back.
//
// Complexity: O(size) atoms and links.

package builder

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/plan-systems/klog"
	"github.com/samber/lo"

	"github.com/katalvlaran/mx2/core"
)

// RingBuilder places new units on an arc outside the boundary path. Exact positions are
// left to the optimiser; the arc only keeps atoms apart. The zero value is ready to use.
type RingBuilder struct{}

var _ core.RingBuilder[v2.Vec] = RingBuilder{}

// NewRingBuilder returns a RingBuilder.
func NewRingBuilder() RingBuilder { return RingBuilder{} }

// endpoint is a path end giving up its free ligand.
type endpoint struct {
	unit   int
	m, x   v2.Vec // M atom and free ligand positions
	ligand int
}

// BuildRing implements core.RingBuilder.
//
// Errors:
//   - ErrBadPath if path has fewer than MinPathUnits units or starts and ends on one unit.
//   - ErrRingTooSmall if size leaves no new unit or exceeds the ring capacity.
//   - ErrNoFreeLigand if an endpoint has no undercoordinated ligand.
//   - ErrConstructFailed if a link would overflow or duplicate.
func (RingBuilder) BuildRing(n *core.Network[v2.Vec], size int, path []int) (int, error) {
	if len(path) < MinPathUnits {
		return 0, builderErrorf(methodBuildRing, ErrBadPath, "path %v has fewer than %d units", path, MinPathUnits)
	}
	if path[0] == path[len(path)-1] {
		return 0, builderErrorf(methodBuildRing, ErrBadPath, "path %v is closed", path)
	}
	k := size - len(path)
	if k < 1 || size > n.RingCapacity() {
		return 0, builderErrorf(methodBuildRing, ErrRingTooSmall, "size=%d on a %d-unit path (capacity %d)",
			size, len(path), n.RingCapacity())
	}

	head, err := freeEnd(n, path[0])
	if err != nil {
		return 0, err
	}
	tail, err := freeEnd(n, path[len(path)-1])
	if err != nil {
		return 0, err
	}

	// Rings owning a side of the path, gathered before the new ring exists.
	var borders []int
	for i := 0; i+1 < len(path); i++ {
		a, errA := n.Unit(path[i])
		b, errB := n.Unit(path[i+1])
		if errA != nil || errB != nil {
			return 0, builderErrorf(methodBuildRing, ErrBadPath, "path %v: unit %d or %d", path, path[i], path[i+1])
		}
		borders = append(borders, lo.Intersect(a.Rings.IDs(), b.Rings.IDs())...)
	}
	borders = lo.Uniq(borders)

	pathCoords := make([]v2.Vec, 0, size)
	for _, u := range path {
		unit, _ := n.Unit(u)
		atom, _ := n.Atom(unit.AtomM)
		pathCoords = append(pathCoords, atom.Coord)
	}
	spots := arc(tail, head, k)
	centre := centroid(append(pathCoords, spots...))
	bond := tail.x.Sub(tail.m).Length() + head.x.Sub(head.m).Length()

	// New units in ring order n1..nk.
	fresh := make([]int, k)
	for i, p := range spots {
		m := n.AddAtom(p, unitMCoordination)
		if fresh[i], err = n.AddUnit(m); err != nil {
			return 0, fmt.Errorf("%s: %w", methodBuildRing, err)
		}
	}

	ring := n.AddRing()
	for _, u := range append(append([]int(nil), path...), fresh...) {
		st, err := n.AddUnitRingCnx(u, ring)
		if err = checkCnx(methodBuildRing, fmt.Sprintf("AddUnitRingCnx(%d,%d)", u, ring), st, err); err != nil {
			return 0, err
		}
	}

	coordination := n.LigandCoordination()
	if err = bridge(n, tail.unit, fresh[0], tail.ligand, coordination); err != nil {
		return 0, err
	}
	for i := 0; i+1 < k; i++ {
		x := n.AddAtom(midpoint(spots[i], spots[i+1]), coordination)
		if err = link(n, fresh[i], fresh[i+1], x); err != nil {
			return 0, err
		}
	}
	if err = bridge(n, head.unit, fresh[k-1], head.ligand, coordination); err != nil {
		return 0, err
	}

	for i, u := range fresh {
		out, ok := direction(spots[i].Sub(centre))
		if !ok {
			out = perpendicular(head.x.Sub(tail.x))
		}
		x := n.AddAtom(spots[i].Add(out.MulScalar(bond/2)), coordination-1)
		st, err := n.AddUnitAtomXCnx(u, x)
		if err = checkCnx(methodBuildRing, fmt.Sprintf("AddUnitAtomXCnx(%d,%d)", u, x), st, err); err != nil {
			return 0, err
		}
	}

	for _, r := range borders {
		st, err := n.AddRingRingCnx(r, ring)
		if err = checkCnx(methodBuildRing, fmt.Sprintf("AddRingRingCnx(%d,%d)", r, ring), st, err); err != nil {
			return 0, err
		}
	}

	klog.V(3).Infof("built ring %d size=%d on path %v with %d new units", ring, size, path, k)

	return ring, nil
}

// freeEnd resolves the free ligand of path endpoint u.
func freeEnd(n *core.Network[v2.Vec], u int) (endpoint, error) {
	x, err := n.UndercoordinatedLigand(u)
	if err != nil {
		return endpoint{}, builderErrorf(methodBuildRing, ErrBadPath, "endpoint %d: %v", u, err)
	}
	if x == core.InactiveStatus {
		return endpoint{}, builderErrorf(methodBuildRing, ErrNoFreeLigand, "endpoint %d", u)
	}
	unit, _ := n.Unit(u)
	m, _ := n.Atom(unit.AtomM)
	lig, _ := n.Atom(x)

	return endpoint{unit: u, m: m.Coord, x: lig.Coord, ligand: x}, nil
}

// bridge turns the free ligand x of old into a bridge to the new unit fresh.
func bridge(n *core.Network[v2.Vec], old, fresh, x, coordination int) error {
	if err := n.SetAtomCoordination(x, coordination); err != nil {
		return fmt.Errorf("%s: %w", methodBuildRing, err)
	}

	return link(n, old, fresh, x)
}

// link registers x as a ligand of fresh (and of old when it does not own it yet) and
// bridges the two units.
func link(n *core.Network[v2.Vec], old, fresh, x int) error {
	unit, err := n.Unit(old)
	if err != nil {
		return fmt.Errorf("%s: %w", methodBuildRing, err)
	}
	owners := []int{fresh}
	if !unit.AtomsX.Contains(x) {
		owners = append(owners, old)
	}
	for _, u := range owners {
		st, err := n.AddUnitAtomXCnx(u, x)
		if err = checkCnx(methodBuildRing, fmt.Sprintf("AddUnitAtomXCnx(%d,%d)", u, x), st, err); err != nil {
			return err
		}
	}
	st, err := n.AddUnitUnitCnx(old, fresh)

	return checkCnx(methodBuildRing, fmt.Sprintf("AddUnitUnitCnx(%d,%d)", old, fresh), st, err)
}

// arc returns k positions from just beyond tail's free ligand to just beyond head's,
// bowed outwards so that consecutive positions are roughly one bond apart.
func arc(tail, head endpoint, k int) []v2.Vec {
	first := tail.m.Add(tail.x.Sub(tail.m).MulScalar(2))
	last := head.m.Add(head.x.Sub(head.m).MulScalar(2))
	if k == 1 {
		return []v2.Vec{midpoint(first, last)}
	}

	bond := tail.x.Sub(tail.m).Length() + head.x.Sub(head.m).Length()
	span := float64(k-1) * bond
	if last.Sub(first).Length() < bond/2 {
		// The two ends meet: open them up along the tail-to-head direction.
		along, ok := direction(head.m.Sub(tail.m))
		if !ok {
			along = v2.Vec{X: 1}
		}
		mid := midpoint(first, last)
		first = mid.Sub(along.MulScalar(span / 2))
		last = mid.Add(along.MulScalar(span / 2))
	}

	chord := last.Sub(first)
	out, ok := direction(tail.x.Sub(tail.m).Add(head.x.Sub(head.m)))
	if !ok {
		out, _ = direction(perpendicular(chord))
	}
	bow := 0.0
	if c := chord.Length(); span > c {
		bow = math.Sqrt(span*span-c*c) / 2
	}

	spots := make([]v2.Vec, k)
	for i := range spots {
		t := float64(i) / float64(k-1)
		spots[i] = first.Add(chord.MulScalar(t)).Add(out.MulScalar(bow * math.Sin(math.Pi*t)))
	}

	return spots
}
