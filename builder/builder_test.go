// File: builder_test.go
// Package builder_test verifies seed topologies, assembly errors and options.
package builder_test

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/core"
)

// build is BuildNetwork with no builder options.
func build(t *testing.T, cons ...builder.Constructor) *core.Network[v2.Vec] {
	t.Helper()
	n, err := builder.BuildNetwork(nil, cons...)
	require.NoError(t, err)

	return n
}

// requireWellFormed checks the structural invariants every assembled network shares.
func requireWellFormed(t *testing.T, n *core.Network[v2.Vec]) {
	t.Helper()
	for u := 0; u < n.UnitCount(); u++ {
		unit, err := n.Unit(u)
		require.NoError(t, err)
		require.Equal(t, core.UnitLigands, unit.AtomsX.Len(), "unit %d ligands", u)
		for _, v := range unit.Units.IDs() {
			other, err := n.Unit(v)
			require.NoError(t, err)
			require.True(t, other.Units.Contains(u), "unit link %d-%d not symmetric", u, v)
		}
		for _, r := range unit.Rings.IDs() {
			ring, err := n.Ring(r)
			require.NoError(t, err)
			require.True(t, ring.Units.Contains(u), "unit %d missing from ring %d", u, r)
		}
	}
	for r := 0; r < n.RingCount(); r++ {
		ring, err := n.Ring(r)
		require.NoError(t, err)
		for _, s := range ring.Rings.IDs() {
			other, err := n.Ring(s)
			require.NoError(t, err)
			require.True(t, other.Rings.Contains(r), "ring link %d-%d not symmetric", r, s)
		}
	}
	require.True(t, n.CheckGeometry())
}

func TestSeeds_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                        string
		ctor                        builder.Constructor
		atoms, units, rings         int
		boundaryLen, activeOnBorder int
	}{
		{"SingleRing(3)", builder.SingleRing(3), 9, 3, 1, 3, 3},
		{"SingleRing(6)", builder.SingleRing(6), 18, 6, 1, 6, 6},
		{"TwoRings(4)", builder.TwoRings(4), 17, 6, 2, 6, 4},
		{"TwoRings(6)", builder.TwoRings(6), 29, 10, 2, 10, 8},
		{"Honeycomb(1,1)", builder.Honeycomb(1, 1), 18, 6, 1, 6, 6},
		{"Honeycomb(1,3)", builder.Honeycomb(1, 3), 40, 14, 3, 14, 10},
		{"Honeycomb(2,2)", builder.Honeycomb(2, 2), 45, 16, 4, 14, 10},
		{"Honeycomb(3,3)", builder.Honeycomb(3, 3), 82, 30, 9, 22, 14},
		{"Honeycomb(4,4)", builder.Honeycomb(4, 4), 129, 48, 16, 30, 18},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n := build(t, tc.ctor)
			assert.Equal(t, tc.atoms, n.AtomCount())
			assert.Equal(t, tc.units, n.UnitCount())
			assert.Equal(t, tc.rings, n.RingCount())

			b := n.Boundary()
			require.Equal(t, tc.boundaryLen, b.Len())
			active := 0
			for i := 0; i < b.Len(); i++ {
				if b.Active(i) {
					active++
				}
			}
			assert.Equal(t, tc.activeOnBorder, active)
			requireWellFormed(t, n)
		})
	}
}

func TestHoneycomb_InteriorRingsAreFull(t *testing.T) {
	n := build(t, builder.Honeycomb(4, 4))

	var full []int
	for r := 0; r < n.RingCount(); r++ {
		ring, err := n.Ring(r)
		require.NoError(t, err)
		if ring.Full {
			full = append(full, r)
			assert.Equal(t, 6, ring.Rings.Len(), "interior ring %d neighbours", r)
		}
	}
	assert.Equal(t, []int{5, 6, 9, 10}, full)
}

func TestSingleRing_Layout(t *testing.T) {
	n, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithBondLength(2),
		builder.WithOrigin(v2.Vec{X: 10, Y: -3}),
	}, builder.SingleRing(6))
	require.NoError(t, err)

	// Corners first (ids 0..5), then one bridge per side, then one free ligand per unit.
	b := n.Boundary()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, b.Units)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17}, b.Status)

	u0, err := n.Unit(0)
	require.NoError(t, err)
	u1, err := n.Unit(1)
	require.NoError(t, err)
	m0, _ := n.Atom(u0.AtomM)
	m1, _ := n.Atom(u1.AtomM)
	assert.InDelta(t, 2.0, m1.Coord.Sub(m0.Coord).Length(), 1e-9)
	assert.Equal(t, 3, m0.Coordination)

	for _, x := range u0.AtomsX.IDs() {
		lig, _ := n.Atom(x)
		assert.InDelta(t, 1.0, lig.Coord.Sub(m0.Coord).Length(), 1e-9, "M–X length of ligand %d", x)
	}
	free, _ := n.Atom(12)
	assert.Equal(t, 1, free.Coordination)
	bridge, _ := n.Atom(6)
	assert.Equal(t, 2, bridge.Coordination)

	// The seed is a hexagon of side 2 around the origin option.
	var c v2.Vec
	for u := 0; u < n.UnitCount(); u++ {
		unit, _ := n.Unit(u)
		m, _ := n.Atom(unit.AtomM)
		c = c.Add(m.Coord)
	}
	c = c.MulScalar(1.0 / float64(n.UnitCount()))
	assert.InDelta(t, 10, c.X, 1e-9)
	assert.InDelta(t, -3, c.Y, 1e-9)
}

func TestTwoRings_SharedSide(t *testing.T) {
	n := build(t, builder.TwoRings(6))

	r0, err := n.Ring(0)
	require.NoError(t, err)
	r1, err := n.Ring(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, r0.Rings.IDs())
	assert.Equal(t, []int{0}, r1.Rings.IDs())

	shared := 0
	for _, u := range r0.Units.IDs() {
		if r1.Units.Contains(u) {
			shared++
			unit, _ := n.Unit(u)
			assert.Equal(t, 2, unit.Rings.Len())
			assert.Equal(t, 3, unit.Units.Len())
			active, err := n.IsActive(u)
			require.NoError(t, err)
			assert.False(t, active)
		}
	}
	assert.Equal(t, 2, shared)
}

func TestFromFaces_Errors(t *testing.T) {
	t.Parallel()

	square := []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tests := []struct {
		name  string
		faces [][]v2.Vec
		opts  []core.Option
		want  error
	}{
		{"no faces", nil, nil, builder.ErrTooFewUnits},
		{"two corners", [][]v2.Vec{{{X: 0}, {X: 1}}}, nil, builder.ErrTooFewUnits},
		{"repeated corner", [][]v2.Vec{{{X: 0}, {X: 1}, {X: 1e-9}, {Y: 1}}}, nil, builder.ErrConstructFailed},
		{"side of three faces", [][]v2.Vec{square, square, square}, nil, builder.ErrConstructFailed},
		{"bad network option", [][]v2.Vec{square}, []core.Option{core.WithRingCapacity(2)}, core.ErrOptionViolation},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.FromFaces(tc.faces, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromFaces_Square(t *testing.T) {
	n, err := builder.FromFaces([][]v2.Vec{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}})
	require.NoError(t, err)
	assert.Equal(t, 4, n.UnitCount())
	assert.Equal(t, 12, n.AtomCount())
	assert.Equal(t, 4, n.Boundary().Len())
	requireWellFormed(t, n)
}

func TestBuildNetwork_Errors(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.SingleRing(6), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildNetwork(nil, builder.SingleRing(2))
	require.ErrorIs(t, err, builder.ErrTooFewUnits)

	_, err = builder.BuildNetwork(nil, builder.Honeycomb(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewUnits)

	_, err = builder.BuildNetwork(nil, builder.TwoRings(1))
	require.ErrorIs(t, err, builder.ErrTooFewUnits)

	_, err = builder.BuildNetwork(nil)
	require.ErrorIs(t, err, builder.ErrTooFewUnits)

	_, err = builder.BuildNetwork([]builder.BuilderOption{
		builder.WithNetworkOptions(core.WithEdgeThreshold(9)),
	}, builder.SingleRing(6))
	require.ErrorIs(t, err, core.ErrOptionViolation)
}

func TestWithBondLength_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithBondLength(0) })
	assert.Panics(t, func() { builder.WithBondLength(-1) })
	assert.NotPanics(t, func() { builder.WithBondLength(0.5) })
}
