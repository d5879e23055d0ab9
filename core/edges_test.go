package core_test

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/core"
)

func TestUnitUnitCnx_TwoSided(t *testing.T) {
	n := emptyNet(t)
	bareUnits(t, n, 5)

	link(t, n, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	u1, _ := n.Unit(1)
	assert.Equal(t, []int{0}, u1.Units.IDs())

	st, err := n.AddUnitUnitCnx(1, 0)
	require.NoError(t, err)
	assert.Equal(t, core.StatusDuplicate, st)

	// Unit 0 is full; unit 4 still appends, so only the overflow bit is set.
	st, err = n.AddUnitUnitCnx(0, 4)
	require.NoError(t, err)
	assert.Equal(t, core.StatusOverflow, st)
	u4, _ := n.Unit(4)
	assert.Equal(t, []int{0}, u4.Units.IDs())

	_, err = n.AddUnitUnitCnx(0, 9)
	require.ErrorIs(t, err, core.ErrUnitNotFound)
}

func TestUnitRingCnx_OrderAndBits(t *testing.T) {
	n := emptyNet(t, core.WithRingCapacity(3))
	bareUnits(t, n, 4)
	r := n.AddRing()

	for _, u := range []int{2, 0, 1} {
		st, err := n.AddUnitRingCnx(u, r)
		require.NoError(t, err)
		require.True(t, st.OK())
	}
	ring, _ := n.Ring(r)
	assert.Equal(t, []int{2, 0, 1}, ring.Units.IDs())

	st, err := n.AddUnitRingCnx(3, r)
	require.NoError(t, err)
	assert.True(t, st.Overflow())
	assert.False(t, st.Duplicate())

	_, err = n.AddUnitRingCnx(9, r)
	require.ErrorIs(t, err, core.ErrUnitNotFound)
	_, err = n.AddUnitRingCnx(0, 9)
	require.ErrorIs(t, err, core.ErrRingNotFound)
}

func TestRingRingCnx(t *testing.T) {
	n := emptyNet(t)
	a, b := n.AddRing(), n.AddRing()

	st, err := n.AddRingRingCnx(a, b)
	require.NoError(t, err)
	assert.True(t, st.OK())
	st, err = n.AddRingRingCnx(b, a)
	require.NoError(t, err)
	assert.Equal(t, core.StatusDuplicate, st)

	_, err = n.AddRingRingCnx(a, 7)
	require.ErrorIs(t, err, core.ErrRingNotFound)
}

func TestDelCnx_OneSided(t *testing.T) {
	n := emptyNet(t)
	bareUnits(t, n, 2)
	link(t, n, [2]int{0, 1})
	r0, r1 := n.AddRing(), n.AddRing()
	_, err := n.AddUnitRingCnx(0, r0)
	require.NoError(t, err)
	_, err = n.AddRingRingCnx(r0, r1)
	require.NoError(t, err)
	x := n.AddAtom(v2.Vec{Y: 1}, 1)
	_, err = n.AddUnitAtomXCnx(0, x)
	require.NoError(t, err)

	require.NoError(t, n.DelUnitUnitCnx(0, 1))
	require.NoError(t, n.DelUnitRingCnx(0, r0))
	require.NoError(t, n.DelRingRingCnx(r0, r1))
	require.NoError(t, n.DelUnitAtomXCnx(0, x))

	u0, _ := n.Unit(0)
	u1, _ := n.Unit(1)
	ring0, _ := n.Ring(r0)
	ring1, _ := n.Ring(r1)
	assert.Zero(t, u0.Units.Len())
	assert.Equal(t, []int{0}, u1.Units.IDs())
	assert.Zero(t, u0.Rings.Len())
	assert.Equal(t, []int{0}, ring0.Units.IDs())
	assert.Zero(t, ring0.Rings.Len())
	assert.Equal(t, []int{r0}, ring1.Rings.IDs())
	assert.Zero(t, u0.AtomsX.Len())

	require.NoError(t, n.DelRingUnitCnx(r0, 0))
	ring0, _ = n.Ring(r0)
	assert.Zero(t, ring0.Units.Len())

	// Absent ids are a no-op; unknown owners are an error.
	require.NoError(t, n.DelUnitUnitCnx(0, 1))
	require.ErrorIs(t, n.DelUnitUnitCnx(5, 1), core.ErrUnitNotFound)
	require.ErrorIs(t, n.DelUnitRingCnx(5, 0), core.ErrUnitNotFound)
	require.ErrorIs(t, n.DelRingUnitCnx(5, 0), core.ErrRingNotFound)
	require.ErrorIs(t, n.DelRingRingCnx(5, 0), core.ErrRingNotFound)
	require.ErrorIs(t, n.DelUnitAtomXCnx(5, 0), core.ErrUnitNotFound)
}

func TestCheckActiveAndEdge(t *testing.T) {
	n := emptyNet(t)
	bareUnits(t, n, 1)
	for _, c := range []int{2, 2, 1} {
		x := n.AddAtom(v2.Vec{}, c)
		_, err := n.AddUnitAtomXCnx(0, x)
		require.NoError(t, err)
	}
	_, err := n.AddUnitAtomXCnx(0, 99)
	require.ErrorIs(t, err, core.ErrAtomNotFound)

	active, err := n.CheckActiveUnit(0, 6)
	require.NoError(t, err)
	assert.True(t, active)
	active, err = n.CheckActiveUnit(0, 5)
	require.NoError(t, err)
	assert.False(t, active)
	active, err = n.IsActive(0)
	require.NoError(t, err)
	assert.True(t, active)

	lig, err := n.UndercoordinatedLigand(0)
	require.NoError(t, err)
	assert.Equal(t, 3, lig)

	edge, err := n.CheckEdgeUnit(0, 1)
	require.NoError(t, err)
	assert.True(t, edge)
	_, err = n.AddUnitRingCnx(0, n.AddRing())
	require.NoError(t, err)
	edge, err = n.CheckEdgeUnit(0, 1)
	require.NoError(t, err)
	assert.False(t, edge)
	edge, err = n.IsEdge(0)
	require.NoError(t, err)
	assert.True(t, edge)

	require.NoError(t, n.SetAtomCoordination(3, 2))
	active, err = n.IsActive(0)
	require.NoError(t, err)
	assert.False(t, active)
	lig, err = n.UndercoordinatedLigand(0)
	require.NoError(t, err)
	assert.Equal(t, core.InactiveStatus, lig)

	_, err = n.CheckActiveUnit(4, 6)
	require.ErrorIs(t, err, core.ErrUnitNotFound)
	_, err = n.CheckEdgeUnit(4, 3)
	require.ErrorIs(t, err, core.ErrUnitNotFound)
	_, err = n.UndercoordinatedLigand(4)
	require.ErrorIs(t, err, core.ErrUnitNotFound)
}
