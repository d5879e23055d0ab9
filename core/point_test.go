package core_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/core"
)

func TestNetwork_ThreeDimensional(t *testing.T) {
	n, err := core.NewNetwork[v3.Vec]()
	require.NoError(t, err)

	// Three units on a tilted triangle, each with one ligand one unit above its M atom.
	ms := []v3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}}
	for _, m := range ms {
		u, err := n.AddUnit(n.AddAtom(m, 3))
		require.NoError(t, err)
		x := n.AddAtom(v3.Vec{X: m.X, Y: m.Y, Z: m.Z + 1}, 1)
		_, err = n.AddUnitAtomXCnx(u, x)
		require.NoError(t, err)
	}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err = n.AddUnitUnitCnx(p[0], p[1])
		require.NoError(t, err)
	}
	r := n.AddRing()
	for u := 0; u < 3; u++ {
		_, err = n.AddUnitRingCnx(u, r)
		require.NoError(t, err)
	}

	b, err := n.CalculateBoundary()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, b.Units)
	assert.Equal(t, []int{1, 3, 5}, b.Status)

	bonds := n.CalculateBondDistributions()
	assert.Equal(t, 3, bonds.MX.Len())
	assert.InDelta(t, 1.0, bonds.MX.Mean(), 1e-12)
	assert.True(t, n.CheckGeometry())

	st, err := n.CalculateRingStatistics()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, st.MeanRingSize(), 1e-12)
}
