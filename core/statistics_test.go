package core_test

import (
	"bytes"
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/core"
)

func TestRingStatistics_Hexagonal(t *testing.T) {
	n := seed(t, builder.Honeycomb(4, 4))

	st, err := n.CalculateRingStatistics()
	require.NoError(t, err)
	assert.Equal(t, []int{6}, st.Sizes.Values())
	assert.Equal(t, 16, st.Sizes.Total())
	assert.InDelta(t, 6.0, st.MeanRingSize(), 1e-12)

	require.Contains(t, st.Neighbours, 6)
	assert.Equal(t, 24, st.Neighbours[6].Total())
	assert.InDelta(t, 6.0, st.NeighbourMean(6), 1e-12)
	assert.True(t, math.IsNaN(st.NeighbourMean(5)))

	aw := st.AboavWeaire
	assert.True(t, aw.Valid)
	assert.True(t, aw.Fit.Degenerate)
	assert.InDelta(t, 1.0, aw.Alpha, 1e-12)
	assert.InDelta(t, 0.0, aw.Mu, 1e-12)
	assert.InDelta(t, 1.0, aw.RSquared, 1e-12)
}

func TestRingStatistics_NoFullRings(t *testing.T) {
	n := seed(t, builder.TwoRings(5))

	st, err := n.CalculateRingStatistics()
	require.NoError(t, err)
	assert.Equal(t, 1.0, st.Sizes.Probability(5))
	assert.Empty(t, st.Neighbours)
	assert.False(t, st.AboavWeaire.Valid)
	assert.True(t, math.IsNaN(st.AboavWeaire.Alpha))

	_, err = emptyNet(t).CalculateRingStatistics()
	require.ErrorIs(t, err, core.ErrNoRings)
}

func TestBondDistributions(t *testing.T) {
	n, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithBondLength(2)}, builder.SingleRing(6))
	require.NoError(t, err)

	bonds := n.CalculateBondDistributions()
	assert.Equal(t, 18, bonds.MX.Len())
	assert.Equal(t, 18, bonds.XX.Len())
	assert.InDelta(t, 1.0, bonds.MX.Mean(), 1e-9)
	assert.InDelta(t, 0.0, bonds.MX.StdDev(), 1e-9)
	assert.True(t, n.CheckGeometry())
}

func TestCheckGeometry_CollapsedBond(t *testing.T) {
	n := seed(t, builder.SingleRing(3))
	u0, _ := n.Unit(0)
	m, _ := n.Atom(u0.AtomM)
	require.NoError(t, n.SetAtomCoord(u0.AtomsX.At(0), m.Coord))
	assert.False(t, n.CheckGeometry())

	require.NoError(t, n.SetAtomCoord(u0.AtomsX.At(0), v2.Vec{X: math.NaN()}))
	assert.False(t, n.CheckGeometry())
}

func TestWriteAnalysis(t *testing.T) {
	n := seed(t, builder.Honeycomb(4, 4))

	var buf bytes.Buffer
	require.NoError(t, n.WriteAnalysis(&buf, true))
	out := buf.String()
	assert.Contains(t, out, "Geometry valid\n1\n")
	assert.Contains(t, out, "Ring statistics\n")
	assert.Contains(t, out, "       6     1.000000\n")
	assert.Contains(t, out, "    mean     6.000000\nvariance     0.000000\n")
	assert.Contains(t, out, "ring size 6\n")
	assert.Contains(t, out, "Aboav-Weaire\n")
	assert.Contains(t, out, "    1.000000     0.000000     1.000000\n")

	buf.Reset()
	require.NoError(t, seed(t, builder.SingleRing(6)).WriteAnalysis(&buf, false))
	assert.Contains(t, buf.String(), "Geometry valid\n0\n")
	assert.NotContains(t, buf.String(), "ring size")

	require.ErrorIs(t, emptyNet(t).WriteAnalysis(&buf, true), core.ErrNoRings)
}
