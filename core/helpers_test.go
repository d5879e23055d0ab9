package core_test

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/core"
)

type net = core.Network[v2.Vec]

// seed assembles a builder seed with default options.
func seed(t *testing.T, ctor builder.Constructor) *net {
	t.Helper()
	n, err := builder.BuildNetwork(nil, ctor)
	require.NoError(t, err)

	return n
}

// emptyNet returns a network with no entities.
func emptyNet(t *testing.T, opts ...core.Option) *net {
	t.Helper()
	n, err := core.NewNetwork[v2.Vec](opts...)
	require.NoError(t, err)

	return n
}

// bareUnits adds count units, each with only its M atom at (i, 0).
func bareUnits(t *testing.T, n *net, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		m := n.AddAtom(v2.Vec{X: float64(i)}, 3)
		_, err := n.AddUnit(m)
		require.NoError(t, err)
	}
}

// link connects unit pairs and requires a clean append on both sides.
func link(t *testing.T, n *net, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		st, err := n.AddUnitUnitCnx(p[0], p[1])
		require.NoError(t, err)
		require.True(t, st.OK(), "link %v: %v", p, st)
	}
}

// ligands gives unit u one new X atom per coordination value and returns their ids.
func ligands(t *testing.T, n *net, u int, coords ...int) []int {
	t.Helper()
	ids := make([]int, 0, len(coords))
	for _, c := range coords {
		x := n.AddAtom(v2.Vec{X: float64(u), Y: 1}, c)
		st, err := n.AddUnitAtomXCnx(u, x)
		require.NoError(t, err)
		require.True(t, st.OK(), "ligand of unit %d: %v", u, st)
		ids = append(ids, x)
	}

	return ids
}

// joinRings makes unit u a member of each ring, adding rings until the ids exist.
func joinRings(t *testing.T, n *net, u int, rings ...int) {
	t.Helper()
	for _, r := range rings {
		for n.RingCount() <= r {
			n.AddRing()
		}
		st, err := n.AddUnitRingCnx(u, r)
		require.NoError(t, err)
		require.True(t, st.OK(), "unit %d ring %d: %v", u, r, st)
	}
}
