package core_test

import (
	"errors"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/core"
)

// recordingOptimizer leaves coordinates alone and remembers the last region it saw.
type recordingOptimizer struct {
	energy float64
	err    error
	calls  int
	region *core.LocalRegion
}

func (o *recordingOptimizer) Optimize(_ *net, region *core.LocalRegion, _ core.PotentialModel) (core.OptimizationResult, error) {
	o.calls++
	o.region = region
	if o.err != nil {
		return core.OptimizationResult{}, o.err
	}

	return core.OptimizationResult{Energy: o.energy, Iterations: 7}, nil
}

// vandalBuilder mutates old and new state and then fails.
type vandalBuilder struct{}

func (vandalBuilder) BuildRing(n *net, _ int, _ []int) (int, error) {
	if err := n.SetAtomCoord(0, v2.Vec{X: 100, Y: 100}); err != nil {
		return 0, err
	}
	if err := n.SetAtomCoordination(12, 2); err != nil {
		return 0, err
	}
	if err := n.DelUnitUnitCnx(0, 1); err != nil {
		return 0, err
	}
	if err := n.DelRing(); err != nil {
		return 0, err
	}
	if err := n.DelAtom(); err != nil {
		return 0, err
	}
	m := n.AddAtom(v2.Vec{X: 5}, 3)
	u, err := n.AddUnit(m)
	if err != nil {
		return 0, err
	}
	if _, err = n.AddUnitUnitCnx(u, 2); err != nil {
		return 0, err
	}

	return 0, errors.New("vandal")
}

// nestedBuilder starts a second growth call from inside the first.
type nestedBuilder struct{ g core.Grower[v2.Vec] }

func (b nestedBuilder) BuildRing(n *net, size int, path []int) (int, error) {
	_, err := n.TrialRing(b.g, size, path, nil)
	return 0, err
}

func TestTrialRing_LeavesNetworkUnchanged(t *testing.T) {
	n := seed(t, builder.SingleRing(6))
	before := n.Fingerprint()
	boundary := n.Boundary()

	opt := &recordingOptimizer{energy: 2.5}
	g := core.Grower[v2.Vec]{Builder: builder.NewRingBuilder(), Optimizer: opt}
	for size := 4; size <= 8; size++ {
		res, err := n.TrialRing(g, size, []int{0, 1}, nil)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, 2.5, res.Energy)
		assert.Equal(t, before, n.Fingerprint(), "size %d", size)
		assert.Equal(t, boundary, n.Boundary())
		assert.Equal(t, 18, n.AtomCount())
		assert.Equal(t, 1, n.RingCount())
	}
	assert.Equal(t, 5, opt.calls)
	assert.Zero(t, n.Energy())
}

func TestAcceptRing_Commits(t *testing.T) {
	n := seed(t, builder.SingleRing(6))
	opt := &recordingOptimizer{energy: 1.25}
	g := core.Grower[v2.Vec]{Builder: builder.NewRingBuilder(), Optimizer: opt}

	res, err := n.AcceptRing(g, 6, []int{0, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.25, res.Energy)
	assert.Equal(t, 1.25, n.Energy())
	assert.Equal(t, 7, n.Iterations())

	assert.Equal(t, 29, n.AtomCount())
	assert.Equal(t, 10, n.UnitCount())
	assert.Equal(t, 2, n.RingCount())

	b := n.Boundary()
	assert.Equal(t, []int{2, 3, 4, 5, 0, 9, 8, 7, 6, 1}, b.Units)
	assert.Equal(t, []int{14, 15, 16, 17, -1, 28, 27, 26, 25, -1}, b.Status)

	u0, _ := n.Unit(0)
	assert.ElementsMatch(t, []int{1, 5, 9}, u0.Units.IDs())
	assert.Equal(t, []int{0, 1}, u0.Rings.IDs())
	r1, _ := n.Ring(1)
	assert.ElementsMatch(t, []int{0, 1, 6, 7, 8, 9}, r1.Units.IDs())
	assert.Equal(t, []int{0}, r1.Rings.IDs())

	// Shell 0 around the new ring: its six units move, their outside neighbours hold.
	require.NotNil(t, opt.region)
	assert.ElementsMatch(t, []int{0, 1, 6, 7, 8, 9}, opt.region.Flexible)
	assert.ElementsMatch(t, []int{2, 5}, opt.region.Fixed)
}

func TestAcceptRing_FailureRollsBack(t *testing.T) {
	n := seed(t, builder.TwoRings(6))
	before := n.Fingerprint()

	_, err := n.AcceptRing(core.Grower[v2.Vec]{Builder: vandalBuilder{}, Optimizer: &recordingOptimizer{}}, 6, []int{5, 0, 6}, nil)
	require.Error(t, err)
	assert.Equal(t, before, n.Fingerprint())
	assert.Equal(t, 2, n.RingCount())

	boom := errors.New("diverged")
	opt := &recordingOptimizer{err: boom}
	_, err = n.AcceptRing(core.Grower[v2.Vec]{Builder: builder.NewRingBuilder(), Optimizer: opt}, 6, []int{5, 0, 6}, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, before, n.Fingerprint())

	_, err = n.TrialRing(core.Grower[v2.Vec]{Builder: vandalBuilder{}, Optimizer: opt}, 6, []int{5, 0, 6}, nil)
	require.Error(t, err)
	assert.Equal(t, before, n.Fingerprint())
}

func TestGrowth_Guards(t *testing.T) {
	n := seed(t, builder.SingleRing(6))
	opt := &recordingOptimizer{}

	_, err := n.TrialRing(core.Grower[v2.Vec]{Optimizer: opt}, 6, []int{0, 1}, nil)
	require.ErrorIs(t, err, core.ErrNilCollaborator)
	_, err = n.AcceptRing(core.Grower[v2.Vec]{Builder: builder.NewRingBuilder()}, 6, []int{0, 1}, nil)
	require.ErrorIs(t, err, core.ErrNilCollaborator)

	inner := core.Grower[v2.Vec]{Builder: builder.NewRingBuilder(), Optimizer: opt}
	outer := core.Grower[v2.Vec]{Builder: nestedBuilder{g: inner}, Optimizer: opt}
	before := n.Fingerprint()
	_, err = n.TrialRing(outer, 6, []int{0, 1}, nil)
	require.ErrorIs(t, err, core.ErrTransactionOpen)
	assert.Equal(t, before, n.Fingerprint())

	// The failed nested call must not leave a transaction behind.
	_, err = n.TrialRing(inner, 6, []int{0, 1}, nil)
	require.NoError(t, err)
}
