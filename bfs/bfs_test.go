package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mx2/bfs"
)

// path returns the neighbour function of the path 0-1-2-…-(n-1).
func path(n int) bfs.NeighborFunc {
	return func(id int) ([]int, error) {
		var out []int
		if id > 0 {
			out = append(out, id-1)
		}
		if id < n-1 {
			out = append(out, id+1)
		}
		return out, nil
	}
}

func TestShells_MultiSource(t *testing.T) {
	res, err := bfs.Shells([]int{3, 4, 3}, path(9))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, res.Shell(0))
	assert.Equal(t, []int{2, 5}, res.Shell(1))
	assert.Equal(t, []int{0, 7}, res.Shell(3))
	assert.Equal(t, []int{8}, res.Shell(4))
	assert.Nil(t, res.Shell(5))
	assert.Nil(t, res.Shell(-1))
	assert.Equal(t, 3, res.Depth[0])
	assert.Len(t, res.Order, 9)
}

func TestShells_MaxDepth(t *testing.T) {
	res, err := bfs.Shells([]int{0}, path(9), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, []int{2}, res.Shell(2))
}

func TestShells_FilterAndVisit(t *testing.T) {
	var visits []int
	res, err := bfs.Shells([]int{4}, path(9),
		bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr > 4 }),
		bfs.WithOnVisit(func(id, _ int) error {
			visits = append(visits, id)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, res.Order)
	assert.Equal(t, res.Order, visits)

	stop := errors.New("stop")
	_, err = bfs.Shells([]int{0}, path(9), bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestShells_Errors(t *testing.T) {
	_, err := bfs.Shells(nil, path(3))
	require.ErrorIs(t, err, bfs.ErrNoSeeds)
	_, err = bfs.Shells([]int{0}, nil)
	require.ErrorIs(t, err, bfs.ErrNilNeighborFunc)
	_, err = bfs.Shells([]int{0}, path(3), bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Shells([]int{0}, func(int) ([]int, error) { return nil, errors.New("gone") })
	require.ErrorIs(t, err, bfs.ErrNeighbors)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Shells([]int{0}, path(3), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
