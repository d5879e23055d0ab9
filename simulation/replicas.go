package simulation

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mx2/config"
)

// RunReplicas grows n independent networks concurrently. Replica i uses a copy of cfg
// with Monte Carlo seed cfg.MonteCarlo.Seed+i. The first failure cancels the others.
// The returned slices are indexed by replica.
func RunReplicas(ctx context.Context, cfg *config.Config, n int, metrics *Metrics) ([]*Simulation, []Result, error) {
	if n < 1 {
		return nil, nil, errors.Errorf("replicas: %d < 1", n)
	}

	sims := make([]*Simulation, n)
	for i := range sims {
		c := *cfg
		c.MonteCarlo.Seed = cfg.MonteCarlo.Seed + int64(i)
		s, err := New(&c, metrics)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "replica %d", i)
		}
		sims[i] = s
	}

	results := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range sims {
		i, s := i, s
		g.Go(func() error {
			res, err := s.Run(gctx)
			if err != nil {
				return errors.Wrapf(err, "replica %d", i)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sims, results, err
	}

	return sims, results, nil
}
