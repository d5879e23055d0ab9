package simulation

import (
	"context"
	"strconv"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/config"
	"github.com/katalvlaran/mx2/core"
	"github.com/katalvlaran/mx2/montecarlo"
	"github.com/katalvlaran/mx2/optimize"
)

// MaxStalledSteps is the number of consecutive steps without a new ring that ends a run.
const MaxStalledSteps = 1000

var (
	// ErrStalled indicates MaxStalledSteps growth steps in a row added no ring.
	ErrStalled = errors.New("simulation: growth stalled")

	// ErrNoGrowthFront indicates a boundary without active units.
	ErrNoGrowthFront = errors.New("simulation: boundary has no active unit")
)

// Simulation grows one network.
type Simulation struct {
	ID uuid.UUID

	cfg       *config.Config
	net       *core.Network[v2.Vec]
	grower    core.Grower[v2.Vec]
	optimizer *optimize.Optimizer
	sampler   *montecarlo.Sampler
	model     core.PotentialModel
	metrics   *Metrics
}

// Result summarises a finished run.
type Result struct {
	RunID         uuid.UUID
	Rings         int
	Accepted      int
	Stalled       int // steps that added no ring
	Energy        float64
	GeometryValid bool
}

// New validates cfg, builds the seed network and the collaborators. A nil metrics is
// replaced by metrics on a private registry.
func New(cfg *config.Config, metrics *Metrics) (*Simulation, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "new simulation")
	}
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}

	net, err := Seed(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "seed network")
	}
	opt, err := optimize.New(
		optimize.WithMaxIterations(cfg.Optimisation.MaxIterations),
		optimize.WithLineSearchInc(cfg.Optimisation.LineSearchInc),
		optimize.WithConvergence(cfg.Optimisation.Convergence),
	)
	if err != nil {
		return nil, errors.Wrap(err, "optimizer")
	}
	sampler, err := montecarlo.New(cfg.MonteCarlo.Seed, cfg.MonteCarlo.Temperature)
	if err != nil {
		return nil, errors.Wrap(err, "sampler")
	}

	return &Simulation{
		ID:  uuid.New(),
		cfg: cfg,
		net: net,
		grower: core.Grower[v2.Vec]{
			Builder:   builder.NewRingBuilder(),
			Optimizer: opt,
			Shells:    cfg.Optimisation.LocalShells,
		},
		optimizer: opt,
		sampler:   sampler,
		model:     cfg.Model(),
		metrics:   metrics,
	}, nil
}

// Seed builds the seed network described by cfg.Network.
func Seed(cfg *config.Config) (*core.Network[v2.Vec], error) {
	nw := cfg.Network
	bopts := []builder.BuilderOption{
		builder.WithBondLength(nw.BondLength),
		builder.WithNetworkOptions(core.WithRingCapacity(nw.RingCapacity)),
	}

	var ctor builder.Constructor
	switch nw.Geometry {
	case config.GeometryHexagonal:
		ctor = builder.Honeycomb(nw.SeedRows, nw.SeedCols)
	case config.GeometryRing:
		ctor = builder.SingleRing(nw.SeedRingSize)
	case config.GeometryPair:
		ctor = builder.TwoRings(nw.SeedRingSize)
	default:
		return nil, errors.Errorf("unknown geometry %q", nw.Geometry)
	}

	return builder.BuildNetwork(bopts, ctor)
}

// Network returns the network being grown.
func (s *Simulation) Network() *core.Network[v2.Vec] { return s.net }

// Run grows the network until it holds cfg.Network.TargetRings rings, with optional
// global optimisation before and after.
func (s *Simulation) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: s.ID}
	klog.Infof("run %s: seed %s with %d rings, target %d", s.ID, s.cfg.Network.Geometry, s.net.RingCount(), s.cfg.Network.TargetRings)

	if s.cfg.Optimisation.GlobalPre {
		if err := s.optimiseGlobal(); err != nil {
			return res, err
		}
	}

	stalled := 0
	for s.net.RingCount() < s.cfg.Network.TargetRings {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "run %s", s.ID)
		}
		grown, err := s.Step()
		if err != nil {
			return res, errors.Wrapf(err, "run %s", s.ID)
		}
		if !grown {
			res.Stalled++
			if stalled++; stalled >= MaxStalledSteps {
				return res, errors.Wrapf(ErrStalled, "run %s after %d rings", s.ID, s.net.RingCount())
			}
			continue
		}
		stalled = 0
		res.Accepted++
		if s.net.RingCount()%10 == 0 {
			klog.Infof("run %s: %d rings, energy %.6f", s.ID, s.net.RingCount(), s.net.Energy())
		}
	}

	res.Energy = s.net.Energy()
	if s.cfg.Optimisation.GlobalPost {
		if err := s.optimiseGlobal(); err != nil {
			return res, err
		}
		res.Energy, _ = optimize.Energy(s.net, optimize.WholeNetwork(s.net), s.model)
	}
	res.Rings = s.net.RingCount()
	res.GeometryValid = s.net.CheckGeometry()
	klog.Infof("run %s: finished with %d rings (%d accepted, %d stalled steps), geometry valid %v",
		s.ID, res.Rings, res.Accepted, res.Stalled, res.GeometryValid)

	return res, nil
}

// Step performs one growth step. It reports whether a ring was added; a non-nil error
// is fatal for the run.
func (s *Simulation) Step() (bool, error) {
	b := s.net.Boundary()
	var front []int
	for i := 0; i < b.Len(); i++ {
		if b.Active(i) {
			front = append(front, b.Units[i])
		}
	}
	if len(front) == 0 {
		return false, ErrNoGrowthFront
	}

	start := front[s.sampler.Intn(len(front))]
	path, err := s.net.BoundarySection(start, s.sampler.Bool())
	if err != nil {
		return false, errors.Wrap(err, "boundary section")
	}
	if path[0] == path[len(path)-1] {
		s.metrics.Failures.WithLabelValues(StagePath).Inc()
		klog.V(2).Infof("run %s: section from unit %d wraps the whole boundary", s.ID, start)
		return false, nil
	}

	lowest := s.cfg.Network.MinRingSize
	if lowest < len(path)+1 {
		lowest = len(path) + 1
	}
	var sizes []int
	var energies []float64
	for size := lowest; size <= s.cfg.Network.MaxRingSize; size++ {
		s.metrics.Trials.Inc()
		out, err := s.net.TrialRing(s.grower, size, path, s.model)
		if err != nil {
			s.metrics.Failures.WithLabelValues(StageTrial).Inc()
			klog.Warningf("run %s: trial ring size %d on %v: %v", s.ID, size, path, err)
			continue
		}
		s.metrics.TrialEnergy.Observe(out.Energy)
		sizes = append(sizes, size)
		energies = append(energies, out.Energy)
	}
	if len(sizes) == 0 {
		s.metrics.Failures.WithLabelValues(StagePath).Inc()
		return false, nil
	}

	pick, err := s.sampler.Choose(energies)
	if err != nil {
		s.metrics.Failures.WithLabelValues(StageSelect).Inc()
		klog.Warningf("run %s: choosing among sizes %v: %v", s.ID, sizes, err)
		return false, nil
	}

	size := sizes[pick]
	out, err := s.net.AcceptRing(s.grower, size, path, s.model)
	if err != nil {
		s.metrics.Failures.WithLabelValues(StageAccept).Inc()
		var trace *core.BoundaryTraceError
		if errors.As(err, &trace) {
			klog.Errorf("run %s: boundary trace failed after ring of size %d on %v\n  reason:     %s\n  current:    %d\n  candidates: %v\n  path:       %v",
				s.ID, size, path, trace.Reason, trace.Current, trace.Candidates, trace.Path)
			return false, errors.Wrapf(err, "accept ring size %d", size)
		}
		klog.Warningf("run %s: accept ring size %d on %v: %v", s.ID, size, path, err)
		return false, nil
	}

	s.metrics.Accepted.Inc()
	s.metrics.RingSizeChosen.WithLabelValues(strconv.Itoa(size)).Inc()
	s.metrics.Rings.Set(float64(s.net.RingCount()))
	s.metrics.Energy.Set(out.Energy)
	klog.V(2).Infof("run %s: ring %d size %d on %v energy %.6f", s.ID, s.net.RingCount()-1, size, path, out.Energy)

	return true, nil
}

func (s *Simulation) optimiseGlobal() error {
	out, err := s.optimizer.Optimize(s.net, optimize.WholeNetwork(s.net), s.model)
	if err != nil {
		return errors.Wrapf(err, "run %s: global optimisation", s.ID)
	}
	klog.Infof("run %s: global optimisation energy %.6f after %d iterations", s.ID, out.Energy, out.Iterations)

	return nil
}
