// SPDX-License-Identifier: MIT
//
// File: harmonic.go
// Role: Harmonic steepest-descent Optimizer over a core.LocalRegion.

package optimize

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mx2/core"
)

// Optimizer is the harmonic steepest-descent relaxer. It holds no per-call state and
// may be shared by several networks.
type Optimizer struct {
	opts Options
}

var _ core.Optimizer[v2.Vec] = (*Optimizer)(nil)

// New returns an Optimizer configured by opts.
func New(opts ...Option) (*Optimizer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Optimizer{opts: o}, nil
}

// Options returns the resolved configuration.
func (o *Optimizer) Options() Options {
	out := o.opts
	out.err = nil

	return out
}

// Optimize relaxes the flexible atoms of region and writes their positions back with
// SetAtomCoord. It returns the final energy of the region and the iterations used.
func (o *Optimizer) Optimize(n *core.Network[v2.Vec], region *core.LocalRegion, model core.PotentialModel) (core.OptimizationResult, error) {
	springs, pos, err := setup(n, region, model)
	if err != nil {
		return core.OptimizationResult{}, fmt.Errorf("Optimize: %w", err)
	}
	fixed := make([]bool, len(pos))
	for _, i := range region.FixedAtoms {
		fixed[i] = true
	}

	e := energy(pos, springs)
	grad := make([]v2.Vec, len(pos))
	trial := make([]v2.Vec, len(pos))
	step := o.opts.LineSearchInc
	iter := 0
	for iter < o.opts.MaxIterations && step > minStep {
		iter++
		if !gradient(pos, springs, fixed, grad) {
			break
		}
		for i := range pos {
			trial[i] = pos[i].Sub(grad[i].MulScalar(step))
		}
		eNew := energy(trial, springs)
		if eNew < e {
			delta := e - eNew
			pos, trial = trial, pos
			e = eNew
			step *= stepGrow
			if delta < o.opts.Convergence {
				break
			}
			continue
		}
		step *= stepShrink
	}

	for i, global := range region.LocalToGlobal {
		if fixed[i] {
			continue
		}
		if err = n.SetAtomCoord(global, pos[i]); err != nil {
			return core.OptimizationResult{}, fmt.Errorf("Optimize: %w", err)
		}
	}
	klog.V(4).Infof("optimised %d atoms over %d springs: energy=%.6g iterations=%d", len(pos), len(springs), e, iter)

	return core.OptimizationResult{Energy: e, Iterations: iter}, nil
}

// Energy evaluates the potential of region without moving anything.
func Energy(n *core.Network[v2.Vec], region *core.LocalRegion, model core.PotentialModel) (float64, error) {
	springs, pos, err := setup(n, region, model)
	if err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}

	return energy(pos, springs), nil
}

// WholeNetwork returns a region with every unit flexible and nothing fixed, for
// global optimisation.
func WholeNetwork(n *core.Network[v2.Vec]) *core.LocalRegion {
	region := &core.LocalRegion{GlobalToLocal: make(map[int]int, n.AtomCount())}
	register := func(global int) {
		if _, seen := region.GlobalToLocal[global]; seen {
			return
		}
		region.GlobalToLocal[global] = len(region.LocalToGlobal)
		region.LocalToGlobal = append(region.LocalToGlobal, global)
	}
	for u := 0; u < n.UnitCount(); u++ {
		unit, _ := n.Unit(u)
		region.Flexible = append(region.Flexible, u)
		register(unit.AtomM)
		for _, x := range unit.AtomsX.IDs() {
			register(x)
		}
	}

	return region
}

// setup validates model and collects the springs and starting positions of region.
func setup(n *core.Network[v2.Vec], region *core.LocalRegion, model core.PotentialModel) ([]harmonic, []v2.Vec, error) {
	if region == nil {
		return nil, nil, ErrNilRegion
	}
	if len(model) != ModelSize {
		return nil, nil, fmt.Errorf("%w: %d parameters, want %d", ErrBadModel, len(model), ModelSize)
	}
	for i, p := range model {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, nil, fmt.Errorf("%w: parameter %d = %v", ErrBadModel, i, p)
		}
	}

	pos := make([]v2.Vec, len(region.LocalToGlobal))
	for i, global := range region.LocalToGlobal {
		a, err := n.Atom(global)
		if err != nil {
			return nil, nil, err
		}
		pos[i] = a.Coord
	}

	inRegion := make(map[int]bool, len(region.Flexible)+len(region.Fixed))
	units := append(append([]int(nil), region.Flexible...), region.Fixed...)
	for _, u := range units {
		inRegion[u] = true
	}

	var springs []harmonic
	local := region.GlobalToLocal
	for _, u := range units {
		unit, err := n.Unit(u)
		if err != nil {
			return nil, nil, err
		}
		m, okM := local[unit.AtomM]
		xs := unit.AtomsX.IDs()
		for i, x := range xs {
			lx, okX := local[x]
			if okM && okX {
				springs = append(springs, harmonic{a: m, b: lx, k: model[KMX], r0: model[R0MX]})
			}
			for _, y := range xs[i+1:] {
				if ly, okY := local[y]; okX && okY {
					springs = append(springs, harmonic{a: lx, b: ly, k: model[KXX], r0: model[R0XX]})
				}
			}
		}
		for _, v := range unit.Units.IDs() {
			if v <= u || !inRegion[v] {
				continue
			}
			other, err := n.Unit(v)
			if err != nil {
				return nil, nil, err
			}
			if lv, ok := local[other.AtomM]; okM && ok {
				springs = append(springs, harmonic{a: m, b: lv, k: model[KMM], r0: model[R0MM]})
			}
		}
	}

	return springs, pos, nil
}

func energy(pos []v2.Vec, springs []harmonic) float64 {
	e := 0.0
	for _, s := range springs {
		d := pos[s.a].Sub(pos[s.b]).Length() - s.r0
		e += 0.5 * s.k * d * d
	}

	return e
}

// gradient fills grad with dE/dr, zero on fixed atoms, and reports whether any
// component is non-zero.
func gradient(pos []v2.Vec, springs []harmonic, fixed []bool, grad []v2.Vec) bool {
	for i := range grad {
		grad[i] = v2.Vec{}
	}
	for _, s := range springs {
		r := pos[s.a].Sub(pos[s.b])
		l := r.Length()
		if l < tinyBondLen {
			continue
		}
		g := r.MulScalar(s.k * (l - s.r0) / l)
		grad[s.a] = grad[s.a].Add(g)
		grad[s.b] = grad[s.b].Sub(g)
	}
	moving := false
	for i := range grad {
		if fixed[i] {
			grad[i] = v2.Vec{}
			continue
		}
		if grad[i].X != 0 || grad[i].Y != 0 {
			moving = true
		}
	}

	return moving
}
