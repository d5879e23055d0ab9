// SPDX-License-Identifier: MIT
//
// File: growth.go
// Role: GrowthLifecycle — trial/commit protocol for adding a ring.
//
// A growth call opens a copy-on-write journal: it records the three entity counts and,
// on first touch, the pre-image of every pre-existing entity. Rolling back truncates the
// containers to the recorded counts and writes the pre-images back, so a trial leaves
// the network byte-for-byte as it found it (see Fingerprint).

package core

import (
	"fmt"

	"github.com/plan-systems/klog"
)

type journal[P Point[P]] struct {
	atoms, units, rings int

	atomPre map[int]Atom[P]
	unitPre map[int]Unit
	ringPre map[int]Ring

	boundary   Boundary
	energy     float64
	iterations int
}

// TrialRing builds a ring of the given size on path, optimises the local region around it
// and rolls everything back. The network is unchanged on return whatever the outcome.
//
// Returns the optimiser's result for the candidate.
func (n *Network[P]) TrialRing(g Grower[P], size int, path []int, model PotentialModel) (OptimizationResult, error) {
	if err := n.begin(g); err != nil {
		return OptimizationResult{}, err
	}
	defer n.rollback()

	res, err := n.buildAndOptimize(g, size, path, model)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("TrialRing(size=%d): %w", size, err)
	}
	klog.V(3).Infof("trial ring size=%d path=%v energy=%.6f iterations=%d", size, path, res.Energy, res.Iterations)

	return res, nil
}

// AcceptRing builds, optimises and keeps a ring of the given size on path, then recomputes
// the boundary. A failed build or optimisation is rolled back; a boundary trace failure is
// reported after the ring has been committed.
func (n *Network[P]) AcceptRing(g Grower[P], size int, path []int, model PotentialModel) (OptimizationResult, error) {
	if err := n.begin(g); err != nil {
		return OptimizationResult{}, err
	}

	res, err := n.buildAndOptimize(g, size, path, model)
	if err != nil {
		n.rollback()
		return OptimizationResult{}, fmt.Errorf("AcceptRing(size=%d): %w", size, err)
	}
	n.commit()
	n.energy = res.Energy
	n.iterations = res.Iterations
	klog.V(3).Infof("accepted ring size=%d path=%v energy=%.6f", size, path, res.Energy)

	if _, err = n.CalculateBoundary(); err != nil {
		return res, fmt.Errorf("AcceptRing(size=%d): %w", size, err)
	}

	return res, nil
}

func (n *Network[P]) buildAndOptimize(g Grower[P], size int, path []int, model PotentialModel) (OptimizationResult, error) {
	ring, err := g.Builder.BuildRing(n, size, path)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("build: %w", err)
	}
	region, err := n.FindLocalRegion(ring, g.Shells)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("region: %w", err)
	}
	res, err := g.Optimizer.Optimize(n, region, model)
	if err != nil {
		return OptimizationResult{}, fmt.Errorf("optimize: %w", err)
	}

	return res, nil
}

func (n *Network[P]) begin(g Grower[P]) error {
	if g.Builder == nil || g.Optimizer == nil {
		return ErrNilCollaborator
	}
	if n.tx != nil {
		return ErrTransactionOpen
	}
	n.tx = &journal[P]{
		atoms:      len(n.atoms),
		units:      len(n.units),
		rings:      len(n.rings),
		atomPre:    make(map[int]Atom[P]),
		unitPre:    make(map[int]Unit),
		ringPre:    make(map[int]Ring),
		boundary:   n.boundary.clone(),
		energy:     n.energy,
		iterations: n.iterations,
	}

	return nil
}

func (n *Network[P]) commit() { n.tx = nil }

func (n *Network[P]) rollback() {
	tx := n.tx
	if tx == nil {
		return
	}
	n.tx = nil

	n.atoms = restore(n.atoms, tx.atoms, tx.atomPre)
	n.units = restore(n.units, tx.units, tx.unitPre)
	n.rings = restore(n.rings, tx.rings, tx.ringPre)
	n.boundary = tx.boundary
	n.energy = tx.energy
	n.iterations = tx.iterations
}

// restore truncates s to count, re-appends entities popped below count, then writes back
// every recorded pre-image.
func restore[T any](s []T, count int, pre map[int]T) []T {
	if len(s) > count {
		var zero T
		for i := count; i < len(s); i++ {
			s[i] = zero
		}
		s = s[:count]
	}
	for id := len(s); id < count; id++ {
		s = append(s, pre[id])
	}
	for id, v := range pre {
		s[id] = v
	}

	return s
}

func (n *Network[P]) touchAtom(id int) {
	if n.tx == nil || id >= n.tx.atoms {
		return
	}
	if _, ok := n.tx.atomPre[id]; !ok {
		n.tx.atomPre[id] = n.atoms[id]
	}
}

func (n *Network[P]) touchUnit(id int) {
	if n.tx == nil || id >= n.tx.units {
		return
	}
	if _, ok := n.tx.unitPre[id]; !ok {
		n.tx.unitPre[id] = n.units[id].clone()
	}
}

func (n *Network[P]) touchRing(id int) {
	if n.tx == nil || id >= n.tx.rings {
		return
	}
	if _, ok := n.tx.ringPre[id]; !ok {
		n.tx.ringPre[id] = n.rings[id].clone()
	}
}
