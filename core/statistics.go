// SPDX-License-Identifier: MIT
//
// File: statistics.go
// Role: StatisticsEngine — ring-size and neighbour-size distributions, the Aboav–Weaire
//       fit, bond-length distributions and the geometry validity check.

package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mx2/stats"
)

// ErrNoRings indicates ring statistics requested on a network without rings.
var ErrNoRings = errors.New("core: network has no rings")

// AboavWeaire is the fitted relation n·m(n) = (1−α)·⟨n⟩(n−⟨n⟩) + ⟨n⟩² + μ.
type AboavWeaire struct {
	Alpha    float64
	Mu       float64
	RSquared float64

	// Fit holds the raw regression over x = ⟨n⟩(n−⟨n⟩), y = n·m(n).
	Fit stats.LineFit

	// Valid is false when no ring size had a neighbour distribution.
	Valid bool
}

// RingStatistics summarises ring sizes.
type RingStatistics struct {
	// Sizes is the distribution of ring sizes over all rings.
	Sizes *stats.Discrete

	// Neighbours maps a ring size to the distribution of neighbour-ring sizes, gathered
	// from full rings of that size only. Sizes without a full ring are absent.
	Neighbours map[int]*stats.Discrete

	AboavWeaire AboavWeaire
}

// MeanRingSize returns the mean of Sizes.
func (s *RingStatistics) MeanRingSize() float64 { return s.Sizes.Mean() }

// NeighbourMean returns the mean neighbour size of rings of the given size, or NaN.
func (s *RingStatistics) NeighbourMean(size int) float64 {
	d, ok := s.Neighbours[size]
	if !ok {
		return math.NaN()
	}

	return d.Mean()
}

// BondDistributions holds the M–X and X–X bond lengths of every unit.
type BondDistributions struct {
	MX *stats.Continuous
	XX *stats.Continuous
}

// CalculateRingStatistics builds the ring-size distribution, the per-size neighbour
// distributions over full rings, and fits the Aboav–Weaire relation.
//
// Boundary rings contribute to Sizes but never to Neighbours. Call CalculateBoundary
// first so that the Full flags reflect the current front.
func (n *Network[P]) CalculateRingStatistics() (*RingStatistics, error) {
	if len(n.rings) == 0 {
		return nil, ErrNoRings
	}

	res := &RingStatistics{
		Sizes:      stats.NewDiscrete(),
		Neighbours: make(map[int]*stats.Discrete),
	}
	for r := range n.rings {
		res.Sizes.Add(n.rings[r].Units.Len())
	}
	for r := range n.rings {
		if !n.rings[r].Full {
			continue
		}
		size := n.rings[r].Units.Len()
		d, ok := res.Neighbours[size]
		if !ok {
			d = stats.NewDiscrete()
			res.Neighbours[size] = d
		}
		for _, nb := range n.rings[r].Rings.ids {
			d.Add(n.rings[nb].Units.Len())
		}
	}

	aw, err := fitAboavWeaire(res)
	if err != nil {
		return nil, fmt.Errorf("CalculateRingStatistics: %w", err)
	}
	res.AboavWeaire = aw

	return res, nil
}

func fitAboavWeaire(s *RingStatistics) (AboavWeaire, error) {
	mean := s.MeanRingSize()
	var xs, ys []float64
	for _, size := range s.Sizes.Values() {
		d, ok := s.Neighbours[size]
		if !ok || d.Empty() {
			continue
		}
		xs = append(xs, mean*(float64(size)-mean))
		ys = append(ys, float64(size)*d.Mean())
	}
	if len(xs) == 0 {
		return AboavWeaire{Alpha: math.NaN(), Mu: math.NaN(), RSquared: math.NaN()}, nil
	}

	fit, err := stats.FitLine(xs, ys)
	if err != nil {
		return AboavWeaire{}, err
	}

	return AboavWeaire{
		Alpha:    1 - fit.Slope,
		Mu:       fit.Intercept - mean*mean,
		RSquared: fit.RSquared,
		Fit:      fit,
		Valid:    true,
	}, nil
}

// CalculateBondDistributions collects one M–X length per unit–ligand pair and one X–X
// length per unordered ligand pair within each unit.
func (n *Network[P]) CalculateBondDistributions() *BondDistributions {
	res := &BondDistributions{MX: stats.NewContinuous(), XX: stats.NewContinuous()}
	for u := range n.units {
		m := n.atoms[n.units[u].AtomM].Coord
		xs := n.units[u].AtomsX.ids
		for i, x := range xs {
			cx := n.atoms[x].Coord
			res.MX.Add(cx.Sub(m).Length())
			for _, y := range xs[i+1:] {
				res.XX.Add(n.atoms[y].Coord.Sub(cx).Length())
			}
		}
	}

	return res
}

// CheckGeometry reports whether every M–X bond has a finite, strictly positive length.
func (n *Network[P]) CheckGeometry() bool {
	for u := range n.units {
		m := n.atoms[n.units[u].AtomM].Coord
		for _, x := range n.units[u].AtomsX.ids {
			l := n.atoms[x].Coord.Sub(m).Length()
			if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
				return false
			}
		}
	}

	return true
}
