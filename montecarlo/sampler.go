// SPDX-License-Identifier: MIT

package montecarlo

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors.
var (
	// ErrBadTemperature indicates a temperature that is not finite and positive.
	ErrBadTemperature = errors.New("montecarlo: temperature must be finite and > 0")

	// ErrNoCandidates indicates Choose was given no candidate with a finite energy.
	ErrNoCandidates = errors.New("montecarlo: no candidate with finite energy")
)

// Sampler draws Monte Carlo decisions at a fixed temperature.
type Sampler struct {
	rng         *rand.Rand
	temperature float64
}

// New returns a Sampler seeded with seed.
func New(seed int64, temperature float64) (*Sampler, error) {
	if !(temperature > 0) || math.IsInf(temperature, 0) {
		return nil, fmt.Errorf("New(T=%v): %w", temperature, ErrBadTemperature)
	}

	return &Sampler{rng: rand.New(rand.NewSource(seed)), temperature: temperature}, nil
}

// Temperature returns the sampling temperature.
func (s *Sampler) Temperature() float64 { return s.temperature }

// Choose returns the index of one candidate drawn with Boltzmann weights.
func (s *Sampler) Choose(energies []float64) (int, error) {
	lowest := math.Inf(1)
	for _, e := range energies {
		if finite(e) && e < lowest {
			lowest = e
		}
	}
	if math.IsInf(lowest, 1) {
		return -1, ErrNoCandidates
	}

	weights := make([]float64, len(energies))
	total := 0.0
	last := -1
	for i, e := range energies {
		if !finite(e) {
			continue
		}
		weights[i] = math.Exp(-(e - lowest) / s.temperature)
		total += weights[i]
		last = i
	}

	r := s.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i, nil
		}
		r -= w
	}

	return last, nil
}

// Intn returns a uniform integer in [0, n).
func (s *Sampler) Intn(n int) int { return s.rng.Intn(n) }

// Bool returns a fair coin flip.
func (s *Sampler) Bool() bool { return s.rng.Intn(2) == 0 }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
