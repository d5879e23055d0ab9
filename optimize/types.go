// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, potential indices and functional options.

package optimize

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadModel indicates a PotentialModel of the wrong length or with a negative
	// force constant or rest length.
	ErrBadModel = errors.New("optimize: invalid potential model")

	// ErrNilRegion indicates Optimize was called without a region.
	ErrNilRegion = errors.New("optimize: nil region")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("optimize: invalid option supplied")
)

// Positions of the harmonic parameters in a core.PotentialModel.
const (
	KMX = iota
	R0MX
	KXX
	R0XX
	KMM
	R0MM

	// ModelSize is the length of a harmonic PotentialModel.
	ModelSize
)

// Defaults.
const (
	DefaultMaxIterations = 1000
	DefaultLineSearchInc = 1e-3
	DefaultConvergence   = 1e-6

	stepGrow    = 1.2
	stepShrink  = 0.5
	minStep     = 1e-12
	tinyBondLen = 1e-12
)

// Options configures an Optimizer.
type Options struct {
	// MaxIterations bounds the number of gradient evaluations (> 0).
	MaxIterations int

	// LineSearchInc is the initial step length along the negative gradient (> 0).
	LineSearchInc float64

	// Convergence is the energy change below which an accepted step ends the run (≥ 0).
	Convergence float64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		LineSearchInc: DefaultLineSearchInc,
		Convergence:   DefaultConvergence,
	}
}

// WithMaxIterations bounds the number of iterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d <= 0", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLineSearchInc sets the initial step length.
func WithLineSearchInc(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			o.err = fmt.Errorf("%w: line search increment %v <= 0", ErrOptionViolation, s)
			return
		}
		o.LineSearchInc = s
	}
}

// WithConvergence sets the energy convergence threshold.
func WithConvergence(c float64) Option {
	return func(o *Options) {
		if !(c >= 0) {
			o.err = fmt.Errorf("%w: convergence %v < 0", ErrOptionViolation, c)
			return
		}
		o.Convergence = c
	}
}

// harmonic is one spring between two local atoms.
type harmonic struct {
	a, b int
	k    float64
	r0   float64
}
