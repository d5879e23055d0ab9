// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors and BuildRing themselves never panic.

package builder

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/mx2/core"
)

// BuilderOption customizes seed construction.
type BuilderOption func(*builderConfig)

// WithBondLength sets the M–M distance of generated seeds. Panics unless d is finite and > 0.
func WithBondLength(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 0) {
		panic("builder: WithBondLength requires a finite positive length")
	}

	return func(c *builderConfig) { c.bondLength = d }
}

// WithOrigin translates every generated corner by o.
func WithOrigin(o v2.Vec) BuilderOption {
	return func(c *builderConfig) { c.origin = o }
}

// WithNetworkOptions forwards options to core.NewNetwork. Repeated calls accumulate.
func WithNetworkOptions(opts ...core.Option) BuilderOption {
	return func(c *builderConfig) { c.netOpts = append(c.netOpts, opts...) }
}
