// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • bondLength  = DefaultBondLength (M–M distance; M–X is half of it)
//   • origin      = (0, 0)
//   • netOpts     = none (core defaults)

package builder

import (
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/mx2/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// M–M distance of generated seed geometry (> 0).
	bondLength float64
	// Translation applied to every generated corner.
	origin v2.Vec
	// Options forwarded to core.NewNetwork.
	netOpts []core.Option
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{bondLength: DefaultBondLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
