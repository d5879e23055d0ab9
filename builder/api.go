// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// api.go — public entry-points for seed construction.
//
// Design contract:
//   • One orchestrator: BuildNetwork(bopts, cons...). Resolves cfg, collects the faces of
//     every constructor in order, then assembles them with FromFaces.
//   • Constructors only describe geometry (faces as corner lists); assembly owns ids.
//   • Determinism: same inputs and constructor order ⇒ identical networks.
//   • Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/mx2/core"
)

// Constructor produces polygon faces (corners in cyclic order) from the resolved config.
// Every corner becomes a unit; corners closer than vertexPrecision are merged, so faces
// of different constructors that share corners are stitched together.
type Constructor func(cfg builderConfig) ([][]v2.Vec, error)

// BuildNetwork resolves bopts, runs every constructor in order and assembles all their
// faces into one network. The boundary of the result is already traced.
//
// Errors:
//   - Constructor errors wrapped as "BuildNetwork: %w".
//   - Assembly errors from FromFaces.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network[v2.Vec], error) {
	cfg := newBuilderConfig(bopts...)

	var faces [][]v2.Vec
	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf(methodBuildNetwork, ErrConstructFailed, "nil constructor at index %d", i)
		}
		f, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildNetwork, err)
		}
		faces = append(faces, f...)
	}

	return assemble(faces, cfg.netOpts)
}

// FromFaces assembles a network from polygon faces given as corner coordinates in cyclic
// order.
//
// Assembly:
//   - Each distinct corner becomes a unit whose M atom sits on the corner (coordination 3).
//   - Each polygon side becomes a bridging X atom at its midpoint, shared by the two units
//     (coordination = ligand coordination of the network). Units on the same side are
//     bridged; faces sharing a side become neighbour rings.
//   - Each face becomes a ring whose member order is the corner order.
//   - Units left with fewer than three ligands receive dangling X atoms (one below the
//     ligand coordination) pointing away from their neighbours, at half the mean
//     distance to them.
//   - The boundary is traced before returning.
//
// Complexity: O(F·S) for F faces of at most S corners.
func FromFaces(faces [][]v2.Vec, nopts ...core.Option) (*core.Network[v2.Vec], error) {
	return assemble(faces, nopts)
}
