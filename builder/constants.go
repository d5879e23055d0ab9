// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// constants.go — named bounds, defaults and method tags (no magic numbers).

package builder

// Minimum parameter values accepted by constructors.
const (
	// MinRingSize is the smallest polygon a ring can be.
	MinRingSize = 3

	// MinPatchDim is the smallest row/column count of a honeycomb patch.
	MinPatchDim = 1

	// MinPathUnits is the shortest boundary path a ring can be built on.
	MinPathUnits = 2
)

// Geometry defaults.
const (
	// DefaultBondLength is the M–M distance of generated seeds. Ligands sit halfway.
	DefaultBondLength = 1.0

	// vertexPrecision is the grid coordinates are snapped to when merging face corners.
	vertexPrecision = 1e-6

	// unitMCoordination is the bond count of a central M atom.
	unitMCoordination = 3

	// danglingSpread is the angle between the two free ligands of a unit with one neighbour.
	danglingSpread = 2 * 60.0
)

// Method tags used as error context.
const (
	methodFromFaces    = "FromFaces"
	methodSingleRing   = "SingleRing"
	methodTwoRings     = "TwoRings"
	methodHoneycomb    = "Honeycomb"
	methodBuildRing    = "BuildRing"
	methodBuildNetwork = "BuildNetwork"
)
