// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// seeds.go — seed geometries: a single ring, a pair of rings sharing a side, and a
// honeycomb patch of hexagons.
//
// All seeds use regular polygons with side cfg.bondLength, translated by cfg.origin.
// Corners are emitted counter-clockwise, so ring member order is counter-clockwise.

package builder

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// hexagon is the ring size of the honeycomb patch.
const hexagon = 6

// SingleRing returns a Constructor for one regular ring of the given size (≥ 3).
//
// Complexity: O(size).
func SingleRing(size int) Constructor {
	return func(cfg builderConfig) ([][]v2.Vec, error) {
		if err := validateMin(methodSingleRing, "size", size, MinRingSize); err != nil {
			return nil, err
		}

		return [][]v2.Vec{regularPolygon(cfg.origin, cfg.bondLength, size, math.Pi/2)}, nil
	}
}

// TwoRings returns a Constructor for two regular rings of the given size sharing one side.
// The first ring is centred on the origin; the shared side is vertical, to its right.
//
// Complexity: O(size).
func TwoRings(size int) Constructor {
	return func(cfg builderConfig) ([][]v2.Vec, error) {
		if err := validateMin(methodTwoRings, "size", size, MinRingSize); err != nil {
			return nil, err
		}
		half := math.Pi / float64(size)
		shift := v2.Vec{X: 2 * apothem(cfg.bondLength, size)}

		return [][]v2.Vec{
			regularPolygon(cfg.origin, cfg.bondLength, size, -half),
			regularPolygon(cfg.origin.Add(shift), cfg.bondLength, size, math.Pi-half),
		}, nil
	}
}

// Honeycomb returns a Constructor for a rows×cols patch of flat-topped hexagons in
// column-offset layout (odd columns shifted up by half a hexagon). Faces are emitted
// column-major.
//
// Complexity: O(rows·cols).
func Honeycomb(rows, cols int) Constructor {
	return func(cfg builderConfig) ([][]v2.Vec, error) {
		if err := validateMin(methodHoneycomb, "rows", rows, MinPatchDim); err != nil {
			return nil, err
		}
		if err := validateMin(methodHoneycomb, "cols", cols, MinPatchDim); err != nil {
			return nil, err
		}

		d := cfg.bondLength
		faces := make([][]v2.Vec, 0, rows*cols)
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				centre := v2.Vec{
					X: 1.5 * d * float64(c),
					Y: math.Sqrt(3) * d * (float64(r) + 0.5*float64(c%2)),
				}
				faces = append(faces, regularPolygon(cfg.origin.Add(centre), d, hexagon, 0))
			}
		}

		return faces, nil
	}
}
