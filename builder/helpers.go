// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// helpers.go — planar geometry helpers on sdfx vectors.

package builder

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// tinyLength is the length below which a direction is treated as undefined.
const tinyLength = 1e-12

// direction returns v scaled to unit length and true, or false when v is (near) zero.
func direction(v v2.Vec) (v2.Vec, bool) {
	l := v.Length()
	if l < tinyLength {
		return v2.Vec{}, false
	}

	return v.MulScalar(1 / l), true
}

// rotate turns v counter-clockwise by angle radians.
func rotate(v v2.Vec, angle float64) v2.Vec {
	s, c := math.Sincos(angle)

	return v2.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// perpendicular returns v rotated by +90°.
func perpendicular(v v2.Vec) v2.Vec { return v2.Vec{X: -v.Y, Y: v.X} }

// midpoint returns (a+b)/2.
func midpoint(a, b v2.Vec) v2.Vec { return a.Add(b).MulScalar(0.5) }

// centroid returns the mean of pts; pts must be non-empty.
func centroid(pts []v2.Vec) v2.Vec {
	var c v2.Vec
	for _, p := range pts {
		c = c.Add(p)
	}

	return c.MulScalar(1 / float64(len(pts)))
}

// regularPolygon returns the n corners of a regular polygon with the given side,
// centred on c, counter-clockwise from angle theta0.
//
// Complexity: O(n).
func regularPolygon(c v2.Vec, side float64, n int, theta0 float64) []v2.Vec {
	radius := side / (2 * math.Sin(math.Pi/float64(n)))
	out := make([]v2.Vec, n)
	for i := range out {
		s, co := math.Sincos(theta0 + 2*math.Pi*float64(i)/float64(n))
		out[i] = c.Add(v2.Vec{X: radius * co, Y: radius * s})
	}

	return out
}

// apothem returns the centre-to-side distance of a regular n-gon with the given side.
func apothem(side float64, n int) float64 {
	return side / (2 * math.Tan(math.Pi/float64(n)))
}

// vertexKey is a corner snapped to the vertexPrecision grid.
type vertexKey struct{ X, Y int64 }

func keyOf(p v2.Vec) vertexKey {
	return vertexKey{
		X: int64(math.Round(p.X / vertexPrecision)),
		Y: int64(math.Round(p.Y / vertexPrecision)),
	}
}

// edgeKey identifies an undirected unit–unit bond, smaller id first.
type edgeKey struct{ A, B int }

func keyOfEdge(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{A: a, B: b}
}
