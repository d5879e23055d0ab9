// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see builderErrorf).
//   • Runtime code never panics; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewUnits indicates a size parameter below its minimum
// (ring size < MinRingSize, rows/cols < MinPatchDim, face with < 3 corners).
var ErrTooFewUnits = errors.New("builder: parameter too small")

// ErrBadPath indicates a boundary path that cannot carry a new ring: too short,
// closed on itself, or with an endpoint that is not on the growth front.
var ErrBadPath = errors.New("builder: unusable boundary path")

// ErrRingTooSmall indicates a requested ring size that leaves no room for new units
// on the given path, or exceeds the network's ring capacity.
var ErrRingTooSmall = errors.New("builder: ring size does not fit path")

// ErrNoFreeLigand indicates a path endpoint without an undercoordinated ligand.
var ErrNoFreeLigand = errors.New("builder: endpoint has no free ligand")

// ErrConstructFailed indicates the faces or path produce a topology the network
// cannot hold: a unit in more than three rings, an edge shared by three faces,
// a repeated corner, or a connectivity list overflow.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the method context: "<Method>: <message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
