// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Entity types (Atom, Unit, Ring), the Network container, construction options,
//       sentinel errors and the collaborator interfaces used by the growth lifecycle.
// Policy:
//   - Positional ids: an entity's id is its index in the owning container.
//   - Only the last entity of each container may be removed (LIFO).
//   - No traversal state is stored on entities; traversals own their visited sets.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network operations.
var (
	// ErrAtomNotFound indicates an operation referenced an atom id outside [0, AtomCount).
	ErrAtomNotFound = errors.New("core: atom not found")

	// ErrUnitNotFound indicates an operation referenced a unit id outside [0, UnitCount).
	ErrUnitNotFound = errors.New("core: unit not found")

	// ErrRingNotFound indicates an operation referenced a ring id outside [0, RingCount).
	ErrRingNotFound = errors.New("core: ring not found")

	// ErrEmptyStore indicates a Del* call on an empty entity container.
	ErrEmptyStore = errors.New("core: entity store is empty")

	// ErrOptionViolation indicates an invalid construction option.
	ErrOptionViolation = errors.New("core: invalid option supplied")

	// ErrNoActiveUnit indicates the network has no growth front to trace.
	ErrNoActiveUnit = errors.New("core: no active unit")

	// ErrBoundaryAmbiguous indicates the perimeter walk could not choose a unique next unit.
	// It is always delivered wrapped in a *BoundaryTraceError.
	ErrBoundaryAmbiguous = errors.New("core: boundary trace ambiguous")

	// ErrNotOnBoundary indicates BoundarySection was called with a unit absent from the perimeter.
	ErrNotOnBoundary = errors.New("core: unit not on boundary")

	// ErrTransactionOpen indicates a growth call was made while another trial is in progress.
	ErrTransactionOpen = errors.New("core: growth transaction already open")

	// ErrNilCollaborator indicates a Grower without a builder or optimizer.
	ErrNilCollaborator = errors.New("core: nil ring builder or optimizer")
)

// Domain bounds of a triangular-raft MX2 tiling.
const (
	// UnitLigands is the number of X atoms around one M atom.
	UnitLigands = 3

	// UnitNeighbours is the maximum number of units bridged to one unit.
	UnitNeighbours = 3

	// UnitRings is the maximum number of rings meeting at one unit.
	UnitRings = 3

	// DefaultRingCapacity bounds both the size of a ring and its number of neighbour rings.
	DefaultRingCapacity = 20

	// DefaultLigandCoordination is the coordination of a fully bridged X atom.
	DefaultLigandCoordination = 2

	// DefaultActiveThreshold is the ligand coordination sum of a fully bridged unit.
	DefaultActiveThreshold = UnitLigands * DefaultLigandCoordination

	// DefaultEdgeThreshold is the ring membership count of an interior unit.
	DefaultEdgeThreshold = UnitRings

	// InactiveStatus marks an inactive position in Boundary.Status.
	InactiveStatus = -1
)

// Point is the coordinate constraint for atoms. Both sdfx vec/v2.Vec and vec/v3.Vec satisfy it.
type Point[P any] interface {
	Sub(P) P
	Length() float64
}

// Atom is a single M or X site.
type Atom[P Point[P]] struct {
	// ID is the positional index of the atom.
	ID int

	// Coord is the atom position.
	Coord P

	// Coordination is the bond count, maintained by whoever builds the network.
	Coordination int
}

// Unit is one coordination polyhedron footprint: a central M atom with its X ligands.
type Unit struct {
	ID     int
	AtomM  int
	AtomsX AdjacencyList
	Units  AdjacencyList
	Rings  AdjacencyList
}

// Ring is one polygonal tile, an ordered cycle of units.
type Ring struct {
	ID    int
	Units AdjacencyList
	Rings AdjacencyList

	// Full is true when no unit of the ring lies on the boundary.
	Full bool
}

// Boundary is the ordered perimeter walk of the network.
//
// Units holds the closed walk without repeating the first unit at the end.
// Status[i] is the ligand of an active Units[i] that the next ring bonds to: its first
// undercoordinated ligand, else its least coordinated one. Inactive units carry InactiveStatus.
type Boundary struct {
	Units  []int
	Status []int
}

// Len returns the number of perimeter positions.
func (b Boundary) Len() int { return len(b.Units) }

// Active reports whether position i carries a growth-front unit.
func (b Boundary) Active(i int) bool { return b.Status[i] != InactiveStatus }

// BoundaryTraceError describes a perimeter walk that could not be resolved.
// It wraps ErrBoundaryAmbiguous.
type BoundaryTraceError struct {
	Path       []int  // partial walk up to and including Current
	Current    int    // unit at which the walk stopped
	Candidates []int  // unvisited neighbours that could not be separated
	Reason     string // rule that failed
}

// Error implements error.
func (e *BoundaryTraceError) Error() string {
	return fmt.Sprintf("%v: at unit %d (%s), candidates %v, path %v",
		ErrBoundaryAmbiguous, e.Current, e.Reason, e.Candidates, e.Path)
}

// Unwrap exposes ErrBoundaryAmbiguous to errors.Is.
func (e *BoundaryTraceError) Unwrap() error { return ErrBoundaryAmbiguous }

// PotentialModel is the opaque parameter vector handed to an Optimizer.
type PotentialModel []float64

// OptimizationResult is what an Optimizer reports back.
type OptimizationResult struct {
	Energy     float64
	Iterations int
}

// RingBuilder constructs a candidate ring of the given size on a path of boundary units,
// using only the Network's public mutators. It returns the id of the new ring.
type RingBuilder[P Point[P]] interface {
	BuildRing(n *Network[P], size int, path []int) (int, error)
}

// Optimizer relaxes atom positions inside a local region.
type Optimizer[P Point[P]] interface {
	Optimize(n *Network[P], region *LocalRegion, model PotentialModel) (OptimizationResult, error)
}

// Grower bundles the collaborators of TrialRing and AcceptRing.
type Grower[P Point[P]] struct {
	Builder   RingBuilder[P]
	Optimizer Optimizer[P]

	// Shells is the number of BFS expansions around the new ring that stay flexible.
	Shells int
}

// Option configures a Network before creation.
type Option func(*options)

type options struct {
	ringCapacity       int
	ligandCoordination int
	activeThreshold    int
	edgeThreshold      int
	err                error
}

func defaultOptions() options {
	return options{
		ringCapacity:       DefaultRingCapacity,
		ligandCoordination: DefaultLigandCoordination,
		activeThreshold:    DefaultActiveThreshold,
		edgeThreshold:      DefaultEdgeThreshold,
	}
}

// WithRingCapacity bounds ring size and ring neighbour count. Must be >= 3.
func WithRingCapacity(n int) Option {
	return func(o *options) {
		if n < 3 {
			o.err = fmt.Errorf("%w: ring capacity %d < 3", ErrOptionViolation, n)
			return
		}
		o.ringCapacity = n
	}
}

// WithLigandCoordination sets the coordination of a fully bridged X atom. Must be >= 1.
// The active threshold follows as UnitLigands*c unless WithActiveThreshold is also given.
func WithLigandCoordination(c int) Option {
	return func(o *options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: ligand coordination %d < 1", ErrOptionViolation, c)
			return
		}
		o.ligandCoordination = c
		o.activeThreshold = UnitLigands * c
	}
}

// WithActiveThreshold sets the ligand coordination sum below which a unit is active.
func WithActiveThreshold(t int) Option {
	return func(o *options) {
		if t < 1 {
			o.err = fmt.Errorf("%w: active threshold %d < 1", ErrOptionViolation, t)
			return
		}
		o.activeThreshold = t
	}
}

// WithEdgeThreshold sets the ring count below which a unit is an edge unit.
func WithEdgeThreshold(t int) Option {
	return func(o *options) {
		if t < 1 || t > UnitRings {
			o.err = fmt.Errorf("%w: edge threshold %d outside [1,%d]", ErrOptionViolation, t, UnitRings)
			return
		}
		o.edgeThreshold = t
	}
}

// Network is the growing MX2 network: three positional entity containers,
// the current perimeter and the result of the last accepted optimisation.
//
// A Network is not safe for concurrent use; it has a single writer.
type Network[P Point[P]] struct {
	opts options

	atoms []Atom[P]
	units []Unit
	rings []Ring

	boundary Boundary

	energy     float64
	iterations int

	tx *journal[P]
}

// NewNetwork creates an empty Network.
func NewNetwork[P Point[P]](opts ...Option) (*Network[P], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Network[P]{opts: o}, nil
}
