// Package core provides the growing MX2 network: a graph of atoms, coordination
// units and polygonal rings, with the algorithms that drive and analyse its growth.
//
// Entities
//
//   - Atom: an M or X site with a coordinate and a coordination number.
//   - Unit: one M atom with up to three X ligands, bridged to up to three
//     neighbouring units and belonging to up to three rings.
//   - Ring: an ordered cycle of units with up to RingCapacity neighbour rings.
//
// Ids are positions: the id of an entity is its index in the owning container and only
// the last entity of each container can be removed.
//
// Coordinates are generic. Network[P] accepts any P with Sub(P) P and Length() float64;
// the builder and optimize packages use github.com/deadsy/sdfx/vec/v2.Vec.
//
// Components
//
//	// Connectivity
//	AddUnitUnitCnx / AddUnitRingCnx / AddRingRingCnx   two-sided, Status bits ORed
//	Del*Cnx                                            one-sided, absent id is a no-op
//	CheckActiveUnit / CheckEdgeUnit                    growth-front predicates
//
//	// Growth
//	TrialRing   build + optimise + roll back (network unchanged)
//	AcceptRing  build + optimise + commit + CalculateBoundary
//
//	// Perimeter
//	CalculateBoundary   ordered closed walk of the perimeter units
//	BoundarySection     path from one active unit to the next
//
//	// Analysis
//	FindLocalRegion             flexible / fixed BFS shells around a ring
//	CalculateRingStatistics     ring and neighbour size distributions, Aboav–Weaire fit
//	CalculateBondDistributions  M–X and X–X bond lengths
//	WriteAnalysis               labelled fixed-precision report
//
// Collaborators
//
// Building the atoms of a new ring and relaxing them are delegated to a RingBuilder
// and an Optimizer supplied through Grower. Both act on the network only through its
// public mutators, which a growth transaction journals; rolling back restores the exact
// prior state (Fingerprint is unchanged).
//
// Errors
//
//   - ErrAtomNotFound, ErrUnitNotFound, ErrRingNotFound for ids out of range.
//   - ErrEmptyStore for Del* on an empty container.
//   - ErrNoActiveUnit, *BoundaryTraceError (wraps ErrBoundaryAmbiguous) from the tracer.
//   - ErrNotOnBoundary from BoundarySection.
//   - ErrTransactionOpen, ErrNilCollaborator from the growth lifecycle.
//   - ErrNoRings from CalculateRingStatistics.
//
// Concurrency
//
// A Network has a single writer and no internal locking. Independent networks may be
// grown in parallel.
package core
