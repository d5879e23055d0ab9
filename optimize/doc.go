// Package optimize relaxes the atom positions of a planar MX2 network
// (github.com/katalvlaran/mx2/core on sdfx vec/v2 coordinates) under a harmonic
// bond potential. It is the reference core.Optimizer.
//
// Potential
//
//	E = Σ_MX ½·kMX·(|rM−rX| − r0MX)²     every M–X bond of every unit
//	  + Σ_XX ½·kXX·(|rX−rX'| − r0XX)²    every ligand pair inside one unit
//	  + Σ_MM ½·kMM·(|rM−rM'| − r0MM)²    every pair of bridged units
//
// The six parameters come in core.PotentialModel order:
// [kMX, r0MX, kXX, r0XX, kMM, r0MM].
//
// Minimisation
//
// Steepest descent with an adaptive step: a step that lowers the energy is kept and the
// step grows; one that does not is discarded and the step shrinks. Iteration stops at
// MaxIterations, when the energy change of an accepted step drops below Convergence, or
// when the step collapses. Atoms the region marks fixed never move.
//
// Only bonds with both atoms inside the region contribute.
//
// Complexity: O(I·B) for I iterations over B bonds.
package optimize
