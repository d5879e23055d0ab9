// Package simulation drives the growth of an MX2 network from a seed to a target ring
// count.
//
// One growth step:
//
//  1. pick a random active unit of the boundary and a random direction;
//  2. take the boundary section from it to the next active unit as the path;
//  3. trial every ring size in [min_ring_size, max_ring_size] the path admits
//     (core.Network.TrialRing, network unchanged);
//  4. choose one size with Boltzmann weights on the trial energies (montecarlo);
//  5. accept it (core.Network.AcceptRing), which also retraces the boundary.
//
// A step that finds no admissible size or whose trials all fail adds no ring. Too many
// such steps in a row stop the run with ErrStalled. A boundary that cannot be traced
// after an accepted ring is fatal and its diagnostic is logged in full.
//
// Growth progress is logged with github.com/plan-systems/klog and counted in Prometheus
// metrics (NewMetrics). RunReplicas grows independent networks concurrently with
// golang.org/x/sync/errgroup; each run carries a github.com/google/uuid run id.
package simulation
