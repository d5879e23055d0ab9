// Package bfs provides a multi-source, shell-by-shell breadth-first search over
// integer-identified nodes, returning the visit order, per-node depth and the
// shells (level sets) of the search.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a set of seeds.
//   - Seeds form shell 0; shell k holds the nodes first reached after k hops.
//   - Neighbours come from a caller-supplied NeighborFunc, so the search runs over
//     any adjacency structure (the unit–unit graph of core.Network in this module).
//   - Hooks: OnVisit (may abort with an error), FilterNeighbor (prunes edges).
//   - MaxDepth limits the number of expansion shells (d>0) or disables the limit (d==0).
//
// Determinism
//
//	Seeds are enqueued in the order given and neighbours in the order returned by
//	NeighborFunc, so Order and every shell are reproducible.
//
// Complexity (V = reached nodes, E = inspected edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Shells([]int{3, 4, 5}, neighbours, bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrNoSeeds, ErrNilNeighborFunc, ErrOptionViolation, ErrNeighbors or a hook error
//	}
//	for depth, shell := range res.Shells { ... }
//
// Errors
//
//   - ErrNoSeeds          if the seed list is empty.
//   - ErrNilNeighborFunc  if the neighbour source is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors        if NeighborFunc fails for a node.
//   - Wrapped OnVisit errors.
package bfs
