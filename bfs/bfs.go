// Package bfs provides multi-source breadth-first search over integer ids,
// returning visit order, depths and shells.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	neighbors NeighborFunc
	opts      Options
	ctx       context.Context
	queue     []queueItem
	visited   map[int]bool
	res       *Result
}

// Shells runs breadth-first search from every seed at once, applying any number of
// functional Options. Duplicate seeds are visited once.
// Returns ErrNoSeeds or ErrNilNeighborFunc for invalid input, ErrOptionViolation for
// bad options, ErrNeighbors for neighbour lookup failures, or any OnVisit error.
func Shells(seeds []int, neighbors NeighborFunc, opts ...Option) (*Result, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if neighbors == nil {
		return nil, ErrNilNeighborFunc
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		queue:     make([]queueItem, 0, len(seeds)),
		visited:   make(map[int]bool, len(seeds)),
		res: &Result{
			Order: make([]int, 0, len(seeds)),
			Depth: make(map[int]int, len(seeds)),
		},
	}

	// Seed shell 0
	for _, id := range seeds {
		if !w.visited[id] {
			w.enqueue(id, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records it in its shell and queues it.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	for len(w.res.Shells) <= d {
		w.res.Shells = append(w.res.Shells, nil)
	}
	w.res.Shells[d] = append(w.res.Shells[d], id)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth)
		}
	}
	return nil
}
