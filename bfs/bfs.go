package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvesearch/core"
)

// queueItem pairs a valve ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *core.Network
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on n starting from startID.
// Returns ErrNetworkNil or ErrStartValveNotFound for invalid input,
// ErrNeighbors when a tunnel leads to an unknown valve, or ctx.Err() on
// cancellation.
//
// Complexity: O(V + E).
func BFS(n *core.Network, startID string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !n.HasValve(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartValveNotFound, startID)
	}

	size := n.ValveCount()
	w := &walker{
		net:     n,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &Result{
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
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

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen tunnel target of item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.net.TunnelIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get tunnels of %q: %w", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if !w.net.HasValve(nbr) {
			return fmt.Errorf("%w: %q -> %q: %w", ErrNeighbors, item.id, nbr, core.ErrValveNotFound)
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
