// File: methods.go
// Role: Valve registration and read-only queries.
//
// Determinism:
//   - ValveIDs, FlowValveIDs and TunnelIDs return IDs sorted ascending.
//
// Concurrency:
//   - All methods take mu; queries hold the read lock only.
package core

import (
	"fmt"
	"slices"
	"sort"
)

// AddValve registers a valve with its flow rate and outgoing tunnels.
//
// Tunnel targets are not checked here: they may be added later. Empty
// tunnel names are ignored. The tunnels slice is copied.
//
// Errors:
//   - ErrEmptyValveID if id == "".
//   - ErrNegativeFlow if flow < 0.
//   - ErrDuplicateValve if id is already present.
//
// Complexity: O(len(tunnels)).
func (n *Network) AddValve(id string, flow int, tunnels ...string) error {
	if id == "" {
		return ErrEmptyValveID
	}
	if flow < 0 {
		return fmt.Errorf("%w: valve %q has flow %d", ErrNegativeFlow, id, flow)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.valves[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateValve, id)
	}

	out := make([]string, 0, len(tunnels))
	for _, to := range tunnels {
		if to == "" {
			continue
		}
		out = append(out, to)
		if n.symmetric {
			n.reverse[to] = append(n.reverse[to], id)
		}
	}
	n.valves[id] = &Valve{ID: id, Flow: flow, Tunnels: out}

	return nil
}

// HasValve reports whether the valve ID exists (empty ID ⇒ false).
func (n *Network) HasValve(id string) bool {
	if id == "" {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.valves[id]

	return ok
}

// Valve returns a copy of the valve registered under id.
func (n *Network) Valve(id string) (Valve, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.valves[id]
	if !ok {
		return Valve{}, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	return Valve{ID: v.ID, Flow: v.Flow, Tunnels: slices.Clone(v.Tunnels)}, nil
}

// ValveCount returns the number of registered valves.
func (n *Network) ValveCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.valves)
}

// ValveIDs returns every valve ID in ascending order.
func (n *Network) ValveIDs() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.valves))
	for id := range n.valves {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// FlowValveIDs returns, in ascending order, the IDs of valves with a
// positive flow rate.
func (n *Network) FlowValveIDs() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.valves))
	for id, v := range n.valves {
		if v.HasFlow() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// TunnelIDs returns the distinct valves reachable in one minute from id,
// sorted ascending. Targets that were never added are included; Validate
// is the place that rejects them.
//
// Errors: ErrValveNotFound if id is absent.
func (n *Network) TunnelIDs(id string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.valves[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	ids := make([]string, 0, len(v.Tunnels)+len(n.reverse[id]))
	ids = append(ids, v.Tunnels...)
	ids = append(ids, n.reverse[id]...)
	sort.Strings(ids)

	return slices.Compact(ids), nil
}

// Validate checks that start exists and that every tunnel leads to a
// registered valve. All failures wrap ErrMalformedNetwork.
//
// Complexity: O(V + E).
func (n *Network) Validate(start string) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.valves[start]; !ok {
		return fmt.Errorf("%w: start %w: %q", ErrMalformedNetwork, ErrValveNotFound, start)
	}

	// walk in ID order so the first reported problem is stable
	ids := make([]string, 0, len(n.valves))
	for id := range n.valves {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, to := range n.valves[id].Tunnels {
			if _, ok := n.valves[to]; !ok {
				return fmt.Errorf("%w: %w: %q -> %q", ErrMalformedNetwork, ErrDanglingTunnel, id, to)
			}
		}
	}

	return nil
}
