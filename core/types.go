// Package core defines the Valve and Network types consumed by the distance
// builder and the pressure searches, with thread-safe primitives for building
// and querying a network.
//
// A Network is assembled valve by valve, usually by a parser reading one line
// per valve. Tunnels may name valves that have not been added yet; the
// references are only checked by Validate, once the network is complete.
//
// Errors:
//
//	ErrEmptyValveID     - valve ID is the empty string.
//	ErrNegativeFlow     - flow rate below zero.
//	ErrDuplicateValve   - the same valve ID was added twice.
//	ErrValveNotFound    - requested valve does not exist.
//	ErrDanglingTunnel   - a tunnel points at a valve that was never added.
//	ErrMalformedNetwork - umbrella for every Validate failure.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyValveID indicates that the provided valve has an empty ID.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrNegativeFlow indicates a flow rate below zero.
	ErrNegativeFlow = errors.New("core: negative flow rate")

	// ErrDuplicateValve indicates the valve ID is already registered.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrValveNotFound indicates an operation referenced a non-existent valve.
	ErrValveNotFound = errors.New("core: valve not found")

	// ErrDanglingTunnel indicates a tunnel whose target valve does not exist.
	ErrDanglingTunnel = errors.New("core: tunnel leads to unknown valve")

	// ErrMalformedNetwork wraps every failure reported by Validate.
	ErrMalformedNetwork = errors.New("core: malformed network")
)

// Valve is a node of the network.
//
// Flow is the pressure released per minute once the valve is open; zero
// means the valve is never worth opening and only serves as a passage.
// Tunnels lists adjacent valve IDs; every tunnel takes one minute to walk.
type Valve struct {
	ID      string
	Flow    int
	Tunnels []string
}

// HasFlow reports whether opening the valve releases any pressure.
func (v Valve) HasFlow() bool { return v.Flow > 0 }

// NetworkOption configures a Network before creation.
type NetworkOption func(n *Network)

// WithCapacity pre-sizes the valve catalog.
func WithCapacity(size int) NetworkOption {
	return func(n *Network) {
		if size > 0 {
			n.valves = make(map[string]*Valve, size)
		}
	}
}

// WithSymmetricTunnels makes AddValve also record the reverse direction of
// every tunnel, for inputs that list each tunnel only once.
func WithSymmetricTunnels() NetworkOption {
	return func(n *Network) { n.symmetric = true }
}

// Network is the in-memory valve graph.
//
// mu guards valves and reverse; valves are never mutated after insertion,
// so readers receive copies and may keep them without holding the lock.
type Network struct {
	mu sync.RWMutex

	symmetric bool

	valves map[string]*Valve
	// reverse[to] = tunnel sources added by WithSymmetricTunnels.
	reverse map[string][]string
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		valves:  make(map[string]*Valve),
		reverse: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
