// Package core holds the valve network that the pressure searches run on.
//
// What
//
//   - Valve: an ID, a non-negative flow rate and a list of tunnels.
//   - Network: a concurrency-safe catalog of valves with sorted, reproducible
//     enumeration (ValveIDs, FlowValveIDs, TunnelIDs).
//   - Validate: the single admission check run before any search. A missing
//     start valve or a tunnel to an unknown valve wraps ErrMalformedNetwork.
//
// Tunnels are stored as declared. The puzzle input lists both directions of
// every tunnel; when an input lists each tunnel only once, build the network
// with WithSymmetricTunnels.
//
// Usage
//
//	n := core.NewNetwork()
//	_ = n.AddValve("AA", 0, "BB")
//	_ = n.AddValve("BB", 13, "AA")
//	if err := n.Validate("AA"); err != nil {
//		// errors.Is(err, core.ErrMalformedNetwork)
//	}
package core
