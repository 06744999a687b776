// Package bfs walks a core.Network breadth-first, returning hop counts and
// parent links from a start valve.
//
// What
//
//   - Explore valves in non-decreasing tunnel count from a start valve.
//   - Returns a Result containing:
//   - Depth: map from valve → minutes (tunnel hops) from start
//   - Parent: map from valve → its predecessor in the BFS tree
//   - PathTo rebuilds the walk from the start valve to any reached valve.
//
// Every tunnel costs one minute, so Depth is the travel time from the
// start valve. Zero-flow valves are traversed like any other valve.
//
// Determinism
//
//	core.Network.TunnelIDs returns tunnels sorted by ID and BFS enqueues them
//	in that order, so Parent (and every PathTo walk) is reproducible.
//
// Complexity (V = |Valves|, E = |Tunnels|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(n, "AA", bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrNetworkNil, ErrStartValveNotFound, ErrNeighbors or ctx.Err()
//	}
//	walk, _ := res.PathTo("JJ") // [AA II JJ]
//
// Errors
//
//   - ErrNetworkNil          if the network pointer is nil.
//   - ErrStartValveNotFound  if the start valve does not exist.
//   - ErrNeighbors           if a tunnel leads to an unknown valve.
//   - ErrNoPath              from PathTo when the valve was not reached.
package bfs
