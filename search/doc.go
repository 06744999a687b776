// Package search finds the valve-opening plan that releases the most
// pressure within a time budget, for one agent or for two agents working
// together.
//
// Both searches move only between valves with flow, using the hop counts
// of a distance.Table. Opening the valve at minute m (arrival plus one
// minute of work) releases (budget − m) × flow; a valve that cannot be
// opened before the budget ends is not a move at all.
//
// Each solve memoizes, per state key, the best *additional* pressure from
// that state and the decisions behind it. Keys leave out the pressure
// already released, so the same cached suffix is appended to every prefix
// that reaches the state, whatever order its valves were opened in.
package search
