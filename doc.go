// Package valvesearch finds the valve-opening plans that release the most
// pressure from a network of valves and tunnels, for one agent or for two
// agents sharing the work.
//
// Under the hood the module is organized in small packages:
//
//	core/     — Valve and Network types, thread-safe, validated before use
//	bfs/      — breadth-first walks over a Network
//	distance/ — FlowIndex assignment and the hop-count table
//	search/   — memoized single- and dual-agent searches
//	parse/    — puzzle file reader
//	config/   — YAML run configuration
//	metrics/  — Prometheus view of search statistics
//
// Quick example:
//
//	n := core.NewNetwork()
//	_ = n.AddValve("AA", 0, "BB")
//	_ = n.AddValve("BB", 13, "AA")
//	r, err := search.SolveSingle(ctx, n, "AA", 30)
//	// r.Total == 364
//
// The valves command in cmd/valves solves puzzle files from the shell.
package valvesearch

// Version is the module release reported by the CLI.
const Version = "0.3.0"
