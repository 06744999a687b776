// Package distance builds the hop-count table the pressure searches move on.
//
// Only valves with a positive flow rate are worth walking to, so the table
// keeps rows for those valves plus the start valve, and columns for the
// flow valves only. Zero-flow valves still carry traffic: distances are
// measured over the whole network.
//
// Each flow valve receives a FlowIndex in [0, k): its row/column in the
// table and its bit in the opened-valve mask. Indices follow ascending
// valve ID so that two builds of the same network agree.
package distance
