package distance

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/valvesearch/bfs"
	"github.com/katalvlaran/valvesearch/core"
)

// MaxFlowValves is the number of bits in the opened-valve mask.
const MaxFlowValves = 64

// ErrTooManyValves is returned when the network has more flow valves than
// the opened-valve mask can hold.
var ErrTooManyValves = errors.New("distance: too many flow valves")

// unreachable marks a pair with no path.
const unreachable = -1

// Table maps (origin, flow valve) pairs to travel minutes.
//
// Origins are indexed 0..k-1 for the flow valves (same as their FlowIndex)
// and, when the start valve has no flow, k for the start valve.
type Table struct {
	ids   []string // origin index -> valve ID
	flows []int    // FlowIndex -> flow rate
	index map[string]int
	start int
	dist  [][]int // dist[origin][flowIndex]
}

// Build validates n, assigns FlowIndex values and runs one BFS per origin.
// The walks stop early when ctx is done; a nil ctx never cancels.
//
// Errors:
//   - anything wrapping core.ErrMalformedNetwork from n.Validate.
//   - ErrTooManyValves if more than MaxFlowValves valves have flow.
//   - ctx.Err() on cancellation.
//   - other bfs errors (not expected once Validate passed).
//
// Complexity: O(k · (V + E)) for k flow valves.
func Build(ctx context.Context, n *core.Network, start string) (*Table, error) {
	if n == nil {
		return nil, bfs.ErrNetworkNil
	}
	if err := n.Validate(start); err != nil {
		return nil, err
	}

	flowIDs := n.FlowValveIDs()
	if len(flowIDs) > MaxFlowValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(flowIDs), MaxFlowValves)
	}

	t := &Table{
		ids:   make([]string, 0, len(flowIDs)+1),
		flows: make([]int, len(flowIDs)),
		index: make(map[string]int, len(flowIDs)+1),
	}
	for i, id := range flowIDs {
		v, err := n.Valve(id)
		if err != nil {
			return nil, err
		}
		t.ids = append(t.ids, id)
		t.flows[i] = v.Flow
		t.index[id] = i
	}
	if idx, ok := t.index[start]; ok {
		t.start = idx
	} else {
		t.start = len(t.ids)
		t.ids = append(t.ids, start)
		t.index[start] = t.start
	}

	t.dist = make([][]int, len(t.ids))
	for origin, id := range t.ids {
		res, err := bfs.BFS(n, id, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("distance: walking from %q: %w", id, err)
		}
		row := make([]int, len(flowIDs))
		for dest, destID := range flowIDs {
			d, ok := res.Depth[destID]
			if !ok {
				d = unreachable
			}
			row[dest] = d
		}
		t.dist[origin] = row
	}

	return t, nil
}

// FlowCount returns k, the number of flow valves.
func (t *Table) FlowCount() int { return len(t.flows) }

// OriginCount returns the number of rows (k, or k+1 with a zero-flow start).
func (t *Table) OriginCount() int { return len(t.ids) }

// Start returns the origin index of the start valve.
func (t *Table) Start() int { return t.start }

// Flow returns the flow rate of the valve with the given FlowIndex.
func (t *Table) Flow(flowIndex int) int { return t.flows[flowIndex] }

// ID returns the valve ID of an origin index (FlowIndex values included).
func (t *Table) ID(origin int) string { return t.ids[origin] }

// Index returns the origin index of a valve, if it has a row.
func (t *Table) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Mask returns the opened-valve bit of a FlowIndex.
func (t *Table) Mask(flowIndex int) uint64 { return 1 << uint(flowIndex) }

// Distance returns the minutes needed to walk from origin to the flow valve
// dest. The boolean is false when dest cannot be reached.
func (t *Table) Distance(origin, dest int) (int, bool) {
	d := t.dist[origin][dest]
	return d, d != unreachable
}

// MinDistanceFromStart returns the shortest walk from the start valve to
// any reachable flow valve (0 when the start valve has flow itself), or
// false if there is none.
func (t *Table) MinDistanceFromStart() (int, bool) {
	best, found := 0, false
	for dest := range t.flows {
		d, ok := t.Distance(t.start, dest)
		if !ok {
			continue
		}
		if !found || d < best {
			best, found = d, true
		}
	}

	return best, found
}
