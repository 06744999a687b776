package search

import (
	"context"

	"github.com/katalvlaran/valvesearch/distance"
)

// newDualEngine builds the two-agent search. At every state each closed
// valve is tried as the next target of agent A and of agent B; the opened
// mask is shared, the clocks are not.
func newDualEngine(ctx context.Context, t *distance.Table, budget int, opts Options) *engine[dualState, DualKey] {
	canonical := opts.CanonicalDualKeys
	e := &engine[dualState, DualKey]{
		ctx:   ctx,
		mode:  ModeDual,
		opts:  opts,
		cache: NewCache[DualKey](1 << 12),
		key:   func(s dualState) (DualKey, bool) { return s.key(canonical) },
	}
	e.children = func(s dualState) []child[dualState] {
		out := make([]child[dualState], 0, 2*t.FlowCount())
		for dest := 0; dest < t.FlowCount(); dest++ {
			for who := range s.agents {
				next, step, ok := advance(t, budget, s.agents[who], s.opened, dest)
				if !ok {
					continue
				}
				ns := s
				ns.agents[who] = next
				ns.opened |= t.Mask(dest)
				step.Agent = who
				out = append(out, child[dualState]{state: ns, step: step})
			}
		}
		return out
	}

	return e
}

// dualRoot puts both agents on the start valve at minute zero.
func dualRoot(t *distance.Table) dualState {
	start := agent{at: t.Start()}
	return dualState{agents: [2]agent{start, start}}
}
