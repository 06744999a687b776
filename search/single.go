package search

import (
	"context"

	"github.com/katalvlaran/valvesearch/distance"
)

// newSingleEngine builds the single-agent search: one walker, the whole
// budget, one valve opened per level.
func newSingleEngine(ctx context.Context, t *distance.Table, budget int, opts Options) *engine[singleState, SingleKey] {
	e := &engine[singleState, SingleKey]{
		ctx:   ctx,
		mode:  ModeSingle,
		opts:  opts,
		cache: NewCache[SingleKey](1 << 10),
		key:   func(s singleState) (SingleKey, bool) { return s.key(), false },
	}
	e.children = func(s singleState) []child[singleState] {
		out := make([]child[singleState], 0, t.FlowCount())
		for dest := 0; dest < t.FlowCount(); dest++ {
			next, step, ok := advance(t, budget, s.agent, s.opened, dest)
			if !ok {
				continue
			}
			out = append(out, child[singleState]{
				state: singleState{agent: next, opened: s.opened | t.Mask(dest)},
				step:  step,
			})
		}
		return out
	}

	return e
}

// singleRoot is the initial single-agent state.
func singleRoot(t *distance.Table) singleState {
	return singleState{agent: agent{at: t.Start()}}
}
