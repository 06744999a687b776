package search

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvesearch/distance"
)

// ctxCheckMask sets how often (in calls) the context is polled.
const ctxCheckMask = 1<<12 - 1

// child is a successor state and the decision leading to it.
type child[S any] struct {
	state S
	step  Step
}

// engine is the memoized depth-first search shared by both modes. One
// engine is built per solve and owns its cache.
//
// Recursion depth is bounded by the number of flow valves: every level
// opens one more valve.
type engine[S any, K comparable] struct {
	ctx   context.Context
	mode  Mode
	opts  Options
	cache *Cache[K]
	calls atomic.Int64

	// children lists the successors of a state in a fixed order.
	children func(S) []child[S]
	// key encodes a state; swapped means the key lists agents in reverse.
	key func(S) (K, bool)
}

// tick counts a call, polls the context and logs progress.
func (e *engine[S, K]) tick() error {
	n := e.calls.Add(1)
	if n&ctxCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			return err
		}
	}
	if e.opts.ProgressEvery > 0 && n%e.opts.ProgressEvery == 0 {
		e.opts.Logger.Debug("search progress",
			"mode", e.mode, "calls", n, "cache_hits", e.cache.Hits(), "cache_size", e.cache.Len())
	}

	return nil
}

// explore returns the best outcome from st onward. A state already in the
// cache is answered from it; otherwise every child is explored, the best
// continuation is cached and returned.
func (e *engine[S, K]) explore(st S) (Outcome, error) {
	if err := e.tick(); err != nil {
		return Outcome{}, err
	}

	k, swapped := e.key(st)
	if o, ok := e.cache.Lookup(k); ok {
		if swapped {
			o = o.swapAgents()
		}
		return o, nil
	}

	var best Outcome
	for _, c := range e.children(st) {
		sub, err := e.explore(c.state)
		if err != nil {
			return Outcome{}, err
		}
		if c.step.Released+sub.Gain > best.Gain {
			best = sub.after(c.step)
		}
	}

	e.store(k, swapped, best)

	return best, nil
}

func (e *engine[S, K]) store(k K, swapped bool, o Outcome) {
	if swapped {
		o = o.swapAgents()
	}
	e.cache.Store(k, o)
}

// run explores root. With more than one worker the first decision level is
// spread over an errgroup; the winner is the highest gain, ties going to
// the earliest child, exactly as in the sequential walk.
func (e *engine[S, K]) run(root S) (Outcome, error) {
	if e.opts.Workers <= 1 {
		return e.explore(root)
	}
	if err := e.tick(); err != nil {
		return Outcome{}, err
	}

	children := e.children(root)
	subs := make([]Outcome, len(children))

	g, gctx := errgroup.WithContext(e.ctx)
	g.SetLimit(e.opts.Workers)
	for i, c := range children {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sub, err := e.explore(c.state)
			if err != nil {
				return err
			}
			subs[i] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	var best Outcome
	for i, c := range children {
		if c.step.Released+subs[i].Gain > best.Gain {
			best = subs[i].after(c.step)
		}
	}
	k, swapped := e.key(root)
	e.store(k, swapped, best)

	return best, nil
}

// stats snapshots the counters.
func (e *engine[S, K]) stats() Stats {
	return Stats{
		Calls:     e.calls.Load(),
		CacheHits: e.cache.Hits(),
		CacheSize: e.cache.Len(),
	}
}

// advance moves one agent from a to the flow valve dest and opens it.
// It reports false when dest is open, unreachable, or cannot be opened
// before the budget ends.
func advance(t *distance.Table, budget int, a agent, opened uint64, dest int) (agent, Step, bool) {
	if opened&t.Mask(dest) != 0 {
		return agent{}, Step{}, false
	}
	d, ok := t.Distance(a.at, dest)
	if !ok {
		return agent{}, Step{}, false
	}
	minute := a.elapsed + d + 1
	if minute >= budget {
		return agent{}, Step{}, false
	}

	return agent{at: dest, elapsed: minute}, Step{
		Valve:    t.ID(dest),
		Minute:   minute,
		Released: (budget - minute) * t.Flow(dest),
	}, true
}
