package search

import (
	"context"
	"time"

	"github.com/katalvlaran/valvesearch/core"
	"github.com/katalvlaran/valvesearch/distance"
)

// Result is the outcome of one solve.
type Result struct {
	Mode   Mode
	Budget int
	// Total is the pressure released by the best plan.
	Total int
	// Steps is the best plan in decision order.
	Steps []Step
	Stats Stats
}

// Path returns the valves opened by agent, in order.
func (r Result) Path(agent int) []string {
	var out []string
	for _, s := range r.Steps {
		if s.Agent == agent {
			out = append(out, s.Valve)
		}
	}

	return out
}

// Solver runs both searches over one distance table. The table is built
// once; every call gets a fresh cache.
type Solver struct {
	table *distance.Table
	opts  []Option
}

// NewSolver validates n, builds its distance table from start and keeps
// opts for every later solve. ctx bounds the table build only.
//
// Errors: those of distance.Build (malformed network, too many valves,
// cancellation) and ErrOptionViolation.
func NewSolver(ctx context.Context, n *core.Network, start string, opts ...Option) (*Solver, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	t, err := distance.Build(ctx, n, start)
	if err != nil {
		return nil, err
	}

	return &Solver{table: t, opts: opts}, nil
}

// Table exposes the distance table the solver moves on.
func (s *Solver) Table() *distance.Table { return s.table }

// Single returns the most pressure one agent releases within budget.
func (s *Solver) Single(ctx context.Context, budget int, opts ...Option) (Result, error) {
	o, err := s.prepare(budget, opts)
	if err != nil {
		return Result{}, err
	}
	e := newSingleEngine(ctx, s.table, budget, o)

	return finish(e, singleRoot(s.table), budget)
}

// Dual returns the most pressure two agents release when each has budget
// minutes, starting together and never opening the same valve twice.
func (s *Solver) Dual(ctx context.Context, budget int, opts ...Option) (Result, error) {
	o, err := s.prepare(budget, opts)
	if err != nil {
		return Result{}, err
	}
	e := newDualEngine(ctx, s.table, budget, o)

	return finish(e, dualRoot(s.table), budget)
}

func (s *Solver) prepare(budget int, extra []Option) (Options, error) {
	if err := checkBudget(budget); err != nil {
		return Options{}, err
	}
	all := make([]Option, 0, len(s.opts)+len(extra))
	all = append(all, s.opts...)
	all = append(all, extra...)

	return buildOptions(all)
}

// finish runs e from root and packs the result.
func finish[S any, K comparable](e *engine[S, K], root S, budget int) (Result, error) {
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	t0 := time.Now()
	best, err := e.run(root)
	if err != nil {
		return Result{}, err
	}
	st := e.stats()
	st.Duration = time.Since(t0)
	if e.opts.Observer != nil {
		e.opts.Observer(e.mode, st)
	}

	return Result{
		Mode:   e.mode,
		Budget: budget,
		Total:  best.Gain,
		Steps:  best.Steps,
		Stats:  st,
	}, nil
}

// SolveSingle builds the distance table of n from start and runs the
// single-agent search.
func SolveSingle(ctx context.Context, n *core.Network, start string, budget int, opts ...Option) (Result, error) {
	s, err := NewSolver(ctx, n, start, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Single(ctx, budget)
}

// SolveDual builds the distance table of n from start and runs the
// dual-agent search with budget minutes per agent.
func SolveDual(ctx context.Context, n *core.Network, start string, budget int, opts ...Option) (Result, error) {
	s, err := NewSolver(ctx, n, start, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Dual(ctx, budget)
}
