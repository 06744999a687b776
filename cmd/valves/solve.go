package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvesearch/bfs"
	"github.com/katalvlaran/valvesearch/config"
	"github.com/katalvlaran/valvesearch/core"
	"github.com/katalvlaran/valvesearch/internal/logging"
	"github.com/katalvlaran/valvesearch/metrics"
	"github.com/katalvlaran/valvesearch/parse"
	"github.com/katalvlaran/valvesearch/search"
)

// errMismatch is returned when an answer differs from the file's expectation.
var errMismatch = errors.New("result differs from expected")

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve puzzle files in single and dual mode",
		Long: `Solve parses every FILE, prints the best pressure for one agent (part 1)
and for two agents (part 2), and checks them against "result part N: X" lines.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSolve,
	}
	f := cmd.Flags()
	f.String("start", "", "Start valve (overrides config)")
	f.Int("single-budget", 0, "Minutes for the single agent (overrides config)")
	f.Int("dual-budget", 0, "Minutes per agent in dual mode (overrides config)")
	f.Int("workers", 0, "Concurrent first-level workers (overrides config)")
	f.Bool("canonical", false, "Merge label-swapped dual states in the cache")
	f.Bool("symmetric", false, "Mirror every tunnel (for inputs listing each tunnel once)")
	f.Bool("trace", false, "Print the opening order of the best plans")
	f.Bool("metrics", false, "Print search metrics in Prometheus text format")

	return cmd
}

// loadConfig reads --config and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("start") {
		c.Start, _ = f.GetString("start")
	}
	if f.Changed("single-budget") {
		c.SingleBudget, _ = f.GetInt("single-budget")
	}
	if f.Changed("dual-budget") {
		c.DualBudget, _ = f.GetInt("dual-budget")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("canonical") {
		c.CanonicalDualKeys, _ = f.GetBool("canonical")
	}
	if f.Changed("symmetric") {
		c.SymmetricTunnels, _ = f.GetBool("symmetric")
	}
	if f.Changed("log-level") {
		c.LogLevel, _ = f.GetString("log-level")
	}
	if debug, _ := f.GetBool("debug"); debug {
		c.LogLevel = "debug"
	}

	return c, c.Validate()
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(c.LogLevel)
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	rec := metrics.NewRecorder()
	opts := append(c.SearchOptions(), search.WithLogger(logger), search.WithObserver(rec.Observe))

	var netOpts []core.NetworkOption
	if c.SymmetricTunnels {
		netOpts = append(netOpts, core.WithSymmetricTunnels())
	}
	trace, _ := cmd.Flags().GetBool("trace")

	var mismatches []string
	for _, file := range args {
		bad, err := solveFile(cmd, logger, c, file, netOpts, opts, trace)
		if err != nil {
			return err
		}
		mismatches = append(mismatches, bad...)
	}

	if show, _ := cmd.Flags().GetBool("metrics"); show {
		if err := rec.WriteText(cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %s", errMismatch, strings.Join(mismatches, ", "))
	}

	return nil
}

// solveFile runs both modes on one file and returns the parts that did
// not match their expectation.
func solveFile(
	cmd *cobra.Command,
	logger *slog.Logger,
	c config.Config,
	file string,
	netOpts []core.NetworkOption,
	opts []search.Option,
	trace bool,
) ([]string, error) {
	p, err := parse.File(file, netOpts...)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed puzzle", "file", file, "valves", p.Network.ValveCount(),
		"with_flow", len(p.Network.FlowValveIDs()))

	ctx := cmd.Context()
	solver, err := search.NewSolver(ctx, p.Network, c.Start, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	one, err := solver.Single(ctx, c.SingleBudget)
	if err != nil {
		return nil, fmt.Errorf("%s: single: %w", file, err)
	}
	two, err := solver.Dual(ctx, c.DualBudget)
	if err != nil {
		return nil, fmt.Errorf("%s: dual: %w", file, err)
	}

	out := cmd.OutOrStdout()
	var bad []string
	for part, r := range []search.Result{one, two} {
		logger.Info("solved", "file", file, "mode", r.Mode, "total", r.Total,
			"calls", r.Stats.Calls, "cache_hits", r.Stats.CacheHits,
			"cache_size", r.Stats.CacheSize, "elapsed", r.Stats.Duration)
		fmt.Fprintf(out, "%s: part %d: %d\n", file, part+1, r.Total)
		if trace {
			if err := printTrace(ctx, out, p.Network, c.Start, r); err != nil {
				return nil, fmt.Errorf("%s: trace: %w", file, err)
			}
		}

		want := p.Expected[part]
		if want == "" {
			continue
		}
		if got := strconv.Itoa(r.Total); got != want {
			logger.Error("unexpected result", "file", file, "part", part+1, "want", want, "got", got)
			bad = append(bad, fmt.Sprintf("%s part %d: want %s, got %s", file, part+1, want, got))
		} else {
			logger.Info("found expected result", "file", file, "part", part+1)
		}
	}

	return bad, nil
}

// printTrace lists, per agent, the valves opened and the tunnels walked to
// reach each of them.
func printTrace(ctx context.Context, w io.Writer, n *core.Network, start string, r search.Result) error {
	agents := 1
	if r.Mode == search.ModeDual {
		agents = 2
	}
	walks := make(map[string]*bfs.Result)
	for a := 0; a < agents; a++ {
		fmt.Fprintf(w, "  agent %d: [%s]\n", a, strings.Join(r.Path(a), ","))
		from := start
		for _, s := range r.Steps {
			if s.Agent != a {
				continue
			}
			res, ok := walks[from]
			if !ok {
				var err error
				if res, err = bfs.BFS(n, from, bfs.WithContext(ctx)); err != nil {
					return err
				}
				walks[from] = res
			}
			hops, err := res.PathTo(s.Valve)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "    %s (open at minute %d, +%d)\n", strings.Join(hops, " -> "), s.Minute, s.Released)
			from = s.Valve
		}
	}

	return nil
}
