package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvesearch/bfs"
	"github.com/katalvlaran/valvesearch/config"
	"github.com/katalvlaran/valvesearch/parse"
	"github.com/katalvlaran/valvesearch/search"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Example(t *testing.T) {
	out, _, err := execute(t, "solve", "--trace", "testdata/example.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "testdata/example.txt: part 1: 1651")
	assert.Contains(t, out, "testdata/example.txt: part 2: 1707")
	assert.Contains(t, out, "agent 1: [")
	assert.Contains(t, out, "    AA -> ", "walks start at the start valve")
}

func TestPrintTrace_Walks(t *testing.T) {
	p, err := parse.File("testdata/example.txt")
	require.NoError(t, err)

	r := search.Result{
		Mode: search.ModeDual,
		Steps: []search.Step{
			{Agent: 0, Valve: "CC", Minute: 3, Released: 46},
			{Agent: 1, Valve: "JJ", Minute: 3, Released: 483},
			{Agent: 0, Valve: "DD", Minute: 5, Released: 420},
		},
	}
	var out bytes.Buffer
	require.NoError(t, printTrace(context.Background(), &out, p.Network, "AA", r))
	assert.Equal(t, "  agent 0: [CC,DD]\n"+
		"    AA -> BB -> CC (open at minute 3, +46)\n"+
		"    CC -> DD (open at minute 5, +420)\n"+
		"  agent 1: [JJ]\n"+
		"    AA -> II -> JJ (open at minute 3, +483)\n", out.String())

	r.Steps = []search.Step{{Valve: "ZZ", Minute: 2}}
	err = printTrace(context.Background(), &out, p.Network, "AA", r)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestSolve_ConfigAndMetrics(t *testing.T) {
	out, errOut, err := execute(t, "solve", "--config", "testdata/valves.yaml", "--metrics", "testdata/example.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "part 2: 1707")
	assert.Contains(t, out, `valves_search_solves_total{mode="dual"} 1`)
	assert.NotContains(t, errOut, "level=INFO", "config sets warn")
}

func TestSolve_Mismatch(t *testing.T) {
	_, errOut, err := execute(t, "solve", "testdata/wrong.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMismatch))
	assert.Contains(t, err.Error(), "part 2: want 1700, got 1707")
	assert.Contains(t, errOut, "unexpected result")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	require.Error(t, err, "at least one file is required")

	_, _, err = execute(t, "solve", "testdata/absent.txt")
	require.Error(t, err)

	_, _, err = execute(t, "solve", "--start", "ZZ", "testdata/example.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed network")

	_, _, err = execute(t, "solve", "--workers", "-1", "testdata/example.txt")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_BudgetOverride(t *testing.T) {
	out, _, err := execute(t, "solve", "--single-budget", "2", "--dual-budget", "2", "--debug", "testdata/example.txt")
	require.Error(t, err, "expectations no longer match")
	assert.Contains(t, out, "part 1: 0")
	assert.Contains(t, out, "part 2: 0")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "valves version "))
}
