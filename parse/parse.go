// Package parse reads puzzle files into a core.Network.
//
// A valve line looks like
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// and the singular form ("tunnel leads to valve GG") is accepted too.
// Blank lines are skipped. Lines starting with "result part 1: " or
// "result part 2: " carry the expected answers used by the CLI.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvesearch/core"
)

// ErrMalformedLine is returned for a line that is neither a valve nor an
// expectation.
var ErrMalformedLine = errors.New("parse: malformed line")

var valveLine = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

var expectPrefixes = [2]string{"result part 1: ", "result part 2: "}

// Puzzle is a parsed input file.
type Puzzle struct {
	Network *core.Network
	// Expected holds the announced answers; empty when not given.
	Expected [2]string
}

// Line parses one valve line.
func Line(line string) (id string, flow int, tunnels []string, err error) {
	m := valveLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", 0, nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	flow, err = strconv.Atoi(m[2])
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: flow rate in %q: %w", ErrMalformedLine, line, err)
	}
	for _, t := range strings.Split(m[3], ",") {
		if t = strings.TrimSpace(t); t != "" {
			tunnels = append(tunnels, t)
		}
	}

	return m[1], flow, tunnels, nil
}

// Read parses a whole puzzle from r.
func Read(r io.Reader, opts ...core.NetworkOption) (*Puzzle, error) {
	p := &Puzzle{Network: core.NewNetwork(opts...)}
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if part, value, ok := expectation(line); ok {
			p.Expected[part] = value
			continue
		}
		id, flow, tunnels, err := Line(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", no, err)
		}
		if err := p.Network.AddValve(id, flow, tunnels...); err != nil {
			return nil, fmt.Errorf("line %d: %w", no, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: reading input: %w", err)
	}

	return p, nil
}

// File opens and parses path.
func File(path string, opts ...core.NetworkOption) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer f.Close()

	p, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func expectation(line string) (part int, value string, ok bool) {
	for i, prefix := range expectPrefixes {
		if strings.HasPrefix(line, prefix) {
			return i, strings.TrimSpace(line[len(prefix):]), true
		}
	}

	return 0, "", false
}
