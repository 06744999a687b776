package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/valvesearch/bfs"
	"github.com/katalvlaran/valvesearch/core"
)

// ring builds AA–BB–CC–DD–AA with both directions listed.
func ring(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, v := range []struct {
		id      string
		tunnels []string
	}{
		{"AA", []string{"BB", "DD"}},
		{"BB", []string{"AA", "CC"}},
		{"CC", []string{"BB", "DD"}},
		{"DD", []string{"CC", "AA"}},
	} {
		if err := n.AddValve(v.id, 1, v.tunnels...); err != nil {
			t.Fatalf("AddValve(%s): %v", v.id, err)
		}
	}
	return n
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "AA"); !errors.Is(err, bfs.ErrNetworkNil) {
		t.Errorf("nil network: want ErrNetworkNil, got %v", err)
	}
	n := ring(t)
	if _, err := bfs.BFS(n, "ZZ"); !errors.Is(err, bfs.ErrStartValveNotFound) {
		t.Errorf("missing start: want ErrStartValveNotFound, got %v", err)
	}
}

// TestBFS_RingDepths checks depths and parent links on a cycle.
func TestBFS_RingDepths(t *testing.T) {
	res, err := bfs.BFS(ring(t), "AA")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"AA": 0, "BB": 1, "DD": 1, "CC": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo("CC")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"AA", "BB", "CC"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(CC) = %v; want %v", path, want)
	}
	path, _ = res.PathTo("AA")
	if want := []string{"AA"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(AA) = %v; want %v", path, want)
	}
}

// TestBFS_DanglingTunnel surfaces an unknown tunnel target as ErrNeighbors.
func TestBFS_DanglingTunnel(t *testing.T) {
	n := core.NewNetwork()
	_ = n.AddValve("AA", 0, "XX")
	_, err := bfs.BFS(n, "AA")
	if !errors.Is(err, bfs.ErrNeighbors) || !errors.Is(err, core.ErrValveNotFound) {
		t.Errorf("want ErrNeighbors wrapping ErrValveNotFound, got %v", err)
	}
}

// TestBFS_Disconnected ensures only the start's component is explored.
func TestBFS_Disconnected(t *testing.T) {
	n := core.NewNetwork()
	_ = n.AddValve("AA", 0, "BB")
	_ = n.AddValve("BB", 3, "AA")
	_ = n.AddValve("CC", 9)

	res, err := bfs.BFS(n, "AA")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth["CC"]; ok {
		t.Errorf("CC must be unreachable, got depth %d", res.Depth["CC"])
	}
	if _, err := res.PathTo("CC"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(CC): want ErrNoPath, got %v", err)
	}
}

// TestBFS_Cancelled stops a walk whose context is already done.
func TestBFS_Cancelled(t *testing.T) {
	n := ring(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(n, "AA", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}
