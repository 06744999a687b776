package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvesearch/core"
)

// TestAddValve_Errors verifies argument validation on insertion.
func TestAddValve_Errors(t *testing.T) {
	n := core.NewNetwork()
	require.ErrorIs(t, n.AddValve("", 3), core.ErrEmptyValveID)
	require.ErrorIs(t, n.AddValve("AA", -1), core.ErrNegativeFlow)

	require.NoError(t, n.AddValve("AA", 0, "BB"))
	require.ErrorIs(t, n.AddValve("AA", 5), core.ErrDuplicateValve)
	assert.Equal(t, 1, n.ValveCount())
}

// TestQueries_Sorted checks that enumerations are sorted and copies are detached.
func TestQueries_Sorted(t *testing.T) {
	n := core.NewNetwork(core.WithCapacity(4))
	require.NoError(t, n.AddValve("DD", 20, "CC", "AA"))
	require.NoError(t, n.AddValve("AA", 0, "DD", "BB", "", "BB"))
	require.NoError(t, n.AddValve("BB", 13, "AA", "CC"))
	require.NoError(t, n.AddValve("CC", 2, "DD", "BB"))

	assert.Equal(t, []string{"AA", "BB", "CC", "DD"}, n.ValveIDs())
	assert.Equal(t, []string{"BB", "CC", "DD"}, n.FlowValveIDs())

	ids, err := n.TunnelIDs("AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"BB", "DD"}, ids, "duplicates and empty names are dropped")

	v, err := n.Valve("DD")
	require.NoError(t, err)
	assert.Equal(t, 20, v.Flow)
	assert.True(t, v.HasFlow())
	v.Tunnels[0] = "ZZ"
	again, _ := n.Valve("DD")
	assert.Equal(t, "CC", again.Tunnels[0], "Valve must return a copy")

	_, err = n.Valve("QQ")
	assert.ErrorIs(t, err, core.ErrValveNotFound)
	_, err = n.TunnelIDs("QQ")
	assert.ErrorIs(t, err, core.ErrValveNotFound)
	assert.False(t, n.HasValve(""))
}

// TestSymmetricTunnels checks that one-sided tunnel lists are mirrored.
func TestSymmetricTunnels(t *testing.T) {
	n := core.NewNetwork(core.WithSymmetricTunnels())
	require.NoError(t, n.AddValve("AA", 0, "BB"))
	require.NoError(t, n.AddValve("BB", 5))

	ids, err := n.TunnelIDs("BB")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA"}, ids)
	require.NoError(t, n.Validate("AA"))
}

// TestValidate covers both malformed-network causes.
func TestValidate(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddValve("AA", 0, "BB"))

	err := n.Validate("AA")
	require.ErrorIs(t, err, core.ErrMalformedNetwork)
	require.ErrorIs(t, err, core.ErrDanglingTunnel)

	require.NoError(t, n.AddValve("BB", 1, "AA"))
	require.NoError(t, n.Validate("AA"))

	err = n.Validate("ZZ")
	require.ErrorIs(t, err, core.ErrMalformedNetwork)
	require.True(t, errors.Is(err, core.ErrValveNotFound))
}

// TestValidate_StableReport reports the dangling tunnel of the lowest
// valve ID on every call, mirrored tunnels included.
func TestValidate_StableReport(t *testing.T) {
	n := core.NewNetwork(core.WithSymmetricTunnels())
	require.NoError(t, n.AddValve("MM", 0, "ZZ"))
	require.NoError(t, n.AddValve("CC", 0, "YY", "MM"))
	require.NoError(t, n.AddValve("AA", 0, "CC"))

	for i := 0; i < 20; i++ {
		err := n.Validate("AA")
		require.ErrorIs(t, err, core.ErrDanglingTunnel)
		assert.Contains(t, err.Error(), `"CC" -> "YY"`)
	}
}

// TestConcurrentAdd exercises the lock under parallel writers and readers.
func TestConcurrentAdd(t *testing.T) {
	n := core.NewNetwork()
	ids := []string{"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH"}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(2)
		go func(id string, flow int) {
			defer wg.Done()
			_ = n.AddValve(id, flow, "AA")
		}(id, i)
		go func() {
			defer wg.Done()
			_ = n.FlowValveIDs()
		}()
	}
	wg.Wait()

	assert.Equal(t, len(ids), n.ValveCount())
	assert.Len(t, n.FlowValveIDs(), len(ids)-1)
}
