package session

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/partsim/internal/script"
	"github.com/joshuapare/partsim/partition"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	a, err := partition.New([]int{100, 150, 200, 250, 300})
	require.NoError(t, err)
	return New(a)
}

func parse(t *testing.T, src string) []script.Command {
	t.Helper()
	cmds, err := script.Parse(strings.NewReader(src), script.Options{})
	require.NoError(t, err)
	return cmds
}

func TestRun_ContinuesAfterFailures(t *testing.T) {
	s := newSession(t)
	cmds := parse(t, `
allocate P1 90
allocate P1 10
release P9
allocate P5 350
allocate P2 140
total
`)

	outcomes, err := s.Run(context.Background(), cmds)
	require.NoError(t, err)
	require.Len(t, outcomes, 6)

	assert.True(t, outcomes[0].OK())
	assert.ErrorIs(t, outcomes[1].Err, partition.ErrDuplicateProcess)
	assert.ErrorIs(t, outcomes[2].Err, partition.ErrProcessNotFound)
	assert.ErrorIs(t, outcomes[3].Err, partition.ErrNoSuitablePartition)
	require.NotNil(t, outcomes[4].Placement)
	assert.Equal(t, 2, outcomes[4].Placement.Index)
	require.NotNil(t, outcomes[5].Total)
	assert.Equal(t, 20, *outcomes[5].Total)

	assert.Equal(t, Summary{Commands: 6, Succeeded: 3, Failed: 3}, Summarize(outcomes))
}

func TestExec_Payloads(t *testing.T) {
	s := newSession(t)

	o := s.Exec(script.Command{Kind: script.KindAllocate, ProcessID: "P1", Size: 90})
	require.NotNil(t, o.Placement)
	assert.Nil(t, o.Release)

	o = s.Exec(script.Command{Kind: script.KindReport})
	require.Len(t, o.Views, 5)
	assert.Equal(t, "P1", o.Views[0].Occupant)

	o = s.Exec(script.Command{Kind: script.KindStats})
	require.NotNil(t, o.Stats)
	assert.Equal(t, 1, o.Stats.Occupied)

	o = s.Exec(script.Command{Kind: script.KindRelease, ProcessID: "P1"})
	require.NotNil(t, o.Release)
	assert.Equal(t, 10, o.Release.Reclaimed)

	o = s.Exec(script.Command{Kind: script.Kind(42)})
	assert.ErrorIs(t, o.Err, script.ErrUnknownCommand)
}

func TestRun_Cancelled(t *testing.T) {
	s := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := s.Run(ctx, parse(t, "allocate P1 90\n"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
	assert.Zero(t, s.Allocator().Stats().Occupied)
}

func TestSession_Synchronized(t *testing.T) {
	a, err := partition.New([]int{10})
	require.NoError(t, err)
	s := New(partition.NewSynchronized(a))

	o := s.Exec(script.Command{Kind: script.KindAllocate, ProcessID: "P1", Size: 10})
	require.True(t, o.OK())
	assert.Zero(t, o.Placement.Fragmentation)
}
