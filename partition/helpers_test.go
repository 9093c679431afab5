package partition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceSizes is the layout used by the reference trace.
var referenceSizes = []int{100, 150, 200, 250, 300}

func newTestAllocator(t *testing.T, opts ...Option) *Allocator {
	t.Helper()
	a, err := New(referenceSizes, opts...)
	require.NoError(t, err)
	return a
}

// requireInvariants checks every per-partition invariant and that the
// incrementally maintained indexes agree with the partition records.
func requireInvariants(t *testing.T, a *Allocator) {
	t.Helper()

	sum := 0
	for i, p := range a.parts {
		require.Equal(t, p.free, a.free.isFree(i), "free index mismatch at partition %d", i+1)
		if p.free {
			require.Empty(t, p.occupant, "free partition %d has occupant", i+1)
			require.Zero(t, p.frag, "free partition %d has fragmentation", i+1)
			require.Zero(t, p.requested, "free partition %d has requested size", i+1)
		} else {
			require.NotEmpty(t, p.occupant, "occupied partition %d has no occupant", i+1)
			require.Equal(t, p.size-p.requested, p.frag, "partition %d fragmentation", i+1)
			require.GreaterOrEqual(t, p.frag, 0)
			require.LessOrEqual(t, p.frag, p.size)
		}
		sum += p.frag
	}
	require.Equal(t, sum, a.TotalInternalFragmentation())

	snapSum := 0
	for _, v := range a.Snapshot() {
		snapSum += v.Fragmentation
	}
	require.Equal(t, snapSum, a.TotalInternalFragmentation())

	for id, pos := range a.owners {
		first, ok := a.scanOccupant(id)
		require.True(t, ok, "owner %s not found by scan", id)
		require.Equal(t, first, pos, "owner %s should map to first holder", id)
	}
	if !a.opts.allowDuplicates {
		seen := map[string]bool{}
		for _, p := range a.parts {
			if p.free {
				continue
			}
			require.False(t, seen[p.occupant], "process %s occupies two partitions", p.occupant)
			seen[p.occupant] = true
		}
		require.Len(t, a.owners, len(seen))
	}
}
