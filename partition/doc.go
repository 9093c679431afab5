// Package partition simulates fixed-partition memory allocation.
//
// # Overview
//
// An Allocator owns an ordered sequence of partitions whose count and sizes are
// fixed at construction. Named processes are placed into partitions with a
// first-fit policy, released on demand, and the unused capacity inside each
// occupied partition (internal fragmentation) is tracked as it changes.
//
// # First-Fit Placement
//
// Allocate scans partitions in creation order and takes the first free
// partition whose size is at least the requested size. A later partition that
// would fit more tightly is never preferred:
//
//	a, _ := partition.New([]int{100, 150, 200, 250, 300})
//	p, _ := a.Allocate("P1", 90)  // partition 1 (size 100), fragmentation 10
//	p, _ = a.Allocate("P2", 140)  // partition 2 (size 150), fragmentation 10
//
// The free positions are indexed in a roaring bitmap. Iterating it in
// ascending order visits exactly the free partitions in creation order, so
// the scan skips occupied partitions without changing which one is chosen.
//
// # Partition States
//
// Each partition is either FREE or OCCUPIED:
//
//	FREE     --Allocate-->  OCCUPIED
//	OCCUPIED --Release--->  FREE
//
// A free partition has no occupant and zero fragmentation. An occupied
// partition has exactly one occupant and fragmentation size - requested.
//
// # Errors
//
// Failures never mutate state. Rejections are returned as typed errors that
// match the package sentinels with errors.Is:
//
//   - ErrInvalidConfiguration: empty layout or a non-positive size
//   - ErrInvalidRequest: empty process id or non-positive size
//   - ErrDuplicateProcess: the process already occupies a partition
//   - ErrNoSuitablePartition: no free partition is large enough
//   - ErrProcessNotFound: release of a process that occupies nothing
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Wrap one with NewSynchronized when
// several goroutines share it; Allocate and Release are check-then-act
// sequences and must not interleave.
package partition
