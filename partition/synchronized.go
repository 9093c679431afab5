package partition

import "sync"

// Synchronized serializes access to an Allocator with a single mutex.
type Synchronized struct {
	mu sync.Mutex
	a  *Allocator
}

// NewSynchronized wraps a. The caller must not use a directly afterwards.
func NewSynchronized(a *Allocator) *Synchronized {
	return &Synchronized{a: a}
}

// Allocate calls Allocator.Allocate under the lock.
func (s *Synchronized) Allocate(processID string, requested int) (Placement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(processID, requested)
}

// Release calls Allocator.Release under the lock.
func (s *Synchronized) Release(processID string) (Release, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Release(processID)
}

// Lookup calls Allocator.Lookup under the lock.
func (s *Synchronized) Lookup(processID string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Lookup(processID)
}

// Snapshot calls Allocator.Snapshot under the lock.
func (s *Synchronized) Snapshot() []View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Snapshot()
}

// TotalInternalFragmentation calls Allocator.TotalInternalFragmentation under the lock.
func (s *Synchronized) TotalInternalFragmentation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalInternalFragmentation()
}

// Stats calls Allocator.Stats under the lock.
func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Stats()
}

// Len does not lock; the partition count never changes.
func (s *Synchronized) Len() int { return s.a.Len() }

var (
	_ Interface = (*Allocator)(nil)
	_ Interface = (*Synchronized)(nil)
)
