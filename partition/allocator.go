package partition

import (
	"fmt"
	"log/slog"
)

// Allocator places processes into a fixed, ordered set of partitions using
// first-fit. The zero value is not usable; construct with New.
type Allocator struct {
	parts []partition
	free  freeIndex

	// owners maps a process id to its partition position. With duplicates
	// allowed it only records the first holder in scan order.
	owners map[string]int

	total int
	opts  options
	log   *slog.Logger
}

// New creates one free partition per entry of sizes, preserving order.
// It fails with ErrInvalidConfiguration if sizes is empty or any entry is
// not positive.
func New(sizes []int, opts ...Option) (*Allocator, error) {
	if len(sizes) == 0 {
		return nil, &ConfigError{Position: -1}
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, &ConfigError{Position: i, Size: s}
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	parts := make([]partition, len(sizes))
	for i, s := range sizes {
		parts[i] = partition{size: s, free: true}
	}

	a := &Allocator{
		parts:  parts,
		free:   newFreeIndex(len(sizes)),
		owners: make(map[string]int),
		opts:   o,
		log:    o.logger,
	}
	a.log.Debug("allocator created", "partitions", len(sizes))
	return a, nil
}

// Len returns the number of partitions.
func (a *Allocator) Len() int { return len(a.parts) }

// Allocate places processID into the first free partition whose size is at
// least requested. On failure no partition changes.
func (a *Allocator) Allocate(processID string, requested int) (Placement, error) {
	if processID == "" || requested <= 0 {
		return Placement{}, fmt.Errorf("%w: process %q size %d", ErrInvalidRequest, processID, requested)
	}
	if !a.opts.allowDuplicates {
		if pos, ok := a.owners[processID]; ok {
			a.log.Debug("allocate rejected: duplicate", "process", processID, "partition", pos+1)
			return Placement{}, &DuplicateError{ProcessID: processID, Index: pos + 1}
		}
	}

	chosen := -1
	a.free.each(func(pos int) bool {
		if a.parts[pos].size >= requested {
			chosen = pos
			return false
		}
		return true
	})
	if chosen < 0 {
		a.log.Debug("allocate rejected: no fit", "process", processID, "requested", requested)
		return Placement{}, &NoFitError{ProcessID: processID, Requested: requested}
	}

	p := &a.parts[chosen]
	p.free = false
	p.occupant = processID
	p.requested = requested
	p.frag = p.size - requested
	a.free.markUsed(chosen)
	a.total += p.frag
	if cur, held := a.owners[processID]; !held || chosen < cur {
		a.owners[processID] = chosen
	}

	a.log.Debug("allocated",
		"process", processID,
		"partition", chosen+1,
		"size", p.size,
		"fragmentation", p.frag)

	return Placement{
		ProcessID:     processID,
		Index:         chosen + 1,
		Position:      chosen,
		Size:          p.size,
		Requested:     requested,
		Fragmentation: p.frag,
	}, nil
}

// Release frees the first partition, in scan order, occupied by processID.
func (a *Allocator) Release(processID string) (Release, error) {
	pos, ok := a.owners[processID]
	if !ok {
		a.log.Debug("release rejected: not found", "process", processID)
		return Release{}, &NotFoundError{ProcessID: processID}
	}

	p := &a.parts[pos]
	reclaimed := p.frag
	a.total -= p.frag
	p.free = true
	p.occupant = ""
	p.requested = 0
	p.frag = 0
	a.free.markFree(pos)

	delete(a.owners, processID)
	if a.opts.allowDuplicates {
		// Promote the next holder so a later release finds it.
		if next, found := a.scanOccupant(processID); found {
			a.owners[processID] = next
		}
	}

	a.log.Debug("released", "process", processID, "partition", pos+1, "reclaimed", reclaimed)

	return Release{
		ProcessID: processID,
		Index:     pos + 1,
		Position:  pos,
		Size:      p.size,
		Reclaimed: reclaimed,
	}, nil
}

// scanOccupant returns the first position occupied by processID.
func (a *Allocator) scanOccupant(processID string) (int, bool) {
	for i := range a.parts {
		if !a.parts[i].free && a.parts[i].occupant == processID {
			return i, true
		}
	}
	return 0, false
}

// Lookup returns the view of the first partition occupied by processID.
func (a *Allocator) Lookup(processID string) (View, bool) {
	pos, ok := a.owners[processID]
	if !ok {
		return View{}, false
	}
	return a.view(pos), true
}

// Snapshot returns a view of every partition in creation order.
func (a *Allocator) Snapshot() []View {
	out := make([]View, len(a.parts))
	for i := range a.parts {
		out[i] = a.view(i)
	}
	return out
}

func (a *Allocator) view(pos int) View {
	p := a.parts[pos]
	return View{
		Index:         pos + 1,
		Size:          p.size,
		Free:          p.free,
		Occupant:      p.occupant,
		Requested:     p.requested,
		Fragmentation: p.frag,
	}
}

// TotalInternalFragmentation returns the sum of internal fragmentation over
// all partitions.
func (a *Allocator) TotalInternalFragmentation() int { return a.total }

// Stats returns aggregate counters for the current state.
func (a *Allocator) Stats() Stats {
	s := Stats{
		Partitions:    len(a.parts),
		Free:          a.free.count(),
		Fragmentation: a.total,
	}
	s.Occupied = s.Partitions - s.Free
	for _, p := range a.parts {
		s.Capacity += p.size
		s.Requested += p.requested
		if p.free && p.size > s.LargestFree {
			s.LargestFree = p.size
		}
	}
	return s
}
