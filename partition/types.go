package partition

// Status is the state of a single partition.
type Status uint8

const (
	StatusFree Status = iota
	StatusOccupied
)

func (s Status) String() string {
	if s == StatusOccupied {
		return "OCCUPIED"
	}
	return "FREE"
}

// partition is the mutable record held by the Allocator.
// occupant is "" and requested is 0 iff free.
type partition struct {
	size      int
	free      bool
	occupant  string
	requested int
	frag      int
}

// View is a read-only projection of one partition.
type View struct {
	Index         int    `json:"index"` // 1-based, creation order
	Size          int    `json:"size"`
	Free          bool   `json:"free"`
	Occupant      string `json:"occupant,omitempty"`
	Requested     int    `json:"requested,omitempty"`
	Fragmentation int    `json:"fragmentation"`
}

// Status reports whether the partition is free or occupied.
func (v View) Status() Status {
	if v.Free {
		return StatusFree
	}
	return StatusOccupied
}

// Placement describes a successful allocation.
type Placement struct {
	ProcessID     string `json:"process"`
	Index         int    `json:"index"`    // 1-based
	Position      int    `json:"position"` // 0-based
	Size          int    `json:"size"`
	Requested     int    `json:"requested"`
	Fragmentation int    `json:"fragmentation"`
}

// Release describes a successful release.
type Release struct {
	ProcessID string `json:"process"`
	Index     int    `json:"index"`    // 1-based
	Position  int    `json:"position"` // 0-based
	Size      int    `json:"size"`
	// Reclaimed is the internal fragmentation that the release removed.
	Reclaimed int `json:"reclaimed"`
}

// Stats aggregates the allocator state.
type Stats struct {
	Partitions    int `json:"partitions"`
	Occupied      int `json:"occupied"`
	Free          int `json:"free"`
	Capacity      int `json:"capacity"`
	Requested     int `json:"requested"`
	Fragmentation int `json:"fragmentation"`
	LargestFree   int `json:"largest_free"`
}

// Utilization returns the fraction of total capacity handed to occupants.
func (s Stats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Requested) / float64(s.Capacity)
}

// Interface is the operation set shared by Allocator and Synchronized.
type Interface interface {
	Allocate(processID string, requested int) (Placement, error)
	Release(processID string) (Release, error)
	Snapshot() []View
	TotalInternalFragmentation() int
	Stats() Stats
	Len() int
}
