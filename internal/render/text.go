// Package render turns allocator results into text and JSON. The allocator
// itself never formats messages.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/partsim/internal/session"
	"github.com/joshuapare/partsim/partition"
)

// StatusLabel returns FREE or OCCUPIED(<process>).
func StatusLabel(v partition.View) string {
	if v.Free {
		return partition.StatusFree.String()
	}
	return fmt.Sprintf("%s(%s)", partition.StatusOccupied, v.Occupant)
}

// ReportLine renders one partition.
func ReportLine(v partition.View) string {
	return fmt.Sprintf("Partition %d - Size: %d - %s - Internal fragmentation: %d",
		v.Index, v.Size, StatusLabel(v), v.Fragmentation)
}

// Report renders one line per partition in creation order.
func Report(views []partition.View) string {
	lines := make([]string, len(views))
	for i, v := range views {
		lines[i] = ReportLine(v)
	}
	return strings.Join(lines, "\n")
}

// Total renders the total internal fragmentation.
func Total(total int) string {
	return fmt.Sprintf("Total internal fragmentation: %d", total)
}

// Stats renders aggregate counters on one line.
func Stats(s partition.Stats) string {
	return fmt.Sprintf(
		"Partitions: %d (%d occupied, %d free) - Capacity: %d - Requested: %d - Internal fragmentation: %d - Utilization: %.1f%% - Largest free: %d",
		s.Partitions, s.Occupied, s.Free, s.Capacity, s.Requested,
		s.Fragmentation, s.Utilization()*100, s.LargestFree)
}

// Placement renders a successful allocation.
func Placement(p partition.Placement) string {
	return fmt.Sprintf("Process %s allocated to partition %d (size %d). Internal fragmentation: %d",
		p.ProcessID, p.Index, p.Size, p.Fragmentation)
}

// Release renders a successful release.
func Release(r partition.Release) string {
	return fmt.Sprintf("Process %s released.", r.ProcessID)
}

// Error renders an allocator or session failure.
func Error(err error) string {
	var (
		noFit    *partition.NoFitError
		notFound *partition.NotFoundError
		dup      *partition.DuplicateError
	)
	switch {
	case errors.As(err, &noFit):
		return fmt.Sprintf("No partition available for process %s (size %d)",
			noFit.ProcessID, noFit.Requested)
	case errors.As(err, &notFound):
		return fmt.Sprintf("Process %s not found.", notFound.ProcessID)
	case errors.As(err, &dup):
		return fmt.Sprintf("Process %s is already allocated (partition %d)",
			dup.ProcessID, dup.Index)
	case errors.Is(err, partition.ErrInvalidRequest):
		return "Invalid request: " + strings.TrimPrefix(err.Error(), partition.ErrInvalidRequest.Error()+": ")
	default:
		return "Error: " + err.Error()
	}
}

// Outcome renders the human-readable result of one command.
func Outcome(o session.Outcome) string {
	switch {
	case o.Err != nil:
		return Error(o.Err)
	case o.Placement != nil:
		return Placement(*o.Placement)
	case o.Release != nil:
		return Release(*o.Release)
	case o.Total != nil:
		return Total(*o.Total)
	case o.Stats != nil:
		return Stats(*o.Stats)
	default:
		return Report(o.Views)
	}
}
