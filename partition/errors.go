package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates an empty layout or a non-positive partition size.
	ErrInvalidConfiguration = errors.New("partition: invalid configuration")

	// ErrInvalidRequest indicates an empty process id or a non-positive requested size.
	ErrInvalidRequest = errors.New("partition: invalid request")

	// ErrNoSuitablePartition indicates that no free partition is large enough.
	ErrNoSuitablePartition = errors.New("partition: no suitable partition")

	// ErrProcessNotFound indicates a release for a process that occupies no partition.
	ErrProcessNotFound = errors.New("partition: process not found")

	// ErrDuplicateProcess indicates an allocation for a process that already occupies a partition.
	ErrDuplicateProcess = errors.New("partition: process already allocated")
)

// ConfigError reports the first offending entry of a rejected layout.
// Position is -1 when the layout itself is empty.
type ConfigError struct {
	Position int
	Size     int
}

func (e *ConfigError) Error() string {
	if e.Position < 0 {
		return "partition: invalid configuration: no partitions"
	}
	return fmt.Sprintf("partition: invalid configuration: partition %d has size %d",
		e.Position+1, e.Size)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// NoFitError is returned by Allocate when no free partition can hold the request.
type NoFitError struct {
	ProcessID string
	Requested int
}

func (e *NoFitError) Error() string {
	return fmt.Sprintf("partition: no suitable partition for process %s (size %d)",
		e.ProcessID, e.Requested)
}

func (e *NoFitError) Unwrap() error { return ErrNoSuitablePartition }

// NotFoundError is returned by Release when the process occupies nothing.
type NotFoundError struct {
	ProcessID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("partition: process %s not found", e.ProcessID)
}

func (e *NotFoundError) Unwrap() error { return ErrProcessNotFound }

// DuplicateError is returned by Allocate when the process already holds a partition.
type DuplicateError struct {
	ProcessID string
	Index     int // 1-based index of the partition already held
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("partition: process %s already occupies partition %d",
		e.ProcessID, e.Index)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateProcess }
