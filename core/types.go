// This file declares Process, Resource, AllocationMatrix, their
// constructors, and the sentinel errors reported by Validate.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix validation.
//
// ErrInvalidMatrix is the base sentinel: every specific violation wraps
// it, so errors.Is(err, ErrInvalidMatrix) matches any of them.
var (
	// ErrNilMatrix indicates a nil *AllocationMatrix was passed.
	ErrNilMatrix = errors.New("core: matrix is nil")

	// ErrInvalidMatrix is the base sentinel for all invariant violations.
	ErrInvalidMatrix = errors.New("core: invalid allocation matrix")

	// ErrEmptyProcessID indicates a process with an empty ID.
	ErrEmptyProcessID = fmt.Errorf("%w: empty process id", ErrInvalidMatrix)

	// ErrEmptyResourceID indicates a resource with an empty ID.
	ErrEmptyResourceID = fmt.Errorf("%w: empty resource id", ErrInvalidMatrix)

	// ErrDuplicateProcessID indicates two processes sharing one ID.
	ErrDuplicateProcessID = fmt.Errorf("%w: duplicate process id", ErrInvalidMatrix)

	// ErrDuplicateResourceID indicates two resources sharing one ID.
	ErrDuplicateResourceID = fmt.Errorf("%w: duplicate resource id", ErrInvalidMatrix)

	// ErrIDCollision indicates one ID used by both a process and a
	// resource. Node and edge identities in ragraph collide otherwise.
	ErrIDCollision = fmt.Errorf("%w: id used by both a process and a resource", ErrInvalidMatrix)

	// ErrNegativeQuantity indicates a negative allocation, request, or total.
	ErrNegativeQuantity = fmt.Errorf("%w: negative quantity", ErrInvalidMatrix)

	// ErrUnknownResource indicates a mapped resource ID that matches no
	// resource in the matrix.
	ErrUnknownResource = fmt.Errorf("%w: unknown resource id", ErrInvalidMatrix)

	// ErrOverAllocated indicates allocations summing above a resource total.
	ErrOverAllocated = fmt.Errorf("%w: allocations exceed resource total", ErrInvalidMatrix)
)

// Process is one row of the matrix: what it holds and what it wants,
// keyed by resource ID. Entries missing from either map are treated as 0.
type Process struct {
	// ID uniquely identifies this process within the matrix.
	ID string

	// Allocation maps resource ID to units currently held.
	Allocation map[string]int

	// Request maps resource ID to units currently wanted.
	Request map[string]int
}

// Resource is one column of the matrix.
type Resource struct {
	// ID uniquely identifies this resource within the matrix.
	ID string

	// Total is the number of instances that exist.
	Total int

	// Available is derived (Total minus all allocations); it is not
	// authoritative input. AvailableResources recomputes it.
	Available int

	// MultiInstance is a presentation flag; it has no effect on detection.
	MultiInstance bool
}

// AllocationMatrix is an ordered snapshot of processes and resources.
// Order is significant: it is the admission tie-break order.
//
// The invariants listed on Validate are the caller's responsibility;
// nothing in this package enforces them implicitly.
type AllocationMatrix struct {
	Processes []Process
	Resources []Resource
}

// NewProcess returns a Process with empty allocation and request maps.
func NewProcess(id string) Process {
	return Process{
		ID:         id,
		Allocation: make(map[string]int),
		Request:    make(map[string]int),
	}
}

// NewResource returns a Resource with Available seeded to total and
// MultiInstance derived from the instance count.
func NewResource(id string, total int) Resource {
	return Resource{
		ID:            id,
		Total:         total,
		Available:     total,
		MultiInstance: total > 1,
	}
}

// HasPositiveRequest reports whether p requests a strictly positive
// amount of at least one resource. Amounts ≤ 0 never constrain admission.
func (p Process) HasPositiveRequest() bool {
	for _, want := range p.Request {
		if want > 0 {
			return true
		}
	}

	return false
}

// ProcessIDs returns the process IDs in matrix order.
func (m *AllocationMatrix) ProcessIDs() []string {
	ids := make([]string, len(m.Processes))
	for i, p := range m.Processes {
		ids[i] = p.ID
	}

	return ids
}

// ResourceIDs returns the resource IDs in matrix order.
func (m *AllocationMatrix) ResourceIDs() []string {
	ids := make([]string, len(m.Resources))
	for i, r := range m.Resources {
		ids[i] = r.ID
	}

	return ids
}
