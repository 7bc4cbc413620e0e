package manager

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/gridlock/core"
	"github.com/katalvlaran/gridlock/detect"
	"github.com/katalvlaran/gridlock/ragraph"
)

// Sentinel errors for editor operations.
var (
	// ErrEmptyID indicates an empty process or resource ID.
	ErrEmptyID = errors.New("manager: id is empty")

	// ErrDuplicateProcessID indicates the process ID is already taken.
	ErrDuplicateProcessID = errors.New("manager: process id already exists")

	// ErrDuplicateResourceID indicates the resource ID is already taken.
	ErrDuplicateResourceID = errors.New("manager: resource id already exists")

	// ErrIDCollision indicates the ID is taken by the other entity kind.
	ErrIDCollision = errors.New("manager: id already used by the other entity kind")

	// ErrProcessNotFound indicates no process carries the given ID.
	ErrProcessNotFound = errors.New("manager: process not found")

	// ErrResourceNotFound indicates no resource carries the given ID.
	ErrResourceNotFound = errors.New("manager: resource not found")
)

// Manager is a thread-safe editor over one allocation matrix.
// The zero value is not usable; call New.
type Manager struct {
	mu     sync.RWMutex
	matrix core.AllocationMatrix
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{}
}

// AddProcess registers a new process, zero-filled for every known
// resource. Returns ErrEmptyID, ErrDuplicateProcessID, or
// ErrIDCollision on conflicts.
func (mgr *Manager) AddProcess(id string) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if id == "" {
		return ErrEmptyID
	}
	if mgr.processIndex(id) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateProcessID, id)
	}
	if mgr.resourceIndex(id) >= 0 {
		return fmt.Errorf("%w: %q", ErrIDCollision, id)
	}

	p := core.NewProcess(id)
	for _, r := range mgr.matrix.Resources {
		p.Allocation[r.ID] = 0
		p.Request[r.ID] = 0
	}
	mgr.matrix.Processes = append(mgr.matrix.Processes, p)

	return nil
}

// AddResource registers a new resource and zero-fills it into every
// process. A resource marked single-instance is forced to one instance
// regardless of the count given.
func (mgr *Manager) AddResource(id string, instances int, multi bool) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if id == "" {
		return ErrEmptyID
	}
	if mgr.resourceIndex(id) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateResourceID, id)
	}
	if mgr.processIndex(id) >= 0 {
		return fmt.Errorf("%w: %q", ErrIDCollision, id)
	}

	if !multi {
		instances = 1
	}
	r := core.NewResource(id, instances)
	r.MultiInstance = multi

	for i := range mgr.matrix.Processes {
		mgr.matrix.Processes[i].Allocation[id] = 0
		mgr.matrix.Processes[i].Request[id] = 0
	}
	mgr.matrix.Resources = append(mgr.matrix.Resources, r)

	return nil
}

// UpdateAllocation sets how many units of resource rid the process pid
// holds. Negative values clamp to 0; values above the units not held
// by other processes clamp down to that remainder. The value actually
// stored is returned.
func (mgr *Manager) UpdateAllocation(pid, rid string, value int) (int, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	pi := mgr.processIndex(pid)
	if pi < 0 {
		return 0, fmt.Errorf("%w: %q", ErrProcessNotFound, pid)
	}
	ri := mgr.resourceIndex(rid)
	if ri < 0 {
		return 0, fmt.Errorf("%w: %q", ErrResourceNotFound, rid)
	}

	if value < 0 {
		value = 0
	}
	heldByOthers := 0
	for i, p := range mgr.matrix.Processes {
		if i != pi {
			heldByOthers += p.Allocation[rid]
		}
	}
	if limit := mgr.matrix.Resources[ri].Total - heldByOthers; value > limit {
		value = limit
	}
	mgr.matrix.Processes[pi].Allocation[rid] = value

	return value, nil
}

// UpdateRequest sets how many units of resource rid the process pid
// wants. Negative values clamp to 0; no upper bound applies.
func (mgr *Manager) UpdateRequest(pid, rid string, value int) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	pi := mgr.processIndex(pid)
	if pi < 0 {
		return fmt.Errorf("%w: %q", ErrProcessNotFound, pid)
	}
	if mgr.resourceIndex(rid) < 0 {
		return fmt.Errorf("%w: %q", ErrResourceNotFound, rid)
	}

	if value < 0 {
		value = 0
	}
	mgr.matrix.Processes[pi].Request[rid] = value

	return nil
}

// RemoveProcess deletes the process with the given ID.
func (mgr *Manager) RemoveProcess(id string) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	pi := mgr.processIndex(id)
	if pi < 0 {
		return fmt.Errorf("%w: %q", ErrProcessNotFound, id)
	}
	mgr.matrix.Processes = append(mgr.matrix.Processes[:pi], mgr.matrix.Processes[pi+1:]...)

	return nil
}

// RemoveResource deletes the resource and strips its ID from every
// process's allocation and request maps.
func (mgr *Manager) RemoveResource(id string) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	ri := mgr.resourceIndex(id)
	if ri < 0 {
		return fmt.Errorf("%w: %q", ErrResourceNotFound, id)
	}
	mgr.matrix.Resources = append(mgr.matrix.Resources[:ri], mgr.matrix.Resources[ri+1:]...)
	for i := range mgr.matrix.Processes {
		delete(mgr.matrix.Processes[i].Allocation, id)
		delete(mgr.matrix.Processes[i].Request, id)
	}

	return nil
}

// Clear drops every process and resource.
func (mgr *Manager) Clear() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.matrix = core.AllocationMatrix{}
}

// Len reports the current process and resource counts.
func (mgr *Manager) Len() (processes, resources int) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()

	return len(mgr.matrix.Processes), len(mgr.matrix.Resources)
}

// Snapshot returns an independent deep copy of the current matrix.
func (mgr *Manager) Snapshot() *core.AllocationMatrix {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()

	return mgr.matrix.Clone()
}

// Available derives the current per-resource availability.
func (mgr *Manager) Available() map[string]int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()

	return core.AvailabilityMap(&mgr.matrix)
}

// Detect runs the deadlock detector on a snapshot of the current
// matrix, outside the lock.
func (mgr *Manager) Detect(opts ...detect.Option) (*detect.Result, error) {
	return detect.Detect(mgr.Snapshot(), opts...)
}

// Graph builds the resource-allocation graph of a snapshot of the
// current matrix, outside the lock.
func (mgr *Manager) Graph() (*ragraph.Graph, error) {
	return ragraph.Build(mgr.Snapshot())
}

// LoadExample replaces the matrix with the canned teaching scenario:
// R1 (single instance), R2 (two instances); P1 holds R1 and wants R2,
// P2 holds R2 and wants R1, P3 holds R2 and wants nothing. Safe, with
// sequence P3 → P1 → P2.
func (mgr *Manager) LoadExample() {
	mgr.Clear()

	// Errors impossible on a fresh matrix with these literals.
	_ = mgr.AddResource("R1", 1, false)
	_ = mgr.AddResource("R2", 2, true)
	_ = mgr.AddProcess("P1")
	_ = mgr.AddProcess("P2")
	_ = mgr.AddProcess("P3")

	_, _ = mgr.UpdateAllocation("P1", "R1", 1)
	_, _ = mgr.UpdateAllocation("P2", "R2", 1)
	_, _ = mgr.UpdateAllocation("P3", "R2", 1)
	_ = mgr.UpdateRequest("P1", "R2", 1)
	_ = mgr.UpdateRequest("P2", "R1", 1)
}

// processIndex returns the position of the process with the given ID,
// or -1. Callers must hold mu.
func (mgr *Manager) processIndex(id string) int {
	for i, p := range mgr.matrix.Processes {
		if p.ID == id {
			return i
		}
	}

	return -1
}

// resourceIndex returns the position of the resource with the given
// ID, or -1. Callers must hold mu.
func (mgr *Manager) resourceIndex(id string) int {
	for i, r := range mgr.matrix.Resources {
		if r.ID == id {
			return i
		}
	}

	return -1
}
