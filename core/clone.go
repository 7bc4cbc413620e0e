// File: clone.go
// Role: value-semantics deep copies of the data model.
// Determinism:
//   - Clone preserves slice order exactly; maps are copied entry by entry.
// Concurrency:
//   - Pure reads of the source; safe against concurrent readers.

package core

// Clone returns an independent deep copy of p: the allocation and
// request maps are copied field by field, never shared.
// Complexity: O(R) over the map entries.
func (p Process) Clone() Process {
	out := Process{
		ID:         p.ID,
		Allocation: make(map[string]int, len(p.Allocation)),
		Request:    make(map[string]int, len(p.Request)),
	}
	for id, n := range p.Allocation {
		out.Allocation[id] = n
	}
	for id, n := range p.Request {
		out.Request[id] = n
	}

	return out
}

// Clone returns an independent deep copy of the matrix. Mutating the
// copy (or handing it to an algorithm that does) leaves the original
// bit-for-bit unchanged.
// Complexity: O(N·R) for N processes over R mapped resources.
func (m *AllocationMatrix) Clone() *AllocationMatrix {
	if m == nil {
		return nil
	}
	out := &AllocationMatrix{
		Processes: make([]Process, len(m.Processes)),
		Resources: make([]Resource, len(m.Resources)),
	}
	for i, p := range m.Processes {
		out.Processes[i] = p.Clone()
	}
	// Resource is a plain value type; slice copy suffices.
	copy(out.Resources, m.Resources)

	return out
}
