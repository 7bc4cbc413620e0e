// File: availability.go
// Role: the availability calculator shared by detection and presentation.

package core

// AvailableResources derives per-resource availability from totals and
// current allocations: Available = Total − Σ allocation over processes.
//
// The input matrix is never mutated; the returned slice holds
// independent copies in matrix order. Allocation entries whose resource
// ID matches no resource in the matrix are ignored here — rejecting
// them is Validate's job, not the calculator's.
//
// Complexity: O(N·R).
func AvailableResources(m *AllocationMatrix) []Resource {
	out := make([]Resource, len(m.Resources))
	index := make(map[string]int, len(m.Resources))
	for i, r := range m.Resources {
		out[i] = r
		out[i].Available = r.Total
		index[r.ID] = i
	}
	for _, p := range m.Processes {
		for id, held := range p.Allocation {
			if i, ok := index[id]; ok {
				out[i].Available -= held
			}
		}
	}

	return out
}

// AvailabilityMap is AvailableResources flattened to resource ID →
// available units, the working form the detector iterates on.
func AvailabilityMap(m *AllocationMatrix) map[string]int {
	resources := AvailableResources(m)
	out := make(map[string]int, len(resources))
	for _, r := range resources {
		out[r.ID] = r.Available
	}

	return out
}
