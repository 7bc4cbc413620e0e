// Package core defines the shared data model for gridlock: processes,
// resources, and the allocation/request matrix that every algorithm in
// this module consumes.
//
// Overview:
//
//   - Process holds two maps keyed by resource ID: Allocation (units
//     currently held) and Request (units currently wanted).
//   - Resource carries a total instance count and a derived Available
//     count; MultiInstance is informational only and never influences
//     any algorithm.
//   - AllocationMatrix is an ordered snapshot: process and resource
//     order is significant, it is the admission tie-break order used by
//     detect.Detect.
//
// Key guarantees:
//
//   - AvailableResources never mutates its input; it returns
//     independent Resource copies with Available recomputed.
//   - Clone is an explicit field-by-field deep copy of the nested maps,
//     never a serialize/deserialize round trip.
//   - Validate checks the matrix invariants (unique IDs, disjoint
//     process/resource namespaces, non-negative quantities, allocation
//     sums within totals) and reports violations as sentinels wrapping
//     ErrInvalidMatrix, matchable via errors.Is.
//
// Thread safety:
//
//   - All functions here are pure; an AllocationMatrix value is safe to
//     share across goroutines as long as no caller mutates it.
//
// See also:
//
//   - detect: the safety/deadlock detector over this model.
//   - ragraph: the resource-flow graph projection of this model.
//   - manager: a lock-guarded editor that produces snapshots of this model.
package core
