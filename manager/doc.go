// Package manager provides a lock-guarded editor for building an
// allocation/request matrix incrementally, the way an interactive
// frontend does, and handing consistent snapshots to the algorithms.
//
// Overview:
//
//   - Manager keeps one mutable core.AllocationMatrix behind a
//     sync.RWMutex. Adding a process zero-fills its maps for every
//     known resource; adding a resource zero-fills it into every
//     process, so the matrix stays rectangular.
//   - UpdateAllocation clamps: negatives become 0 and values above the
//     remaining capacity of the resource are cut down to it; the value
//     actually stored is returned. UpdateRequest clamps negatives to 0
//     and is otherwise unbounded (requesting more than exists is how
//     deadlocks are born).
//   - Snapshot returns a deep copy; later edits never leak into it.
//     Detect and Graph run on such a snapshot, outside the lock.
//
// Concurrency:
//
//   - All methods are safe for concurrent use. Snapshots are
//     independent values, so detection on one snapshot may run while
//     the matrix keeps changing.
package manager
