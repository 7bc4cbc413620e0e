// Package detect implements the safety/deadlock detector over a
// core.AllocationMatrix: a safety-algorithm variant that either finds a
// safe completion order or proves the snapshot deadlocked, recording a
// human-readable step trace either way.
//
// Overview:
//
//   - Detect seeds a working availability map from the availability
//     calculator (core.AvailableResources), then iterates rounds.
//   - Each round scans processes in matrix order and admits the FIRST
//     unfinished process whose every strictly positive requested amount
//     fits inside the current availability; the admitted process
//     releases its entire allocation back into availability.
//   - Exactly one admission per round. The trace is therefore a strict
//     linear sequence of state transitions, one explainable step each,
//     even when several processes qualify simultaneously. This is the
//     intended contract, not a parallel Banker's pass.
//   - A round with no admission while unfinished processes remain is a
//     deadlock: a terminal answer, not a failure. SafeSequence is nil
//     and Deadlocked lists the stuck processes in matrix order.
//
// Numeric semantics:
//
//   - Requested amounts ≤ 0 never block admission, including negative
//     ones. Allocation amounts are added back on release regardless of
//     sign. With validation enabled (the default) such input is
//     rejected up front; WithoutValidation restores the permissive
//     behavior of taking it at face value.
//
// Termination:
//
//   - Each round either admits exactly one process or ends the run,
//     so at most N rounds occur for N processes. Worst case O(N²·R).
//     No cancellation hooks are needed at this bound.
//
// Purity:
//
//   - Detect deep-copies the matrix before building any state and
//     never mutates the caller's objects; every Result, Step, and map
//     it returns is freshly allocated and owned by the caller.
//     Concurrent calls against one shared matrix are safe.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix: nil *core.AllocationMatrix.
//   - core.ErrInvalidMatrix (and its specific wrapped sentinels): the
//     default boundary validation rejected the input.
//
// API reference:
//
//	func Detect(m *core.AllocationMatrix, opts ...Option) (*Result, error)
//
//	  - WithoutValidation():      skip boundary validation.
//	  - WithOnAdmit(fn):          hook invoked after each admission.
//	  - WithOnRound(fn):          hook invoked at the start of each round.
//
// See also:
//
//   - core: the data model, availability calculator, and validators.
//   - ragraph: the independent graph projection of the same snapshot;
//     intersect its node IDs with Result.Deadlocked for highlighting.
package detect
