// Package gridlock detects deadlocks in snapshots of how processes
// hold and request discrete resource instances, and projects those
// snapshots into bipartite graphs for visualization.
//
// 🚀 What is gridlock?
//
//	A small, synchronous, pure-computation library built around one
//	data model:
//		• core/    — Process, Resource, AllocationMatrix; availability
//		  calculator, deep copies, boundary validation
//		• detect/  — the safety/deadlock detector with a per-step,
//		  human-readable trace (one admission per round, by design)
//		• ragraph/ — the resource-allocation graph projection
//		• manager/ — a lock-guarded editor producing clean snapshots
//		• cmd/gridlock — an interactive shell tying it all together
//
// ✨ Why choose gridlock?
//
//   - Explainable – every run records why each process could (or could
//     not) proceed, in fixed wording frontends can rely on
//   - Pure – no component mutates its input; results are fresh values
//   - Bounded – at most N rounds for N processes, no cancellation needed
//   - Strict at the boundary – malformed matrices are rejected with
//     sentinel errors, or tolerated verbatim if you opt out
//
// Quick ASCII example:
//
//	    R1 ──holds──▶ P1 ──wants──▶ R2
//	    ▲                            │
//	    └───wants─── P2 ◀──holds─────┘
//
//	two processes, one instance each: a circular wait the detector
//	reports as deadlocked, with the trace explaining both rounds.
//
// Start with detect.Detect and ragraph.Build; build matrices by hand
// or through manager.Manager.
package gridlock
