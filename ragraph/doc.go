// Package ragraph projects a core.AllocationMatrix into a bipartite
// resource-allocation graph for visualization.
//
// Overview:
//
//   - One node per process and one per resource; node identity is the
//     entity ID, which is why the two ID namespaces must be disjoint
//     (core.Validate enforces that at the boundary).
//   - One "allocation" edge (resource → process) per pair held with a
//     positive amount, and one "request" edge (process → resource) per
//     pair wanted with a positive amount. Zero and negative amounts
//     produce no edge.
//   - Edge identity is the source and target IDs joined with "-".
//
// Purity:
//
//   - Build is a stateless projection: it never mutates the matrix,
//     never runs detection, and never reads detect.Result. A consumer
//     that wants to highlight deadlocked nodes intersects Graph node
//     IDs with detect.Result.Deadlocked itself.
//
// Determinism:
//
//   - Nodes come out in matrix order, processes before resources.
//     Edges come out per process in matrix resource order (allocation
//     edges for all processes first, then request edges); map entries
//     naming no matrix resource follow in sorted ID order.
//
// Complexity: O(N·R) time and space.
package ragraph
