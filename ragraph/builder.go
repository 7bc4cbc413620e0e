package ragraph

import (
	"sort"

	"github.com/katalvlaran/gridlock/core"
)

// Build projects m into its resource-allocation graph. The matrix is
// read only; the returned Graph is freshly allocated and owned by the
// caller. Build performs no validation: a matrix with colliding
// process/resource IDs yields colliding node identities (run
// core.Validate first when that matters).
//
// Complexity: O(N·R).
func Build(m *core.AllocationMatrix) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	g := &Graph{
		Nodes: make([]Node, 0, len(m.Processes)+len(m.Resources)),
		Edges: make([]Edge, 0),
	}

	for _, p := range m.Processes {
		g.Nodes = append(g.Nodes, Node{
			ID:    p.ID,
			Kind:  NodeKindProcess,
			Label: p.ID,
		})
	}
	for _, r := range m.Resources {
		g.Nodes = append(g.Nodes, Node{
			ID:            r.ID,
			Kind:          NodeKindResource,
			Label:         r.ID,
			Instances:     r.Total,
			MultiInstance: r.MultiInstance,
		})
	}

	// Allocation edges: resource → process, units held.
	for _, p := range m.Processes {
		for _, rid := range orderedIDs(m, p.Allocation) {
			if amount := p.Allocation[rid]; amount > 0 {
				g.Edges = append(g.Edges, edge(rid, p.ID, EdgeKindAllocation, amount))
			}
		}
	}
	// Request edges: process → resource, units wanted.
	for _, p := range m.Processes {
		for _, rid := range orderedIDs(m, p.Request) {
			if amount := p.Request[rid]; amount > 0 {
				g.Edges = append(g.Edges, edge(p.ID, rid, EdgeKindRequest, amount))
			}
		}
	}

	return g, nil
}

func edge(from, to string, kind EdgeKind, amount int) Edge {
	return Edge{
		ID:     from + "-" + to,
		From:   from,
		To:     to,
		Kind:   kind,
		Amount: amount,
	}
}

// orderedIDs yields the keys of amounts deterministically: matrix
// resource order first, then any IDs naming no matrix resource in
// sorted order (tolerated here; core.Validate rejects them upstream).
func orderedIDs(m *core.AllocationMatrix, amounts map[string]int) []string {
	out := make([]string, 0, len(amounts))
	for _, r := range m.Resources {
		if _, ok := amounts[r.ID]; ok {
			out = append(out, r.ID)
		}
	}
	if len(out) == len(amounts) {
		return out
	}

	known := make(map[string]struct{}, len(m.Resources))
	for _, r := range m.Resources {
		known[r.ID] = struct{}{}
	}
	var extra []string
	for id := range amounts {
		if _, ok := known[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)

	return append(out, extra...)
}
