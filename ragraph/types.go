// Package ragraph: node/edge types and sentinel errors.
package ragraph

import "errors"

// ErrNilMatrix is returned if a nil matrix pointer is passed to Build.
var ErrNilMatrix = errors.New("ragraph: matrix is nil")

// NodeKind tags a node as a process or a resource.
type NodeKind string

// EdgeKind tags an edge as an allocation or a request.
type EdgeKind string

const (
	// NodeKindProcess marks a process node.
	NodeKindProcess NodeKind = "process"

	// NodeKindResource marks a resource node.
	NodeKindResource NodeKind = "resource"

	// EdgeKindAllocation marks a resource→process edge (units held).
	EdgeKindAllocation EdgeKind = "allocation"

	// EdgeKindRequest marks a process→resource edge (units wanted).
	EdgeKindRequest EdgeKind = "request"
)

// Node is one vertex of the projection. Instances and MultiInstance
// are populated for resource nodes only.
type Node struct {
	// ID is the entity ID; unique across the graph because process and
	// resource namespaces are disjoint.
	ID string

	// Kind tags the node as process or resource.
	Kind NodeKind

	// Label is the display text; the entity ID.
	Label string

	// Instances is the resource total (0 for process nodes).
	Instances int

	// MultiInstance mirrors the resource's presentation flag.
	MultiInstance bool
}

// Edge is one directed edge of the projection.
type Edge struct {
	// ID is From and To joined with "-".
	ID string

	// From is the source node ID.
	From string

	// To is the target node ID.
	To string

	// Kind tags the edge as allocation or request.
	Kind EdgeKind

	// Amount is the positive number of units held or wanted.
	Amount int
}

// Graph is the bipartite projection of one matrix snapshot.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// ProcessNodes returns the process nodes in graph order.
func (g *Graph) ProcessNodes() []Node {
	return g.nodesOf(NodeKindProcess)
}

// ResourceNodes returns the resource nodes in graph order.
func (g *Graph) ResourceNodes() []Node {
	return g.nodesOf(NodeKindResource)
}

func (g *Graph) nodesOf(kind NodeKind) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}

	return out
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}
