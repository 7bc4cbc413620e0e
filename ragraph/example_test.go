package ragraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridlock/core"
	"github.com/katalvlaran/gridlock/ragraph"
)

// ExampleBuild projects a two-process snapshot and prints its edges.
func ExampleBuild() {
	p1 := core.NewProcess("P1")
	p1.Allocation["R1"] = 1
	p1.Request["R2"] = 1
	p2 := core.NewProcess("P2")
	p2.Allocation["R2"] = 1
	p2.Request["R1"] = 1

	m := &core.AllocationMatrix{
		Processes: []core.Process{p1, p2},
		Resources: []core.Resource{core.NewResource("R1", 1), core.NewResource("R2", 1)},
	}

	g, err := ragraph.Build(m)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Printf("%d nodes, %d edges\n", len(g.Nodes), len(g.Edges))
	for _, e := range g.Edges {
		fmt.Printf("%s: %s → %s (%d)\n", e.Kind, e.From, e.To, e.Amount)
	}
	// Output:
	// 4 nodes, 4 edges
	// allocation: R1 → P1 (1)
	// allocation: R2 → P2 (1)
	// request: P1 → R2 (1)
	// request: P2 → R1 (1)
}
