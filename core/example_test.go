package core_test

import (
	"fmt"

	"github.com/katalvlaran/cablenet/core"
)

// ExampleDigraph shows the in/out indices on a small feeder:
// substation 0 feeds turbine 1, which feeds turbines 2 and 3.
func ExampleDigraph() {
	g := core.NewDigraph()
	_ = g.AddArc(0, 1)
	_ = g.AddArc(1, 2)
	_ = g.AddArc(1, 3)

	fmt.Println("arcs:", g.Arcs())
	fmt.Println("out(1):", g.OutArcs(1))
	fmt.Println("in(2):", g.InArcs(2))
	fmt.Println("in-degree(0):", g.InDegree(0))
	// Output:
	// arcs: [0->1 1->2 1->3]
	// out(1): [1->2 1->3]
	// in(2): [1->2]
	// in-degree(0): 0
}

// ExampleDigraph_InducedByArcs extracts the graph spanned by a flow's arcs.
func ExampleDigraph_InducedByArcs() {
	g := core.NewDigraph()
	_ = g.AddArc(0, 1)
	_ = g.AddArc(0, 2)
	_ = g.AddArc(1, 2)

	sub := g.InducedByArcs([]core.Arc{{From: 0, To: 1}, {From: 1, To: 2}})
	fmt.Println(sub.Nodes(), sub.Arcs())
	// Output: [0 1 2] [0->1 1->2]
}
