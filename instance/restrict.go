package instance

import (
	"github.com/katalvlaran/cablenet/core"
)

// Restrict returns the sub-instance induced by nodes plus the root.
//
// The sub-instance keeps the arcs of the induced subgraph with their
// lengths, the required nodes and degree limits falling inside it, the cable
// model and maxNbSec. opts are applied last, typically to lower the root's
// branching limit to the share granted to this batch.
func (in *Instance) Restrict(nodes []core.Node, opts ...Option) (*Instance, error) {
	keep := make([]core.Node, 0, len(nodes)+1)
	keep = append(keep, in.root)
	keep = append(keep, nodes...)
	sub := in.graph.InducedByNodes(keep)

	base := []Option{WithModel(in.model), WithMaxNbSec(in.maxNbSec)}
	for _, n := range sub.Nodes() {
		if in.IsRequired(n) {
			base = append(base, WithRequired(n))
		}
		if d, ok := in.maxDeg[n]; ok {
			base = append(base, WithMaxOutputDegree(n, d))
		}
	}
	for _, a := range sub.Arcs() {
		base = append(base, WithDistance(a, in.distance[a]))
	}

	return New(sub, in.root, append(base, opts...)...)
}
