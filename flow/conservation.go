package flow

import (
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/instance"
)

// CheckConservation verifies that every non-root node touched by m, and
// every turbine, receives exactly its demand: in−out = 1 for a turbine and
// 0 otherwise. The first violation in ascending node order is returned as a
// *ConservationError.
//
// Complexity: O(|m| + V log V).
func CheckConservation(inst *instance.Instance, m Map) error {
	if inst == nil {
		return ErrNilInstance
	}
	in := make(map[core.Node]int)
	out := make(map[core.Node]int)
	seen := make(map[core.Node]struct{})
	for a, f := range m {
		out[a.From] += f
		in[a.To] += f
		seen[a.From] = struct{}{}
		seen[a.To] = struct{}{}
	}
	for _, n := range inst.Required() {
		seen[n] = struct{}{}
	}

	nodes := make([]core.Node, 0, len(seen))
	for n := range seen {
		nodes = append(nodes, n)
	}
	core.SortNodes(nodes)

	for _, n := range nodes {
		if n == inst.Root() {
			continue
		}
		want := 0
		if inst.IsRequired(n) {
			want = 1
		}
		if in[n]-out[n] != want {
			return &ConservationError{Node: n, In: in[n], Out: out[n], Want: want}
		}
	}

	return nil
}
