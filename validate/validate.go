package validate

import (
	"github.com/katalvlaran/cablenet/bfs"
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/instance"
)

// Check classifies caps against inst. Every category is evaluated; the
// only error is ErrNilInstance.
//
// Implementation:
//   - Stage 1: Union-find over the arcs in canonical order (cycles) and a
//     scan for arcs entering the root.
//   - Stage 2: Out-degree of every candidate node against its limit; nodes
//     without a configured limit are unbounded.
//   - Stage 3: BFS from the root over the candidate arcs (terminals, forest
//     size).
//   - Stage 4: Distinct capacities against maxNbSec.
//   - Stage 5: Turbine demand aggregated leaves→root over the BFS tree and
//     compared with the capacity of each tree arc. Arcs outside the BFS tree
//     are left to the structural categories.
//
// Complexity: O(A log A + V).
func Check(inst *instance.Instance, caps instance.Assignment) (Violations, error) {
	if inst == nil {
		return None, ErrNilInstance
	}
	root := inst.Root()
	arcs := caps.Arcs()
	v := None

	// Stage 1
	ds := newDisjointSet(len(arcs) + 1)
	for _, a := range arcs {
		if !ds.union(a.From, a.To) {
			v |= NotAnArborescence
		}
		if a.To == root {
			v |= RootNotTheRoot
		}
	}

	g := support(root, arcs)

	// Stage 2
	for _, n := range g.Nodes() {
		if limit, ok := inst.MaxOutputDegree(n); ok && g.OutDegree(n) > limit {
			v |= DegreeViolated
			break
		}
	}

	// Stage 3
	res, err := bfs.BFS(g, root)
	if err != nil {
		// root is always present in support
		return None, err
	}
	for _, n := range inst.Required() {
		if !res.Reached(n) {
			v |= TerminalNotReached
			break
		}
	}
	if len(res.Order) != len(arcs)+1 {
		v |= DisconnectedForest
	}

	// Stage 4
	if len(caps.Capacities()) > inst.MaxNbSec() {
		v |= NbSecViolated
	}

	// Stage 5
	if overloaded(inst, caps, res) {
		v |= CapacityViolated
	}

	return v, nil
}

// Reaches reports whether every required node of inst is reachable from
// the root over arcs.
func Reaches(inst *instance.Instance, arcs []core.Arc) (bool, error) {
	if inst == nil {
		return false, ErrNilInstance
	}
	res, err := bfs.BFS(support(inst.Root(), arcs), inst.Root())
	if err != nil {
		return false, err
	}
	for _, n := range inst.Required() {
		if !res.Reached(n) {
			return false, nil
		}
	}

	return true, nil
}

// support builds the digraph of arcs plus root. Self-loops are skipped; the
// union-find already reports them.
func support(root core.Node, arcs []core.Arc) *core.Digraph {
	g := core.NewDigraph(root)
	for _, a := range arcs {
		if a.From == a.To {
			continue
		}
		_ = g.AddArc(a.From, a.To)
	}

	return g
}

// overloaded walks the BFS order backwards, accumulating the turbines below
// each node, and reports whether a tree arc carries more than its capacity.
func overloaded(inst *instance.Instance, caps instance.Assignment, res *bfs.Result) bool {
	below := make(map[core.Node]int, len(res.Order))
	over := false
	for i := len(res.Order) - 1; i > 0; i-- {
		n := res.Order[i]
		if inst.IsRequired(n) {
			below[n]++
		}
		if below[n] > caps[res.Via[n]] {
			over = true
		}
		below[res.Parent[n]] += below[n]
	}

	return over
}
