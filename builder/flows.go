// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// flows.go: random raw layouts for flow.Repair.
//
// Model:
//   • Nodes are inserted in a random order; each attaches to a random earlier
//     node with spare output degree, giving a random arborescence.
//   • Arc flows count the turbines below the arc; arcs serving nobody are
//     omitted.
//   • A merge moves one unit of a node v from its tree route onto a second
//     route through an earlier node w (w ≠ parent(v)). All arcs point from an
//     earlier to a later node, so the support stays acyclic, and every node
//     keeps its in−out balance. Merge tails respect the degree limits.

package builder

import (
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/flow"
)

// TreeFlows returns a flow-conserving layout rooted at the substation with
// up to merges merge nodes. It draws from the farm's RNG (ErrNeedRandSource
// without one).
//
// Complexity: O(n·depth) for the tree plus O(merges · depth) expected for
// the merges.
func (f *Farm) TreeFlows(merges int) (flow.Map, error) {
	if err := validateMin(MethodTreeFlows, merges, 0); err != nil {
		return nil, err
	}
	if err := validateRand(MethodTreeFlows, f.cfg); err != nil {
		return nil, err
	}
	rng := f.cfg.rng
	if len(f.Positions) < 2 {
		return flow.Map{}, nil
	}

	// placed = [root, insertion order...]; index = rank.
	placed := f.Nodes()
	rest := placed[1:]
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	rank := make(map[core.Node]int, len(placed))
	for i, n := range placed {
		rank[n] = i
	}

	parent := make(map[core.Node]core.Node, len(rest))
	outDeg := make(map[core.Node]int, len(placed))
	for i, v := range rest {
		p, ok := f.pickParent(placed[:i+1], outDeg)
		if !ok {
			return nil, builderErrorf(MethodTreeFlows, "no node with spare degree for %d: %w", v, ErrConstructFailed)
		}
		parent[v] = p
		outDeg[p]++
	}

	flows := f.subtreeFlows(rest, parent)

	injected := 0
	for attempt := 0; injected < merges && attempt < merges*maxMergeAttempts; attempt++ {
		v := rest[rng.Intn(len(rest))]
		if flows[core.Arc{From: parent[v], To: v}] < 2 {
			continue
		}
		w := placed[rng.Intn(rank[v])]
		merge := core.Arc{From: w, To: v}
		if _, taken := flows[merge]; taken || w == parent[v] {
			continue
		}
		if lim := f.degreeLimit(w); lim > 0 && outDeg[w] >= lim {
			continue
		}

		delta := map[core.Arc]int{merge: 1}
		for _, a := range treePath(parent, f.Root, w) {
			delta[a]++
		}
		for _, a := range treePath(parent, f.Root, v) {
			delta[a]--
		}
		if !keepsPositive(flows, delta) {
			continue
		}
		for a, d := range delta {
			if d != 0 {
				flows[a] += d
			}
		}
		outDeg[w]++
		injected++
	}

	return flows, nil
}

// pickParent draws a random candidate with spare output degree, falling back
// to the first one in insertion order.
func (f *Farm) pickParent(cands []core.Node, outDeg map[core.Node]int) (core.Node, bool) {
	spare := func(n core.Node) bool {
		lim := f.degreeLimit(n)
		return lim == 0 || outDeg[n] < lim
	}
	for i := 0; i < len(cands); i++ {
		if c := cands[f.cfg.rng.Intn(len(cands))]; spare(c) {
			return c, true
		}
	}
	for _, c := range cands {
		if spare(c) {
			return c, true
		}
	}
	return 0, false
}

func (f *Farm) degreeLimit(n core.Node) int {
	if n == f.Root {
		return f.cfg.rootDegree
	}
	for _, j := range f.Junctions {
		if j == n {
			return 0
		}
	}
	return f.cfg.turbineDegree
}

// subtreeFlows assigns each tree arc parent[v]→v the number of turbines
// below v. order lists the non-root nodes with every parent before its
// children. Arcs serving no turbine are omitted.
func (f *Farm) subtreeFlows(order []core.Node, parent map[core.Node]core.Node) flow.Map {
	required := make(map[core.Node]bool, len(f.Turbines))
	for _, t := range f.Turbines {
		required[t] = true
	}
	below := make(map[core.Node]int, len(order)+1)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if required[v] {
			below[v]++
		}
		below[parent[v]] += below[v]
	}

	flows := make(flow.Map, len(order))
	for _, v := range order {
		if below[v] > 0 {
			flows[core.Arc{From: parent[v], To: v}] = below[v]
		}
	}
	return flows
}

// treePath returns the tree arcs from root down to u.
func treePath(parent map[core.Node]core.Node, root, u core.Node) []core.Arc {
	var path []core.Arc
	for u != root {
		p := parent[u]
		path = append(path, core.Arc{From: p, To: u})
		u = p
	}
	return path
}

// keepsPositive reports whether applying delta leaves every touched arc
// with a positive flow.
func keepsPositive(flows flow.Map, delta map[core.Arc]int) bool {
	for a, d := range delta {
		if d != 0 && flows[a]+d < 1 {
			return false
		}
	}
	return true
}
