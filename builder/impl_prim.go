// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// impl_prim.go: shortest-connection layouts grown from the substation.
//
// Model:
//   • Prim's algorithm over the complete digraph of the farm with Euclidean
//     lengths, started at the substation; every accepted arc points away
//     from it.
//   • A candidate arc whose tail has exhausted its output degree is skipped;
//     the head stays reachable through arcs pushed by other visited nodes.
//   • Arc flows count the turbines below the arc, as in TreeFlows.
//
// Complexity:
//   • Time: O(n² log n) heap operations; Space: O(n²) for the heap.
//
// Determinism:
//   • Ties in length break on the canonical arc order; no RNG is used.

package builder

import (
	"container/heap"

	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/flow"
)

// PrimFlows returns the flow map of a degree-capped minimum spanning
// arborescence rooted at the substation. It fails with ErrConstructFailed
// when the degree limits leave some node unconnectable.
func (f *Farm) PrimFlows() (flow.Map, error) {
	nodes := f.Nodes()
	if len(nodes) < 2 {
		return flow.Map{}, nil
	}

	visited := make(map[core.Node]bool, len(nodes))
	parent := make(map[core.Node]core.Node, len(nodes)-1)
	outDeg := make(map[core.Node]int, len(nodes))
	order := make([]core.Node, 0, len(nodes)-1)

	pq := &arcPQ{}
	heap.Init(pq)
	visit := func(u core.Node) {
		visited[u] = true
		pu := f.Positions[u]
		for _, v := range nodes {
			if !visited[v] && v != f.Root {
				heap.Push(pq, weightedArc{arc: core.Arc{From: u, To: v}, length: pu.Dist(f.Positions[v])})
			}
		}
	}
	visit(f.Root)

	for pq.Len() > 0 && len(order) < len(nodes)-1 {
		wa := heap.Pop(pq).(weightedArc)
		u, v := wa.arc.From, wa.arc.To
		if visited[v] {
			continue
		}
		if lim := f.degreeLimit(u); lim > 0 && outDeg[u] >= lim {
			continue
		}
		parent[v] = u
		outDeg[u]++
		order = append(order, v)
		visit(v)
	}

	if len(order) < len(nodes)-1 {
		return nil, builderErrorf(MethodPrimFlows, "%d of %d nodes connected: %w", len(order), len(nodes)-1, ErrConstructFailed)
	}

	return f.subtreeFlows(order, parent), nil
}

// weightedArc is a heap entry.
type weightedArc struct {
	arc    core.Arc
	length float64
}

// arcPQ is a min-heap of weightedArc by length, then canonical arc order.
type arcPQ []weightedArc

func (pq arcPQ) Len() int { return len(pq) }

func (pq arcPQ) Less(i, j int) bool {
	if pq[i].length != pq[j].length {
		return pq[i].length < pq[j].length
	}
	return pq[i].arc.Less(pq[j].arc)
}

func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *arcPQ) Push(x any) { *pq = append(*pq, x.(weightedArc)) }

func (pq *arcPQ) Pop() any {
	old := *pq
	n := len(old)
	wa := old[n-1]
	*pq = old[:n-1]

	return wa
}
