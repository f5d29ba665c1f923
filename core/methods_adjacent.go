// File: methods_adjacent.go
// Role: Neighbourhood APIs (InArcs, OutArcs, degrees, predecessor/successor IDs).
// Determinism:
//   - Every slice is sorted (arcs in canonical order, nodes ascending).
// Concurrency:
//   - Read lock only.

package core

// OutArcs returns the arcs leaving n, sorted by head.
// A missing node yields nil.
//
// Complexity: O(d log d), d = out-degree of n.
func (g *Digraph) OutArcs(n Node) []Arc {
	g.mu.RLock()
	bucket, ok := g.out[n]
	if !ok {
		g.mu.RUnlock()
		return nil
	}
	out := make([]Arc, 0, len(bucket))
	for v := range bucket {
		out = append(out, Arc{From: n, To: v})
	}
	g.mu.RUnlock()

	SortArcs(out)

	return out
}

// InArcs returns the arcs entering n, sorted by tail.
// A missing node yields nil.
//
// Complexity: O(d log d), d = in-degree of n.
func (g *Digraph) InArcs(n Node) []Arc {
	g.mu.RLock()
	bucket, ok := g.in[n]
	if !ok {
		g.mu.RUnlock()
		return nil
	}
	out := make([]Arc, 0, len(bucket))
	for u := range bucket {
		out = append(out, Arc{From: u, To: n})
	}
	g.mu.RUnlock()

	SortArcs(out)

	return out
}

// Successors returns the heads of the out-arcs of n, ascending.
func (g *Digraph) Successors(n Node) []Node {
	arcs := g.OutArcs(n)
	out := make([]Node, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out
}

// Predecessors returns the tails of the in-arcs of n, ascending.
func (g *Digraph) Predecessors(n Node) []Node {
	arcs := g.InArcs(n)
	out := make([]Node, len(arcs))
	for i, a := range arcs {
		out[i] = a.From
	}

	return out
}

// OutDegree returns the number of arcs leaving n (0 for a missing node).
//
// Complexity: O(1).
func (g *Digraph) OutDegree(n Node) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[n])
}

// InDegree returns the number of arcs entering n (0 for a missing node).
//
// Complexity: O(1).
func (g *Digraph) InDegree(n Node) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.in[n])
}
