// File: view.go
// Role: Non-mutating graph views (copies restricted to a node or arc subset).
// Concurrency:
//   - Read lock on the source; the result is a fresh, independent graph.

package core

// Clone returns a deep copy of g.
//
// Complexity: O(V + A).
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewDigraph()
	for n := range g.nodes {
		out.addNodeLocked(n)
	}
	for a := range g.arcs {
		out.arcs[a] = struct{}{}
		out.out[a.From][a.To] = struct{}{}
		out.in[a.To][a.From] = struct{}{}
	}

	return out
}

// InducedByNodes returns the subgraph induced by keep: the kept nodes that
// exist in g and every arc of g whose endpoints are both kept.
// Nodes of keep that are absent from g are ignored.
//
// Complexity: O(len(keep) + A).
func (g *Digraph) InducedByNodes(keep []Node) *Digraph {
	set := make(map[Node]struct{}, len(keep))
	for _, n := range keep {
		set[n] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewDigraph()
	for n := range set {
		if _, ok := g.nodes[n]; ok {
			out.addNodeLocked(n)
		}
	}
	for a := range g.arcs {
		_, okFrom := set[a.From]
		_, okTo := set[a.To]
		if !okFrom || !okTo {
			continue
		}
		out.arcs[a] = struct{}{}
		out.out[a.From][a.To] = struct{}{}
		out.in[a.To][a.From] = struct{}{}
	}

	return out
}

// InducedByArcs returns the subgraph made of the given arcs that exist in g,
// with exactly their endpoints as nodes. Arcs absent from g are skipped.
//
// Complexity: O(len(arcs)).
func (g *Digraph) InducedByArcs(arcs []Arc) *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewDigraph()
	for _, a := range arcs {
		if _, ok := g.arcs[a]; !ok {
			continue
		}
		out.addNodeLocked(a.From)
		out.addNodeLocked(a.To)
		out.arcs[a] = struct{}{}
		out.out[a.From][a.To] = struct{}{}
		out.in[a.To][a.From] = struct{}{}
	}

	return out
}
