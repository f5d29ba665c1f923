// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns identifiers sorted ascending.
//
// Concurrency:
//   - All catalogs are protected by mu.
package core

// AddNode inserts n if missing (idempotent).
//
// Complexity: O(1) amortized.
func (g *Digraph) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(n)
}

// HasNode reports whether n exists.
//
// Complexity: O(1).
func (g *Digraph) HasNode(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[n]

	return ok
}

// RemoveNode deletes n and every arc incident to it.
//
// Implementation:
//   - Stage 1: Validate presence (ErrNodeNotFound).
//   - Stage 2: Drop each out-arc n→v from the arc catalog and from in[v].
//   - Stage 3: Drop each in-arc u→n from the arc catalog and from out[u].
//   - Stage 4: Drop the node and its buckets.
//
// Complexity: O(deg(n)).
func (g *Digraph) RemoveNode(n Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n]; !ok {
		return ErrNodeNotFound
	}

	for v := range g.out[n] {
		delete(g.arcs, Arc{From: n, To: v})
		delete(g.in[v], n)
	}
	for u := range g.in[n] {
		delete(g.arcs, Arc{From: u, To: n})
		delete(g.out[u], n)
	}
	delete(g.out, n)
	delete(g.in, n)
	delete(g.nodes, n)

	return nil
}

// Nodes returns all nodes sorted ascending.
//
// Complexity: O(V log V).
func (g *Digraph) Nodes() []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	g.mu.RUnlock()

	SortNodes(out)

	return out
}

// NodeCount returns |V|.
func (g *Digraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
