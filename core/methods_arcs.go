// File: methods_arcs.go
// Role: Arc lifecycle & queries.
//
// Determinism:
//   - Arcs() returns arcs in canonical order (From asc, then To asc).
//
// Concurrency:
//   - Mutations take the write lock; queries the read lock.
package core

// AddArc inserts the arc from→to, auto-adding missing endpoints.
// Adding an existing arc is a no-op.
//
// Errors:
//   - ErrLoopNotAllowed: if from == to.
//
// Complexity: O(1) amortized.
func (g *Digraph) AddArc(from, to Node) error {
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)

	a := Arc{From: from, To: to}
	if _, ok := g.arcs[a]; ok {
		return nil
	}
	g.arcs[a] = struct{}{}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}

	return nil
}

// HasArc reports whether a exists.
//
// Complexity: O(1).
func (g *Digraph) HasArc(a Arc) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.arcs[a]

	return ok
}

// RemoveArc deletes a. Endpoints stay in the graph.
//
// Errors:
//   - ErrArcNotFound: if a is absent.
//
// Complexity: O(1).
func (g *Digraph) RemoveArc(a Arc) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.arcs[a]; !ok {
		return ErrArcNotFound
	}
	delete(g.arcs, a)
	delete(g.out[a.From], a.To)
	delete(g.in[a.To], a.From)

	return nil
}

// Arcs returns every arc in canonical order.
//
// Complexity: O(A log A).
func (g *Digraph) Arcs() []Arc {
	g.mu.RLock()
	out := make([]Arc, 0, len(g.arcs))
	for a := range g.arcs {
		out = append(out, a)
	}
	g.mu.RUnlock()

	SortArcs(out)

	return out
}

// ArcCount returns |A|.
func (g *Digraph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arcs)
}
