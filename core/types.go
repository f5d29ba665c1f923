// Package core defines the Node, Arc and Digraph types together with the
// sentinel errors returned by graph mutations.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrArcNotFound    - requested arc does not exist.
//	ErrLoopNotAllowed - an arc whose endpoints coincide.
package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrArcNotFound indicates an operation referenced a non-existent arc.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node is an opaque integer identifier of a graph vertex.
type Node int

// Arc is a directed connection From → To.
//
// Arc is a plain value: two arcs are equal iff both endpoints are equal,
// which makes Arc usable as a map key.
type Arc struct {
	// From is the input (tail) node.
	From Node

	// To is the output (head) node.
	To Node
}

// String renders the arc as "from->to".
func (a Arc) String() string {
	return fmt.Sprintf("%d->%d", a.From, a.To)
}

// Reverse returns the arc with swapped endpoints.
func (a Arc) Reverse() Arc {
	return Arc{From: a.To, To: a.From}
}

// Less orders arcs by From, then To. It is the canonical order used by every
// sorted enumeration in the library.
func (a Arc) Less(b Arc) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// SortArcs sorts arcs in place in canonical order.
func SortArcs(arcs []Arc) {
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].Less(arcs[j]) })
}

// SortNodes sorts nodes in place in ascending order.
func SortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
}

// Digraph is the in-memory directed graph.
//
// mu guards every catalog; out[u][v] and in[v][u] mirror the arc set so both
// directions can be queried without scanning.
type Digraph struct {
	mu sync.RWMutex

	nodes map[Node]struct{}
	arcs  map[Arc]struct{}

	// out[from][to] and in[to][from] index the same arcs.
	out map[Node]map[Node]struct{}
	in  map[Node]map[Node]struct{}
}

// NewDigraph creates a Digraph holding the given nodes and no arcs.
// Complexity: O(len(nodes)).
func NewDigraph(nodes ...Node) *Digraph {
	g := &Digraph{
		nodes: make(map[Node]struct{}, len(nodes)),
		arcs:  make(map[Arc]struct{}),
		out:   make(map[Node]map[Node]struct{}, len(nodes)),
		in:    make(map[Node]map[Node]struct{}, len(nodes)),
	}
	for _, n := range nodes {
		g.addNodeLocked(n)
	}

	return g
}

// FromArcs creates a Digraph whose nodes are exactly the endpoints of arcs.
// Self-loops are rejected with ErrLoopNotAllowed; duplicates are ignored.
//
// Complexity: O(len(arcs)).
func FromArcs(arcs []Arc) (*Digraph, error) {
	g := NewDigraph()
	for _, a := range arcs {
		if err := g.AddArc(a.From, a.To); err != nil {
			return nil, fmt.Errorf("core: FromArcs(%s): %w", a, err)
		}
	}

	return g, nil
}

// addNodeLocked registers n and its adjacency buckets; caller holds mu.
func (g *Digraph) addNodeLocked(n Node) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.out[n] = make(map[Node]struct{})
	g.in[n] = make(map[Node]struct{})
}
