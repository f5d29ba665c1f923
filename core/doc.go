// Package core provides the thread-safe in-memory directed graph that every
// other cablenet package is built on.
//
// The Digraph G = (V, A) stores integer nodes and directed arcs:
//
//   - Node is an opaque integer identifier (turbine, substation, junction).
//   - Arc{From, To} is an ordered pair; it is a comparable value and is used
//     directly as a map key by flow maps and capacity assignments.
//   - Per-node in-arc and out-arc indices make InDegree/OutDegree O(1) and
//     InArcs/OutArcs O(d log d).
//   - One sync.RWMutex guards all catalogs: queries take the read lock,
//     mutations the write lock.
//
// Why a dedicated directed type?
//
//   - Collection networks are always oriented from the substation toward the
//     turbines; undirected or mixed edges never occur.
//   - Repair and validation repeatedly ask "who feeds this node?" which needs
//     an in-arc index next to the out-arc index.
//   - Deterministic iteration: Nodes(), Arcs(), InArcs(), OutArcs() are sorted.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node)                        // O(1), idempotent
//	HasNode(n Node) bool                   // O(1)
//	RemoveNode(n Node) error               // O(deg(n))
//
//	// Arc lifecycle
//	AddArc(from, to Node) error            // O(1), auto-adds endpoints
//	HasArc(a Arc) bool                     // O(1)
//	RemoveArc(a Arc) error                 // O(1)
//
//	// Query
//	Nodes() []Node                         // O(V log V)
//	Arcs() []Arc                           // O(A log A)
//	InArcs(n Node) []Arc                   // O(d log d)
//	OutArcs(n Node) []Arc                  // O(d log d)
//	InDegree(n Node) int / OutDegree(n)    // O(1)
//
//	// Views
//	Clone() *Digraph                       // O(V + A)
//	InducedByNodes(keep []Node) *Digraph   // O(V + A)
//	InducedByArcs(arcs []Arc) *Digraph     // O(len(arcs))
//
// Errors:
//
//	ErrNodeNotFound    – missing node
//	ErrArcNotFound     – missing arc
//	ErrLoopNotAllowed  – self-loop (From == To)
package core
