// Package bfs provides breadth-first search over a core.Digraph, returning
// visit order, hop depths, parent links and the arcs of the BFS tree.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Forward mode follows out-arcs (substation → turbines); reverse mode
//     (WithReverse) follows in-arcs and therefore enumerates ancestors.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  node → hop distance from start
//   - Parent: node → the node it was discovered from
//   - Via:    node → the graph arc used to discover it (in graph orientation)
//   - OnVisit may abort the search; the partial Result is still returned.
//   - FilterArc prunes individual arcs; MaxDepth bounds the layering.
//
// Why
//
//   - Reachability of terminals and leaf-to-root aggregation in validate.
//   - Ancestor search for merge cancellation in flow.Repair.
//
// Determinism
//
//	core.Digraph returns OutArcs/InArcs in canonical order and BFS enqueues in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, A = |Arcs|)
//
//   - Time:   O(V + A log d)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNodeNotFound if the start node does not exist.
//   - ErrOptionViolation   if an Option is invalid (negative MaxDepth).
//   - Wrapped OnVisit hook errors.
package bfs
