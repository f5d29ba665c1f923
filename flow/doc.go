// Package flow repairs flow-labelled cable layouts into spanning
// arborescences (in-trees oriented away from the substation).
//
// A flow Map assigns every used arc the number of turbines whose power it
// carries. Construction heuristics may leave "merges": nodes fed by two or
// more cables. Repair removes them one at a time by cycle cancellation:
//
//  1. Pick the smallest node v with in-degree ≥ 2 and its first two in-arcs;
//     a1 carries the smaller flow.
//  2. Reverse-BFS from tail(a2) (v excluded) collects the ancestors A2.
//     Reverse-BFS from tail(a1) stops at the first node x ∈ A2, the common
//     ancestor. The two resulting routes p1 = x⇝a1 and p2 = x⇝a2 share no
//     intermediate node.
//  3. δ = min flow along p1. Subtract δ along p1, dropping arcs that reach
//     zero, and add δ along p2.
//
// Every node keeps its in−out balance, so the substation's outflow is
// unchanged and the rerouted units still reach their turbines. Each step
// removes at least one arc, so the loop ends after at most |arcs| steps.
// Once no merge is left, the support must be a tree: |V|−1 arcs, no arc into
// the root, every node reachable from the root.
//
// Errors:
//
//	ErrNilInstance      - Repair received a nil instance.
//	ErrArcNotInGraph    - a flow arc is not a candidate route.
//	ErrNonPositiveFlow  - a flow value ≤ 0.
//	ErrNoCommonAncestor - the two feeds of a merge share no ancestor.
//	ErrNotArborescence  - merges removed but the support is not a tree.
//	*ConservationError  - strict mode only: a node's balance is wrong.
//
// Inputs are never mutated; Repair returns a fresh Map. Progress is
// reported to an optional logrus.FieldLogger at Debug level and to an
// optional OnCancel hook.
package flow
