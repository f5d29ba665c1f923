// Package validate certifies candidate cable layouts.
//
// Check classifies an arc→capacity assignment against an instance and
// returns the set of violated constraint categories as a Violations
// bitmask. A structurally broken candidate is never an error: every check
// runs and reports, so the empty set is the only success signal.
//
//	v, err := validate.Check(inst, caps)
//	if err != nil { ... }  // nil instance only
//	if v.Empty() { ... }   // feasible
//	fmt.Println(v)         // e.g. "DEGREE_VIOLATED|NBSEC_VIOLATED"
//
// Acyclicity uses an iterative union-find with path compression and union
// by rank; reachability and demand aggregation use a BFS from the root over
// the candidate arcs.
package validate
