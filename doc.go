// Package cablenet post-processes wind-farm cable layouts: it turns an
// approximate flow layout into a priced, certified cable arborescence.
//
// What is cablenet?
//
//	An in-memory toolkit built around three steps:
//		• Tree repair: cancel merges until the layout is an arborescence
//		• Capacity consolidation: size every cable with at most maxNbSec types
//		• Validation: classify any candidate layout against the constraints
//
// Everything is organized in flat subpackages:
//
//	core/          Node, Arc and the thread-safe Digraph
//	bfs/           breadth-first search with hooks, depth limit and reverse mode
//	cable/         cable catalog and the static/dynamic cost model
//	instance/      the wind-farm instance: graph, root, turbines, lengths, limits
//	flow/          flow maps, conservation check and tree repair
//	consolidate/   dynamic program over capacity brackets
//	validate/      violation tags, union-find and the feasibility check
//	pipeline/      repair → consolidate → validate, batches and merges
//	builder/       synthetic farms and raw layouts for tests and benchmarks
//	config/        YAML/TOML configuration
//	logging/       logrus setup with rotating files
//	metrics/       Prometheus recorder
//
// A feeder with a merge at node 4:
//
//	    0
//	    │5
//	    1
//	  3/ \2
//	  2   3
//	  3\ /2
//	    4
//	    │5
//	    5
//
// Repair moves the 2 units of 1→3→4 onto 1→2→4, leaving the chain
// 0→1→2→4→5 carrying 5 everywhere.
//
//	go get github.com/katalvlaran/cablenet
package cablenet
