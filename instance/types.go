package instance

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/core"
)

// Sentinel errors for instance construction and lookups.
var (
	// ErrInvalidInstance is matched by every construction failure.
	ErrInvalidInstance = errors.New("instance: invalid instance")

	// ErrNilGraph indicates New received a nil graph.
	ErrNilGraph = errors.New("instance: graph is nil")

	// ErrRootNotFound indicates the root is not a node of the graph.
	ErrRootNotFound = errors.New("instance: root not in graph")

	// ErrUnknownNode indicates an option referenced a node outside the graph.
	ErrUnknownNode = errors.New("instance: unknown node")

	// ErrMissingDistance indicates an arc has no length.
	ErrMissingDistance = errors.New("instance: arc has no distance")
)

// Instance is an immutable wind-farm cable layout problem.
type Instance struct {
	graph    *core.Digraph
	root     core.Node
	required map[core.Node]struct{}
	distance map[core.Arc]float64
	model    cable.Model
	maxDeg   map[core.Node]int
	maxNbSec int
}

// Assignment maps each arc of a layout to its cable capacity.
type Assignment map[core.Arc]int

// Clone returns a copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Arcs returns the assigned arcs in canonical order.
func (a Assignment) Arcs() []core.Arc {
	arcs := make([]core.Arc, 0, len(a))
	for k := range a {
		arcs = append(arcs, k)
	}
	core.SortArcs(arcs)
	return arcs
}

// Capacities returns the distinct capacities in ascending order.
func (a Assignment) Capacities() []int {
	seen := make(map[int]struct{}, len(a))
	for _, c := range a {
		seen[c] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}
