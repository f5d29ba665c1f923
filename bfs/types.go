package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cablenet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a node is dequeued. Returning an error aborts
	// the search; BFS wraps it and returns the partial Result alongside.
	OnVisit func(n core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterArc skips arcs for which it returns false. The arc is given in
	// graph orientation even in reverse mode.
	FilterArc func(a core.Arc) bool

	// Reverse follows in-arcs instead of out-arcs.
	Reverse bool

	err error
}

// DefaultOptions returns Options with no hooks, no depth limit, no
// filtering and forward orientation.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(core.Node, int) error { return nil },
		MaxDepth:  0,
		FilterArc: func(core.Arc) bool { return true },
		Reverse:   false,
	}
}

// WithOnVisit registers a visit hook; an error from it stops the BFS.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(a core.Arc) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// WithReverse walks in-arcs, enumerating the ancestors of the start node.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists nodes in visit sequence; Order[0] is the start node.
	Order []core.Node

	// Depth maps each discovered node to its hop distance from the start.
	Depth map[core.Node]int

	// Parent maps each discovered node (except the start) to the node it
	// was discovered from.
	Parent map[core.Node]core.Node

	// Via maps each discovered node (except the start) to the arc used to
	// discover it, in graph orientation.
	Via map[core.Node]core.Arc

	reverse bool
}

// Reached reports whether n was discovered.
func (r *Result) Reached(n core.Node) bool {
	_, ok := r.Depth[n]
	return ok
}

// PathTo returns the tree arcs joining the start node and dest, ordered
// along graph orientation: start → dest in forward mode, dest → start in
// reverse mode.
func (r *Result) PathTo(dest core.Node) ([]core.Arc, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	var path []core.Arc
	for cur := dest; ; {
		a, ok := r.Via[cur]
		if !ok {
			break
		}
		path = append(path, a)
		cur = r.Parent[cur]
	}
	if r.reverse {
		// collected dest → start, which already follows the arcs
		return path, nil
	}
	// collected dest → start against the arcs; flip to start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
