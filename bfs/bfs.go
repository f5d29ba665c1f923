package bfs

import (
	"fmt"

	"github.com/katalvlaran/cablenet/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Digraph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil, ErrStartNodeNotFound or ErrOptionViolation for
// invalid input, or a wrapped OnVisit error together with the partial Result.
func BFS(g *core.Digraph, start core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:   make([]core.Node, 0, n),
			Depth:   make(map[core.Node]int, n),
			Parent:  make(map[core.Node]core.Node, n),
			Via:     make(map[core.Node]core.Arc, n),
			reverse: o.Reverse,
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{node: start, depth: 0})

	return w.res, w.loop()
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors expands item along out-arcs (or in-arcs in reverse mode),
// honoring FilterArc and MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	var arcs []core.Arc
	if w.opts.Reverse {
		arcs = w.graph.InArcs(item.node)
	} else {
		arcs = w.graph.OutArcs(item.node)
	}

	for _, a := range arcs {
		if !w.opts.FilterArc(a) {
			continue
		}
		nbr := a.To
		if w.opts.Reverse {
			nbr = a.From
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.node
		w.res.Via[nbr] = a
		w.queue = append(w.queue, queueItem{node: nbr, depth: next})
	}
}
