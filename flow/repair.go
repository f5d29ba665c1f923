package flow

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cablenet/bfs"
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/instance"
)

// errFound stops the ancestor search once the common ancestor is dequeued.
var errFound = errors.New("flow: ancestor found")

// repairer holds the mutable state of one Repair call.
type repairer struct {
	inst    *instance.Instance
	opts    Options
	flows   Map
	support *core.Digraph
}

// Repair returns a copy of flows whose support is a spanning arborescence
// rooted at inst.Root(), removing merges by cycle cancellation.
//
// Implementation:
//   - Stage 1: Validate arcs and values; in strict mode check conservation.
//   - Stage 2: Cancel the smallest merge until none is left.
//   - Stage 3: Verify the tree shape of the remaining support.
//
// Complexity: O(M · (V + A) log A) for M merges removed (M ≤ A).
func Repair(inst *instance.Instance, flows Map, opts ...Option) (Map, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1
	g := inst.Graph()
	arcs := flows.Arcs()
	for _, a := range arcs {
		if !g.HasArc(a) {
			return nil, fmt.Errorf("%w: %s", ErrArcNotInGraph, a)
		}
		if flows[a] <= 0 {
			return nil, fmt.Errorf("%w: %s carries %d", ErrNonPositiveFlow, a, flows[a])
		}
	}
	if o.Strict {
		if err := CheckConservation(inst, flows); err != nil {
			return nil, err
		}
	}

	r := &repairer{
		inst:    inst,
		opts:    o,
		flows:   flows.Clone(),
		support: g.InducedByArcs(arcs),
	}

	// Stage 2
	for {
		v, a1, a2, ok := r.nextMerge()
		if !ok {
			break
		}
		if err := r.cancel(v, a1, a2); err != nil {
			return nil, err
		}
	}

	// Stage 3
	if err := r.checkTree(); err != nil {
		return nil, err
	}

	return r.flows, nil
}

// nextMerge returns the smallest node with in-degree ≥ 2 and its first two
// in-arcs ordered so that a1 carries the smaller flow (ties keep arc order).
func (r *repairer) nextMerge() (core.Node, core.Arc, core.Arc, bool) {
	for _, v := range r.support.Nodes() {
		if r.support.InDegree(v) < 2 {
			continue
		}
		in := r.support.InArcs(v)
		a1, a2 := in[0], in[1]
		if r.flows[a2] < r.flows[a1] {
			a1, a2 = a2, a1
		}
		return v, a1, a2, true
	}

	return 0, core.Arc{}, core.Arc{}, false
}

// cancel moves the flow of the lighter feed a1 of v onto the route of a2.
func (r *repairer) cancel(v core.Node, a1, a2 core.Arc) error {
	skipV := bfs.WithFilterArc(func(a core.Arc) bool { return a.From != v })

	anc, err := bfs.BFS(r.support, a2.From, bfs.WithReverse(), skipV)
	if err != nil {
		return fmt.Errorf("flow: ancestors of %d: %w", a2.From, err)
	}

	var x core.Node
	found := false
	walk, err := bfs.BFS(r.support, a1.From, bfs.WithReverse(), skipV,
		bfs.WithOnVisit(func(n core.Node, _ int) error {
			if anc.Reached(n) {
				x, found = n, true
				return errFound
			}
			return nil
		}))
	if err != nil && !errors.Is(err, errFound) {
		return fmt.Errorf("flow: ancestors of %d: %w", a1.From, err)
	}
	if !found {
		return fmt.Errorf("%w: feeds %s and %s of node %d", ErrNoCommonAncestor, a1, a2, v)
	}

	p1, err := walk.PathTo(x)
	if err != nil {
		return err
	}
	p2, err := anc.PathTo(x)
	if err != nil {
		return err
	}
	p1 = append(p1, a1)
	p2 = append(p2, a2)

	delta := r.flows[a1]
	for _, a := range p1 {
		if r.flows[a] < delta {
			delta = r.flows[a]
		}
	}

	var dropped []core.Arc
	for _, a := range p1 {
		r.flows[a] -= delta
		if r.flows[a] == 0 {
			delete(r.flows, a)
			r.dropArc(a)
			dropped = append(dropped, a)
		}
	}
	for _, a := range p2 {
		r.flows[a] += delta
	}

	r.opts.Logger.WithFields(logrus.Fields{
		"node":     v,
		"ancestor": x,
		"delta":    delta,
		"dropped":  len(dropped),
	}).Debug("flow: merge cancelled")
	if r.opts.OnCancel != nil {
		r.opts.OnCancel(Cancellation{Node: v, Ancestor: x, Delta: delta, Dropped: dropped})
	}

	return nil
}

// dropArc removes a from the support together with endpoints left isolated,
// so the support always equals the subgraph induced by the flow arcs.
func (r *repairer) dropArc(a core.Arc) {
	_ = r.support.RemoveArc(a)
	for _, n := range [2]core.Node{a.From, a.To} {
		if r.support.InDegree(n) == 0 && r.support.OutDegree(n) == 0 {
			_ = r.support.RemoveNode(n)
		}
	}
}

// checkTree verifies |A| = |V|−1, no arc into the root and full
// reachability from the root. In-degrees are already ≤ 1.
func (r *repairer) checkTree() error {
	if len(r.flows) == 0 {
		return nil
	}
	root := r.inst.Root()
	if !r.support.HasNode(root) {
		return fmt.Errorf("%w: root %d carries no flow", ErrNotArborescence, root)
	}
	if r.support.InDegree(root) > 0 {
		return fmt.Errorf("%w: root %d has an incoming arc", ErrNotArborescence, root)
	}
	nodes, arcs := r.support.NodeCount(), r.support.ArcCount()
	if arcs != nodes-1 {
		return fmt.Errorf("%w: %d arcs over %d nodes", ErrNotArborescence, arcs, nodes)
	}
	res, err := bfs.BFS(r.support, root)
	if err != nil {
		return err
	}
	if len(res.Order) != nodes {
		return fmt.Errorf("%w: %d of %d nodes reachable from root", ErrNotArborescence, len(res.Order), nodes)
	}

	r.opts.Logger.WithField("arcs", arcs).Debug("flow: arborescence recovered")

	return nil
}
