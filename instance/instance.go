package instance

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/core"
)

// validate is the shared struct-tag validator; validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New()

// New builds and validates an Instance over g rooted at root.
//
// Steps:
//  1. Reject a nil graph or a root outside g.
//  2. Apply options in order (later values override earlier ones).
//  3. Check struct constraints: maxNbSec ≥ 1, non-negative lengths,
//     degrees and prices, a non-empty static catalog.
//  4. Check that required nodes and degree limits name nodes of g and that
//     every arc of g has a length.
//
// The graph is not copied; callers must not mutate it afterwards.
func New(g *core.Digraph, root core.Node, opts ...Option) (*Instance, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, ErrNilGraph)
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidInstance, ErrRootNotFound, root)
	}

	p := newParams()
	for _, opt := range opts {
		opt(&p)
	}

	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, formatValidationError(err))
	}

	inst := &Instance{
		graph:    g,
		root:     root,
		required: make(map[core.Node]struct{}, len(p.Required)),
		distance: make(map[core.Arc]float64, len(p.Distances)),
		model:    p.Model,
		maxDeg:   make(map[core.Node]int, len(p.MaxDegree)),
		maxNbSec: p.MaxNbSec,
	}
	inst.model.Catalog = p.Model.Catalog.Clone()

	for _, n := range p.Required {
		if !g.HasNode(n) {
			return nil, fmt.Errorf("%w: %w: required node %d", ErrInvalidInstance, ErrUnknownNode, n)
		}
		inst.required[n] = struct{}{}
	}
	for n, d := range p.MaxDegree {
		if !g.HasNode(n) {
			return nil, fmt.Errorf("%w: %w: degree limit on %d", ErrInvalidInstance, ErrUnknownNode, n)
		}
		inst.maxDeg[n] = d
	}
	for _, a := range g.Arcs() {
		d, ok := p.Distances[a]
		if !ok {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidInstance, ErrMissingDistance, a)
		}
		inst.distance[a] = d
	}

	return inst, nil
}

// formatValidationError turns the first field violation into a readable error.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", e.Namespace())
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s, got %v", e.Namespace(), e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
	}
}

// Graph returns the candidate route graph. It must be treated as read-only.
func (in *Instance) Graph() *core.Digraph { return in.graph }

// Root returns the substation node.
func (in *Instance) Root() core.Node { return in.root }

// IsRequired reports whether n is a turbine.
func (in *Instance) IsRequired(n core.Node) bool {
	_, ok := in.required[n]
	return ok
}

// Required lists the required nodes in ascending order.
func (in *Instance) Required() []core.Node {
	out := make([]core.Node, 0, len(in.required))
	for n := range in.required {
		out = append(out, n)
	}
	core.SortNodes(out)
	return out
}

// RequiredCount returns the number of required nodes.
func (in *Instance) RequiredCount() int { return len(in.required) }

// Distance returns the length of a.
func (in *Instance) Distance(a core.Arc) (float64, bool) {
	d, ok := in.distance[a]
	return d, ok
}

// Model returns the cable cost model.
func (in *Instance) Model() cable.Model { return in.model }

// MaxOutputDegree returns the branching limit of n, if any.
func (in *Instance) MaxOutputDegree(n core.Node) (int, bool) {
	d, ok := in.maxDeg[n]
	return d, ok
}

// MaxOutputDegrees returns a copy of every configured branching limit.
func (in *Instance) MaxOutputDegrees() map[core.Node]int {
	out := make(map[core.Node]int, len(in.maxDeg))
	for n, d := range in.maxDeg {
		out[n] = d
	}
	return out
}

// MaxNbSec returns the maximum number of distinct cable capacities.
func (in *Instance) MaxNbSec() int { return in.maxNbSec }

// RequiredEndpoints counts the required endpoints of a (0, 1 or 2).
func (in *Instance) RequiredEndpoints(a core.Arc) int {
	nb := 0
	if in.IsRequired(a.From) {
		nb++
	}
	if in.IsRequired(a.To) {
		nb++
	}
	return nb
}
