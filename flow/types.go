package flow

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cablenet/core"
)

// Sentinel errors for Repair and CheckConservation.
var (
	// ErrNilInstance is returned when the instance pointer is nil.
	ErrNilInstance = errors.New("flow: instance is nil")

	// ErrArcNotInGraph indicates a flow arc absent from the instance graph.
	ErrArcNotInGraph = errors.New("flow: arc not in graph")

	// ErrNonPositiveFlow indicates a flow value ≤ 0.
	ErrNonPositiveFlow = errors.New("flow: non-positive flow")

	// ErrNoCommonAncestor indicates a merge whose feeds share no ancestor.
	ErrNoCommonAncestor = errors.New("flow: no common ancestor")

	// ErrNotArborescence indicates the support is not a spanning in-tree
	// once every merge is removed.
	ErrNotArborescence = errors.New("flow: result is not an arborescence")

	// ErrConservation is matched by every *ConservationError.
	ErrConservation = errors.New("flow: conservation violated")
)

// ConservationError reports a node whose in−out balance differs from its
// demand (1 for a turbine, 0 otherwise).
type ConservationError struct {
	Node    core.Node
	In, Out int
	Want    int
}

func (e *ConservationError) Error() string {
	return fmt.Sprintf("flow: conservation violated at node %d: in=%d out=%d, want in-out=%d",
		e.Node, e.In, e.Out, e.Want)
}

// Unwrap lets errors.Is match ErrConservation.
func (e *ConservationError) Unwrap() error { return ErrConservation }

// Map assigns each used arc the number of turbines it serves.
type Map map[core.Arc]int

// Clone returns a copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for a, f := range m {
		out[a] = f
	}
	return out
}

// Arcs returns the arcs of m in canonical order.
func (m Map) Arcs() []core.Arc {
	arcs := make([]core.Arc, 0, len(m))
	for a := range m {
		arcs = append(arcs, a)
	}
	core.SortArcs(arcs)
	return arcs
}

// Max returns the largest flow value, or 0 for an empty map.
func (m Map) Max() int {
	best := 0
	for _, f := range m {
		if f > best {
			best = f
		}
	}
	return best
}

// Cancellation describes one removed merge.
type Cancellation struct {
	// Node is the merge node whose second feed was cancelled.
	Node core.Node
	// Ancestor is the common ancestor of both feeds.
	Ancestor core.Node
	// Delta is the number of units moved from the lighter feed to the other.
	Delta int
	// Dropped lists the arcs whose flow reached zero.
	Dropped []core.Arc
}

// Option configures Repair.
type Option func(*Options)

// Options holds Repair settings.
type Options struct {
	// Logger receives one Debug entry per cancellation.
	Logger logrus.FieldLogger

	// OnCancel, if non-nil, is called after every cancellation.
	OnCancel func(Cancellation)

	// Strict runs CheckConservation on the input before repairing.
	Strict bool
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns Options with a discarding logger, no hook and
// strict mode off.
func DefaultOptions() Options {
	return Options{Logger: discard}
}

// WithLogger routes cancellation traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCancel registers a hook invoked after every cancellation.
func WithOnCancel(fn func(Cancellation)) Option {
	return func(o *Options) {
		o.OnCancel = fn
	}
}

// WithStrict enables the flow conservation precheck.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}
