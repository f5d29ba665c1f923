// Package instance defines the wind-farm cable layout problem handed to the
// repair, consolidation and validation stages.
//
// An Instance bundles:
//
//   - a core.Digraph of candidate cable routes,
//   - the root (substation) every cable ultimately feeds,
//   - the required nodes (turbines),
//   - a length per arc,
//   - a cable.Model pricing cables by capacity,
//   - per-node maximum output degree (branching limit),
//   - maxNbSec, the number of distinct cable types a solution may use.
//
// Instances are built once with New and functional options, validated on
// construction (struct tags checked by go-playground/validator plus graph
// membership checks) and read-only afterwards; they may be shared between
// goroutines.
//
//	inst, err := instance.New(g, 0,
//	    instance.WithRequired(1, 2, 3),
//	    instance.WithDistances(lengths),
//	    instance.WithModel(model),
//	    instance.WithMaxNbSec(2),
//	)
//
// Every construction failure matches ErrInvalidInstance; the specific cause
// (ErrNilGraph, ErrRootNotFound, ErrUnknownNode, ErrMissingDistance or a
// field constraint) is joined to it.
//
// Restrict derives the sub-instance induced by a batch of nodes plus the
// root, which is how large farms are solved batch by batch.
package instance
