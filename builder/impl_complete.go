// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// impl_complete.go: the complete candidate digraph of a farm.
//
// Contract:
//   • Emits u→v for every ordered pair of distinct nodes except arcs into
//     the substation.
//   • Lengths are Euclidean distances between positions.
//   • Degree limits are attached when configured (0 means unlimited).
//
// Complexity:
//   • Time: O(n²) arcs; Space: O(n²) for the length table.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/instance"
)

// Instance returns the cabling problem over the complete digraph of f.
// opts are applied after the builder defaults and may override them.
// Failures from instance.New are wrapped with ErrConstructFailed.
func (f *Farm) Instance(opts ...instance.Option) (*instance.Instance, error) {
	nodes := f.Nodes()
	g := core.NewDigraph(nodes...)
	dist := make(map[core.Arc]float64, len(nodes)*len(nodes))

	for _, u := range nodes {
		pu := f.Positions[u]
		for _, v := range nodes {
			if u == v || v == f.Root {
				continue
			}
			if err := g.AddArc(u, v); err != nil {
				return nil, builderErrorf(MethodInstance, "AddArc(%d→%d): %w", u, v, err)
			}
			dist[core.Arc{From: u, To: v}] = pu.Dist(f.Positions[v])
		}
	}

	base := []instance.Option{
		instance.WithRequired(f.Turbines...),
		instance.WithDistances(dist),
		instance.WithModel(f.cfg.model),
		instance.WithMaxNbSec(f.cfg.maxNbSec),
	}
	if f.cfg.rootDegree > 0 {
		base = append(base, instance.WithMaxOutputDegree(f.Root, f.cfg.rootDegree))
	}
	if f.cfg.turbineDegree > 0 {
		for _, t := range f.Turbines {
			base = append(base, instance.WithMaxOutputDegree(t, f.cfg.turbineDegree))
		}
	}

	inst, err := instance.New(g, f.Root, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodInstance, ErrConstructFailed, err)
	}

	return inst, nil
}
