// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildFarm(bopts, cons...). Creates the farm, resolves
//     cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig kept by
//     the Farm for Instance and TreeFlows.
//   - Determinism: same options, seed and constructor order ⇒ identical farms.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cablenet/core"
)

// Point is a planar position in metres.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Farm is a generated wind-farm layout.
type Farm struct {
	// Root is the substation node (always RootNode).
	Root core.Node

	// Positions holds the location of every node.
	Positions map[core.Node]Point

	// Turbines lists the required nodes in creation order.
	Turbines []core.Node

	// Junctions lists the optional non-required nodes in creation order.
	Junctions []core.Node

	cfg  builderConfig
	next core.Node
	row  int
}

// Constructor adds nodes to a Farm using the resolved builderConfig.
// Constructors validate parameters first and never panic.
type Constructor func(f *Farm, cfg builderConfig) error

// BuildFarm creates a Farm with its substation, resolves bopts and applies
// all constructors in order. Constructor errors are wrapped with
// "BuildFarm: %w".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildFarm(bopts []BuilderOption, cons ...Constructor) (*Farm, error) {
	cfg := newBuilderConfig(bopts...)
	f := &Farm{
		Root:      RootNode,
		Positions: map[core.Node]Point{RootNode: cfg.substation},
		cfg:       cfg,
		next:      RootNode + 1,
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildFarm: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildFarm: %w", err)
		}
	}

	return f, nil
}

// Nodes returns every node of the farm in ascending order.
func (f *Farm) Nodes() []core.Node {
	out := make([]core.Node, 0, len(f.Positions))
	for n := range f.Positions {
		out = append(out, n)
	}
	core.SortNodes(out)
	return out
}

// add places a node at p and returns its identifier.
func (f *Farm) add(p Point, required bool) core.Node {
	n := f.next
	f.next++
	f.Positions[n] = p
	if required {
		f.Turbines = append(f.Turbines, n)
	} else {
		f.Junctions = append(f.Junctions, n)
	}
	return n
}

// slot returns the position of (row, col) relative to the substation, rows
// counted from the next free row.
func (f *Farm) slot(cfg builderConfig, row, col int) Point {
	return Point{
		X: cfg.substation.X + float64(col)*cfg.spacing,
		Y: cfg.substation.Y + float64(f.row+row+1)*cfg.spacing,
	}
}
