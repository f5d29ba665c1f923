// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// impl_scatter.go - implementation of Scatter(n) and Junctions(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Scatter draws turbines uniformly in a square block of side
//     ceil(√n)·spacing on fresh rows.
//   - Junctions draws non-required points uniformly in the bounding box of
//     the nodes placed so far.
//
// Determinism:
//   - Fixed draw order (x then y per node) ⇒ identical farms per seed.

package builder

import "math"

// Scatter returns a Constructor that places n turbines at random.
func Scatter(n int) Constructor {
	return func(f *Farm, cfg builderConfig) error {
		if err := validateMin(MethodScatter, n, 1); err != nil {
			return err
		}
		if err := validateRand(MethodScatter, cfg); err != nil {
			return err
		}

		side := int(math.Ceil(math.Sqrt(float64(n))))
		origin := f.slot(cfg, 0, 0)
		extent := float64(side) * cfg.spacing
		for i := 0; i < n; i++ {
			x := origin.X + cfg.rng.Float64()*extent
			y := origin.Y + cfg.rng.Float64()*extent
			f.add(Point{X: x, Y: y}, true)
		}
		f.row += side + 1

		return nil
	}
}

// Junctions returns a Constructor that adds n non-required junction points
// inside the current bounding box of the farm.
func Junctions(n int) Constructor {
	return func(f *Farm, cfg builderConfig) error {
		if err := validateMin(MethodJunctions, n, 1); err != nil {
			return err
		}
		if err := validateRand(MethodJunctions, cfg); err != nil {
			return err
		}

		lo, hi := f.bounds()
		for i := 0; i < n; i++ {
			x := lo.X + cfg.rng.Float64()*(hi.X-lo.X)
			y := lo.Y + cfg.rng.Float64()*(hi.Y-lo.Y)
			f.add(Point{X: x, Y: y}, false)
		}

		return nil
	}
}

// bounds returns the lower-left and upper-right corners of the farm.
func (f *Farm) bounds() (Point, Point) {
	lo := Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range f.Positions {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
