// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng            = nil  (stochastic constructors fail without one)
//   • spacing        = DefaultSpacing
//   • substation     = (0,0)
//   • model          = DefaultModel(DefaultMaxCapacity)
//   • maxNbSec       = DefaultMaxNbSec
//   • root/turbine degree = 0 (unlimited)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cablenet/cable"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng        *rand.Rand
	spacing    float64
	substation Point
	model      cable.Model

	maxNbSec      int
	rootDegree    int
	turbineDegree int
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing:  DefaultSpacing,
		model:    DefaultModel(DefaultMaxCapacity),
		maxNbSec: DefaultMaxNbSec,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
