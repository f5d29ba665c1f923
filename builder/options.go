// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cablenet/cable"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the distance between neighbouring turbines.
// Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithSubstationAt places the substation.
func WithSubstationAt(p Point) BuilderOption {
	return func(c *builderConfig) {
		c.substation = p
	}
}

// WithModel replaces the default cable model.
func WithModel(m cable.Model) BuilderOption {
	return func(c *builderConfig) {
		c.model = m
	}
}

// WithMaxNbSec sets maxNbSec for generated instances. Values below 1 are
// passed through so that instance.New can reject them.
func WithMaxNbSec(k int) BuilderOption {
	return func(c *builderConfig) {
		c.maxNbSec = k
	}
}

// WithRootDegree limits the number of cables leaving the substation.
// Panics if d < 0; 0 means unlimited.
func WithRootDegree(d int) BuilderOption {
	if d < 0 {
		panic("builder: WithRootDegree(d<0)")
	}
	return func(c *builderConfig) {
		c.rootDegree = d
	}
}

// WithTurbineDegree limits the number of cables leaving each turbine.
// Panics if d < 0; 0 means unlimited.
func WithTurbineDegree(d int) BuilderOption {
	if d < 0 {
		panic("builder: WithTurbineDegree(d<0)")
	}
	return func(c *builderConfig) {
		c.turbineDegree = d
	}
}
