// SPDX-License-Identifier: MIT
// Package: cablenet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Runtime paths never panic; validation panics are confined to WithX.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not produce a valid result,
// e.g. a nil constructor or an instance rejected by instance.New.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name, keeping
// any %w target matchable.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
