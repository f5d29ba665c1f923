// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no randomness unless seeded")
	assert.Equal(t, DefaultSpacing, cfg.spacing)
	assert.Equal(t, Point{}, cfg.substation)
	assert.Equal(t, DefaultMaxNbSec, cfg.maxNbSec)
	assert.Zero(t, cfg.rootDegree)
	assert.Zero(t, cfg.turbineDegree)
	assert.Equal(t, DefaultMaxCapacity, cfg.model.Catalog.MaxStaticCapacity())
}

func TestConfigLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSpacing(10), WithSpacing(20), WithSubstationAt(Point{X: 1, Y: 2}))
	assert.Equal(t, 20.0, cfg.spacing)
	assert.Equal(t, Point{X: 1, Y: 2}, cfg.substation)
}

func TestSeedReproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(9))))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithSpacing(0) })
	assert.Panics(t, func() { WithRootDegree(-1) })
	assert.Panics(t, func() { WithTurbineDegree(-1) })
	assert.NotPanics(t, func() { WithMaxNbSec(0) })
}
