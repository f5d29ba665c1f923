package instance

import (
	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/core"
)

// Option configures an Instance under construction.
type Option func(*params)

// params collects option values before validation.
type params struct {
	Required  []core.Node
	Distances map[core.Arc]float64 `validate:"dive,gte=0"`
	Model     cable.Model
	MaxDegree map[core.Node]int `validate:"dive,gte=0"`
	MaxNbSec  int               `validate:"min=1"`
}

func newParams() params {
	return params{
		Distances: make(map[core.Arc]float64),
		MaxDegree: make(map[core.Node]int),
	}
}

// WithRequired marks nodes as required (turbines). Repeated calls accumulate.
func WithRequired(nodes ...core.Node) Option {
	return func(p *params) {
		p.Required = append(p.Required, nodes...)
	}
}

// WithDistance sets the length of one arc.
func WithDistance(a core.Arc, d float64) Option {
	return func(p *params) {
		p.Distances[a] = d
	}
}

// WithDistances sets the length of every arc in ds.
func WithDistances(ds map[core.Arc]float64) Option {
	return func(p *params) {
		for a, d := range ds {
			p.Distances[a] = d
		}
	}
}

// WithModel sets the cable cost model.
func WithModel(m cable.Model) Option {
	return func(p *params) {
		p.Model = m
	}
}

// WithMaxOutputDegree limits the number of cables leaving n.
// Nodes without a limit are unconstrained.
func WithMaxOutputDegree(n core.Node, d int) Option {
	return func(p *params) {
		p.MaxDegree[n] = d
	}
}

// WithMaxOutputDegrees applies WithMaxOutputDegree for every entry of ds.
func WithMaxOutputDegrees(ds map[core.Node]int) Option {
	return func(p *params) {
		for n, d := range ds {
			p.MaxDegree[n] = d
		}
	}
}

// WithMaxNbSec sets the maximum number of distinct cable capacities.
// Values below 1 make New fail.
func WithMaxNbSec(k int) Option {
	return func(p *params) {
		p.MaxNbSec = k
	}
}
