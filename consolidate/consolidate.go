package consolidate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/flow"
	"github.com/katalvlaran/cablenet/instance"
)

// table is the flat DP arena indexed (arc i, bracket j, distinct-count k).
type table struct {
	f, k int
	cost []float64
	back []int32
}

func newTable(n, f, k int) *table {
	t := &table{f: f, k: k, cost: make([]float64, n*f*k), back: make([]int32, n*f*k)}
	inf := math.Inf(1)
	for i := range t.cost {
		t.cost[i] = inf
		t.back[i] = -1
	}
	return t
}

func (t *table) idx(i, j, k int) int { return (i*t.f+j)*t.k + k }

// Consolidate returns the cheapest capacity assignment of flows using at
// most maxNbSec distinct capacities (the instance value unless overridden
// by WithMaxNbSec). Inputs are not mutated.
//
// Complexity: O(n·F·K) time and space, plus O(n·F) cost evaluations.
func Consolidate(inst *instance.Instance, flows flow.Map, opts ...Option) (*Result, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	maxNbSec := inst.MaxNbSec()
	if o.MaxNbSec > 0 {
		maxNbSec = o.MaxNbSec
	}
	if maxNbSec < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxNbSec, maxNbSec)
	}
	if len(flows) == 0 {
		return &Result{Capacities: instance.Assignment{}}, nil
	}

	// Stage 1: order arcs by descending flow.
	arcs := flows.Arcs()
	for _, a := range arcs {
		if flows[a] <= 0 {
			return nil, fmt.Errorf("%w: %s carries %d", ErrNonPositiveFlow, a, flows[a])
		}
	}
	sort.SliceStable(arcs, func(x, y int) bool { return flows[arcs[x]] > flows[arcs[y]] })

	n, maxFlow := len(arcs), flows[arcs[0]]
	k := min(maxNbSec, maxFlow, n)

	// Stage 2: cable cost per (arc, bracket); +Inf where undefined.
	costs, err := costTable(inst, arcs, flows, maxFlow)
	if err != nil {
		return nil, err
	}

	// Stage 3: fill the arena.
	t := newTable(n, maxFlow, k)
	t.cost[t.idx(0, maxFlow-1, 0)] = costs[maxFlow-1]
	suffix := make([]float64, k)
	suffixArg := make([]int32, k)
	for i := 1; i < n; i++ {
		fl := flows[arcs[i]]
		for kk := range suffix {
			suffix[kk], suffixArg[kk] = math.Inf(1), -1
		}
		for j := maxFlow - 1; j >= 0; j-- {
			if j >= fl-1 {
				c := costs[i*maxFlow+j]
				for kk := 0; kk < k && kk <= i; kk++ {
					best, arg := t.cost[t.idx(i-1, j, kk)], int32(j)
					if kk > 0 && suffix[kk-1] < best {
						best, arg = suffix[kk-1], suffixArg[kk-1]
					}
					if math.IsInf(best, 1) || math.IsInf(c, 1) {
						continue
					}
					t.cost[t.idx(i, j, kk)] = c + best
					t.back[t.idx(i, j, kk)] = arg
				}
			}
			// Extend the suffix minimum with bracket j for the next (lower) j.
			for kk := 0; kk < k; kk++ {
				if v := t.cost[t.idx(i-1, j, kk)]; v < suffix[kk] {
					suffix[kk], suffixArg[kk] = v, int32(j)
				}
			}
		}
	}

	// Stage 4: best final state, then backtrack.
	bestJ, bestK, bestCost := -1, -1, math.Inf(1)
	for j := 0; j < maxFlow; j++ {
		for kk := 0; kk < k; kk++ {
			if v := t.cost[t.idx(n-1, j, kk)]; v < bestCost {
				bestJ, bestK, bestCost = j, kk, v
			}
		}
	}
	if bestJ < 0 {
		return nil, fmt.Errorf("consolidate: no assignment with at most %d capacities: %w", maxNbSec, cable.ErrUndefinedCost)
	}

	res := &Result{Capacities: make(instance.Assignment, n), Cost: bestCost}
	j, kk := bestJ, bestK
	for i := n - 1; i >= 0; i-- {
		res.Capacities[arcs[i]] = j + 1
		if i == 0 {
			break
		}
		prev := int(t.back[t.idx(i, j, kk)])
		if prev != j {
			kk--
		}
		j = prev
	}
	res.Brackets = res.Capacities.Capacities()

	o.Logger.WithFields(logrus.Fields{
		"arcs":     n,
		"brackets": res.Brackets,
		"cost":     res.Cost,
	}).Debug("consolidate: capacities assigned")

	return res, nil
}

// costTable evaluates RealCableCost for every arc and admissible bracket.
// Undefined costs become +Inf; any other error aborts.
func costTable(inst *instance.Instance, arcs []core.Arc, flows flow.Map, maxFlow int) ([]float64, error) {
	costs := make([]float64, len(arcs)*maxFlow)
	for i, a := range arcs {
		for j := 0; j < maxFlow; j++ {
			if j < flows[a]-1 {
				costs[i*maxFlow+j] = math.Inf(1)
				continue
			}
			c, err := inst.RealCableCost(a, j+1)
			switch {
			case errors.Is(err, cable.ErrUndefinedCost):
				c = math.Inf(1)
			case err != nil:
				return nil, fmt.Errorf("consolidate: cost of %s: %w", a, err)
			}
			costs[i*maxFlow+j] = c
		}
	}
	return costs, nil
}
