package flow_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/cablenet/bfs"
	"github.com/katalvlaran/cablenet/builder"
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/flow"
)

func TestRepairProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("repair yields a conserving arborescence", prop.ForAll(
		func(seed int64, rows, cols, merges int) bool {
			f, err := builder.BuildFarm([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Grid(rows, cols))
			if err != nil {
				return false
			}
			inst, err := f.Instance()
			if err != nil {
				return false
			}
			raw, err := f.TreeFlows(merges)
			if err != nil || flow.CheckConservation(inst, raw) != nil {
				return false
			}
			tree, err := flow.Repair(inst, raw, flow.WithStrict())
			if err != nil || flow.CheckConservation(inst, tree) != nil {
				return false
			}

			g, err := core.FromArcs(tree.Arcs())
			if err != nil || g.ArcCount() != g.NodeCount()-1 {
				return false
			}
			res, err := bfs.BFS(g, inst.Root())
			if err != nil || len(res.Order) != g.NodeCount() {
				return false
			}
			for _, n := range g.Nodes() {
				if n != inst.Root() && g.InDegree(n) != 1 {
					return false
				}
			}
			for _, n := range inst.Required() {
				if !res.Reached(n) {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 4), gen.IntRange(1, 4), gen.IntRange(0, 6),
	))

	properties.Property("repair never raises the flow out of the root", prop.ForAll(
		func(seed int64, merges int) bool {
			f, err := builder.BuildFarm([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Grid(3, 3))
			if err != nil {
				return false
			}
			inst, err := f.Instance()
			if err != nil {
				return false
			}
			raw, err := f.TreeFlows(merges)
			if err != nil {
				return false
			}
			tree, err := flow.Repair(inst, raw)
			if err != nil {
				return false
			}
			out := func(m flow.Map) int {
				total := 0
				for a, v := range m {
					if a.From == inst.Root() {
						total += v
					}
				}
				return total
			}
			return out(tree) == out(raw) && out(tree) == inst.RequiredCount()
		},
		gen.Int64(), gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}
