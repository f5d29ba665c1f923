package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cablenet/builder"
	"github.com/katalvlaran/cablenet/cable"
	"github.com/katalvlaran/cablenet/config"
	"github.com/katalvlaran/cablenet/core"
	"github.com/katalvlaran/cablenet/flow"
	"github.com/katalvlaran/cablenet/instance"
	"github.com/katalvlaran/cablenet/metrics"
	"github.com/katalvlaran/cablenet/pipeline"
	"github.com/katalvlaran/cablenet/validate"
)

// chain returns flows along root→nodes[0]→nodes[1]→…, every node a turbine.
func chain(root core.Node, nodes []core.Node) flow.Map {
	m := make(flow.Map, len(nodes))
	prev := root
	for i, n := range nodes {
		m[core.Arc{From: prev, To: n}] = len(nodes) - i
		prev = n
	}
	return m
}

// star returns unit flows root→n for every node.
func star(root core.Node, nodes []core.Node) flow.Map {
	m := make(flow.Map, len(nodes))
	for _, n := range nodes {
		m[core.Arc{From: root, To: n}] = 1
	}
	return m
}

type PipelineSuite struct {
	suite.Suite
	farm *builder.Farm
	inst *instance.Instance
	log  *logrus.Logger
	hook *test.Hook
	rec  *metrics.Recorder
	ctx  context.Context
	pipe *pipeline.Pipeline
}

func (s *PipelineSuite) SetupTest() {
	f, err := builder.BuildFarm([]builder.BuilderOption{builder.WithSeed(11)}, builder.Grid(3, 3))
	s.Require().NoError(err)
	s.farm = f
	s.inst, err = f.Instance()
	s.Require().NoError(err)

	s.log, s.hook = test.NewNullLogger()
	s.log.SetLevel(logrus.DebugLevel)
	s.rec = metrics.NewRecorder("cablenet")
	s.ctx = context.Background()
	s.pipe, err = pipeline.New(pipeline.WithLogger(s.log), pipeline.WithRecorder(s.rec), pipeline.WithStrict(true))
	s.Require().NoError(err)
}

func (s *PipelineSuite) TestRunRepairsAndCertifies() {
	raw, err := s.farm.TreeFlows(4)
	s.Require().NoError(err)

	res, err := s.pipe.Run(s.ctx, s.inst, raw)
	s.Require().NoError(err)

	s.True(res.Feasible(), "violations: %s", res.Violations)
	s.NotEqual(uuid.Nil, res.RunID)
	s.Len(res.Capacities, len(res.Tree))
	s.LessOrEqual(len(res.Brackets), s.inst.MaxNbSec())
	cost, err := s.inst.LayoutCost(res.Capacities)
	s.Require().NoError(err)
	s.InDelta(cost, res.Cost, 1e-6)
	s.Positive(res.Duration)

	var started, finished int
	for _, e := range s.hook.AllEntries() {
		switch e.Message {
		case "pipeline: run started":
			started++
		case "pipeline: run finished":
			finished++
			s.Equal(res.RunID.String(), e.Data["run_id"])
			s.Equal("NONE", e.Data["violations"])
		}
	}
	s.Equal(1, started)
	s.Equal(1, finished)
	s.Equal(1.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues(metrics.StatusFeasible)))
	s.Equal(float64(len(res.Cancellations)), testutil.ToFloat64(s.rec.CancellationsTotal))
}

func (s *PipelineSuite) TestRunReportsInfeasibility() {
	limited, err := s.farm.Instance(instance.WithMaxOutputDegree(s.farm.Root, 2))
	s.Require().NoError(err)

	res, err := s.pipe.Run(s.ctx, limited, star(s.farm.Root, s.farm.Turbines))
	s.Require().NoError(err)
	s.Equal(validate.DegreeViolated, res.Violations)
	s.False(res.Feasible())
	s.Equal(1.0, testutil.ToFloat64(s.rec.ViolationsTotal.WithLabelValues("DEGREE_VIOLATED")))
	s.Equal(1.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues(metrics.StatusInfeasible)))
}

func (s *PipelineSuite) TestMaxNbSecOverrideIsCheckedAgainstInstance() {
	p, err := pipeline.New(pipeline.WithMaxNbSec(9))
	s.Require().NoError(err)

	tight, err := s.farm.Instance(instance.WithMaxNbSec(1))
	s.Require().NoError(err)
	res, err := p.Run(s.ctx, tight, chain(s.farm.Root, s.farm.Turbines))
	s.Require().NoError(err)
	s.True(res.Violations.Has(validate.NbSecViolated))
}

func (s *PipelineSuite) TestRunErrors() {
	_, err := s.pipe.Run(s.ctx, nil, flow.Map{})
	s.ErrorIs(err, pipeline.ErrNilInstance)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = s.pipe.Run(ctx, s.inst, flow.Map{})
	s.ErrorIs(err, context.Canceled)

	bad := flow.Map{{From: s.farm.Turbines[0], To: s.farm.Root}: 1}
	_, err = s.pipe.Run(s.ctx, s.inst, bad)
	s.ErrorIs(err, flow.ErrArcNotInGraph)
	s.Equal(1.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues(metrics.StatusError)))
	s.Equal(logrus.ErrorLevel, s.hook.LastEntry().Level)
	s.Equal("repair", s.hook.LastEntry().Data["stage"])

	unbalanced := chain(s.farm.Root, s.farm.Turbines)
	unbalanced[core.Arc{From: s.farm.Root, To: s.farm.Turbines[0]}]++
	_, err = s.pipe.Run(s.ctx, s.inst, unbalanced)
	var cerr *flow.ConservationError
	s.ErrorAs(err, &cerr)
}

func (s *PipelineSuite) TestRunBatch() {
	jobs := make([]pipeline.Job, 0, 4)
	for seed := int64(1); seed <= 4; seed++ {
		f, err := builder.BuildFarm([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Grid(2, int(seed)+1))
		s.Require().NoError(err)
		inst, err := f.Instance()
		s.Require().NoError(err)
		raw, err := f.TreeFlows(2)
		s.Require().NoError(err)
		jobs = append(jobs, pipeline.Job{Name: "farm", Instance: inst, Flows: raw})
	}

	results, err := s.pipe.RunBatch(s.ctx, jobs)
	s.Require().NoError(err)
	s.Require().Len(results, len(jobs))
	for i, res := range results {
		s.True(res.Feasible())
		s.Len(res.Tree, 2*(i+2), "results keep job order")
	}
	s.Equal(0.0, testutil.ToFloat64(s.rec.JobsInFlight))
	s.Equal(4.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues(metrics.StatusFeasible)))
}

func (s *PipelineSuite) TestRunBatchFailure() {
	jobs := []pipeline.Job{
		{Name: "ok", Instance: s.inst, Flows: star(s.farm.Root, s.farm.Turbines)},
		{Name: "missing", Instance: nil},
	}
	_, err := s.pipe.RunBatch(s.ctx, jobs)
	var jerr *pipeline.JobError
	s.Require().ErrorAs(err, &jerr)
	s.Equal(1, jerr.Index)
	s.Equal("missing", jerr.Name)
	s.ErrorIs(err, pipeline.ErrNilInstance)
	s.Contains(err.Error(), "job 1 (missing)")
}

func (s *PipelineSuite) TestMergeBatches() {
	turbines := s.farm.Turbines
	half := len(turbines) / 2
	batches := [][]core.Node{turbines[:half], turbines[half:]}

	jobs := make([]pipeline.Job, 0, len(batches))
	for _, b := range batches {
		sub, err := s.inst.Restrict(b)
		s.Require().NoError(err)
		jobs = append(jobs, pipeline.Job{Instance: sub, Flows: chain(s.farm.Root, b)})
	}
	parts, err := s.pipe.RunBatch(s.ctx, jobs)
	s.Require().NoError(err)

	trees := make([]flow.Map, 0, len(parts))
	for _, p := range parts {
		s.True(p.Feasible())
		trees = append(trees, p.Tree)
	}

	merged, err := s.pipe.Merge(s.ctx, s.inst, trees...)
	s.Require().NoError(err)
	s.True(merged.Feasible(), "violations: %s", merged.Violations)
	s.Len(merged.Capacities, len(turbines))
	s.LessOrEqual(len(merged.Brackets), s.inst.MaxNbSec())

	_, err = s.pipe.Merge(s.ctx, s.inst)
	s.ErrorIs(err, pipeline.ErrNoParts)
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func TestNew_Options(t *testing.T) {
	_, err := pipeline.New(pipeline.WithWorkers(0))
	assert.ErrorIs(t, err, pipeline.ErrOptionViolation)

	_, err = pipeline.New(pipeline.WithMaxNbSec(0))
	assert.ErrorIs(t, err, pipeline.ErrOptionViolation)

	_, err = pipeline.New(pipeline.WithConfig(config.PipelineConfig{Workers: 0}))
	assert.ErrorIs(t, err, pipeline.ErrOptionViolation)

	p, err := pipeline.New(pipeline.WithConfig(config.Default().Pipeline))
	require.NoError(t, err)
	assert.NotNil(t, p)
}

// TestRun_TwoTurbines runs the smallest layout end to end.
func TestRun_TwoTurbines(t *testing.T) {
	a12, a13 := core.Arc{From: 1, To: 2}, core.Arc{From: 1, To: 3}
	g, err := core.FromArcs([]core.Arc{a12, a13})
	require.NoError(t, err)
	inst, err := instance.New(g, 1,
		instance.WithRequired(2, 3),
		instance.WithDistance(a12, 4),
		instance.WithDistance(a13, 6),
		instance.WithModel(cable.Model{Catalog: cable.Catalog{Static: map[int]float64{1: 2.0, 2: 3.5}}}),
		instance.WithMaxNbSec(1),
	)
	require.NoError(t, err)

	p, err := pipeline.New()
	require.NoError(t, err)
	res, err := p.Run(context.Background(), inst, flow.Map{a12: 1, a13: 1})
	require.NoError(t, err)

	assert.True(t, res.Feasible())
	assert.Equal(t, instance.Assignment{a12: 1, a13: 1}, res.Capacities)
	assert.InDelta(t, 20.0, res.Cost, 1e-9)
	assert.Empty(t, res.Cancellations)
}

func TestJobError(t *testing.T) {
	inner := errors.New("boom")
	err := &pipeline.JobError{Index: 3, Err: inner}
	assert.Equal(t, "pipeline: job 3: boom", err.Error())
	assert.ErrorIs(t, err, inner)
}
