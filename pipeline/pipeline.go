package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cablenet/consolidate"
	"github.com/katalvlaran/cablenet/flow"
	"github.com/katalvlaran/cablenet/instance"
	"github.com/katalvlaran/cablenet/metrics"
	"github.com/katalvlaran/cablenet/validate"
)

// Pipeline runs repair, consolidation and validation with fixed settings.
type Pipeline struct {
	opts Options
}

// New builds a Pipeline; an invalid option yields ErrOptionViolation.
func New(opts ...Option) (*Pipeline, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Pipeline{opts: o}, nil
}

// Run repairs flows into an arborescence, consolidates its capacities and
// validates the result. ctx is checked before the run starts.
//
// Implementation:
//   - Stage 1: flow.Repair (strict mode checks conservation first).
//   - Stage 2: consolidate.Consolidate under the effective maxNbSec.
//   - Stage 3: validate.Check on the consolidated assignment.
func (p *Pipeline) Run(ctx context.Context, inst *instance.Instance, flows flow.Map) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, ErrNilInstance
	}

	start := time.Now()
	res := &Result{RunID: uuid.New()}
	log := p.opts.Logger.WithField("run_id", res.RunID.String())
	log.WithFields(logrus.Fields{
		"arcs":     len(flows),
		"turbines": inst.RequiredCount(),
	}).Info("pipeline: run started")

	fail := func(stage string, err error) (*Result, error) {
		p.opts.Recorder.RecordRun(metrics.StatusError, time.Since(start), 0, len(res.Cancellations), nil)
		log.WithError(err).WithField("stage", stage).Error("pipeline: run failed")
		return nil, fmt.Errorf("pipeline: %s: %w", stage, err)
	}

	// Stage 1
	repairOpts := []flow.Option{
		flow.WithLogger(log),
		flow.WithOnCancel(func(c flow.Cancellation) { res.Cancellations = append(res.Cancellations, c) }),
	}
	if p.opts.Strict {
		repairOpts = append(repairOpts, flow.WithStrict())
	}
	tree, err := flow.Repair(inst, flows, repairOpts...)
	if err != nil {
		return fail("repair", err)
	}
	res.Tree = tree

	// Stage 2
	consOpts := []consolidate.Option{consolidate.WithLogger(log)}
	if p.opts.MaxNbSec > 0 {
		consOpts = append(consOpts, consolidate.WithMaxNbSec(p.opts.MaxNbSec))
	}
	cons, err := consolidate.Consolidate(inst, tree, consOpts...)
	if err != nil {
		return fail("consolidate", err)
	}
	res.Capacities, res.Cost, res.Brackets = cons.Capacities, cons.Cost, cons.Brackets

	// Stage 3
	v, err := validate.Check(inst, res.Capacities)
	if err != nil {
		return fail("validate", err)
	}
	res.Violations = v
	res.Duration = time.Since(start)

	status := metrics.StatusFeasible
	if !v.Empty() {
		status = metrics.StatusInfeasible
	}
	p.opts.Recorder.RecordRun(status, res.Duration, res.Cost, len(res.Cancellations), v.Names())
	log.WithFields(logrus.Fields{
		"arcs":          len(res.Capacities),
		"cost":          res.Cost,
		"brackets":      res.Brackets,
		"cancellations": len(res.Cancellations),
		"violations":    v.String(),
		"duration":      res.Duration,
	}).Info("pipeline: run finished")

	return res, nil
}

// RunBatch runs jobs concurrently on at most Workers goroutines. Results
// are returned in job order. The first failing job cancels the jobs not yet
// started and is returned as a *JobError.
func (p *Pipeline) RunBatch(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			p.opts.Recorder.JobStarted()
			defer p.opts.Recorder.JobFinished()

			res, err := p.Run(gctx, job.Instance, job.Flows)
			if err != nil {
				return &JobError{Index: i, Name: job.Name, Err: err}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Merge sums per-batch flow maps over inst and runs the combined layout
// through the pipeline, so the merged solution is repaired,
// re-consolidated under a single maxNbSec and validated as a whole.
func (p *Pipeline) Merge(ctx context.Context, inst *instance.Instance, parts ...flow.Map) (*Result, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}
	total := make(flow.Map)
	for _, part := range parts {
		for a, f := range part {
			total[a] += f
		}
	}

	return p.Run(ctx, inst, total)
}
