package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cablenet/config"
	"github.com/katalvlaran/cablenet/flow"
	"github.com/katalvlaran/cablenet/instance"
	"github.com/katalvlaran/cablenet/logging"
	"github.com/katalvlaran/cablenet/metrics"
	"github.com/katalvlaran/cablenet/validate"
)

// Sentinel errors for pipeline configuration and runs.
var (
	// ErrNilInstance is returned when a run has no instance.
	ErrNilInstance = errors.New("pipeline: instance is nil")

	// ErrOptionViolation is returned by New for an invalid option.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")

	// ErrNoParts is returned by Merge without any layout to merge.
	ErrNoParts = errors.New("pipeline: nothing to merge")
)

// JobError identifies the batch job that failed.
type JobError struct {
	Index int
	Name  string
	Err   error
}

func (e *JobError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("pipeline: job %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("pipeline: job %d: %v", e.Index, e.Err)
}

// Unwrap returns the job's error.
func (e *JobError) Unwrap() error { return e.Err }

// Job is one independent unit of a batch.
type Job struct {
	Name     string
	Instance *instance.Instance
	Flows    flow.Map
}

// Result is the outcome of one run.
type Result struct {
	// RunID tags the run's log entries.
	RunID uuid.UUID

	// Tree is the repaired flow map.
	Tree flow.Map

	// Capacities is the consolidated cable assignment.
	Capacities instance.Assignment

	// Cost is the total cable cost of Capacities.
	Cost float64

	// Brackets lists the distinct capacities used, ascending.
	Brackets []int

	// Violations is empty for a feasible layout.
	Violations validate.Violations

	// Cancellations lists the merges removed by repair, in order.
	Cancellations []flow.Cancellation

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Feasible reports whether the layout passed every check.
func (r *Result) Feasible() bool { return r.Violations.Empty() }

// Option configures a Pipeline.
type Option func(*Options)

// Options holds pipeline settings.
type Options struct {
	// Logger receives run summaries at Info and algorithm traces at Debug.
	Logger logrus.FieldLogger

	// Recorder receives run metrics; nil disables metrics.
	Recorder *metrics.Recorder

	// Workers bounds concurrent jobs in RunBatch.
	Workers int

	// Strict checks flow conservation before repair.
	Strict bool

	// MaxNbSec overrides the instance limit when > 0.
	MaxNbSec int

	err error
}

// DefaultOptions returns four workers, no metrics, lenient repair and the
// instance's maxNbSec.
func DefaultOptions() Options {
	return Options{
		Logger:  logging.Discard(),
		Workers: 4,
	}
}

// WithLogger routes pipeline logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder records run metrics on r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithWorkers bounds RunBatch concurrency; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrict enables the conservation precheck.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithMaxNbSec overrides the instance's maxNbSec; k < 1 is an ErrOptionViolation.
func WithMaxNbSec(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: maxNbSec must be at least 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxNbSec = k
	}
}

// WithConfig applies a config.PipelineConfig section.
func WithConfig(c config.PipelineConfig) Option {
	return func(o *Options) {
		WithWorkers(c.Workers)(o)
		o.Strict = c.Strict
		if c.MaxNbSec > 0 {
			o.MaxNbSec = c.MaxNbSec
		}
	}
}
