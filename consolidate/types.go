package consolidate

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cablenet/instance"
)

// Sentinel errors for Consolidate.
var (
	// ErrNilInstance is returned when the instance pointer is nil.
	ErrNilInstance = errors.New("consolidate: instance is nil")

	// ErrInvalidMaxNbSec is returned when the effective maxNbSec is < 1.
	ErrInvalidMaxNbSec = errors.New("consolidate: maxNbSec must be at least 1")

	// ErrNonPositiveFlow indicates a flow value ≤ 0.
	ErrNonPositiveFlow = errors.New("consolidate: non-positive flow")
)

// Result is a consolidated capacity assignment.
type Result struct {
	// Capacities maps every input arc to its cable capacity.
	Capacities instance.Assignment

	// Cost is the total RealCableCost of Capacities.
	Cost float64

	// Brackets lists the distinct capacities used, ascending.
	Brackets []int
}

// Option configures Consolidate.
type Option func(*Options)

// Options holds Consolidate settings.
type Options struct {
	// MaxNbSec overrides the instance limit when > 0.
	MaxNbSec int

	// Logger receives a Debug summary of each run.
	Logger logrus.FieldLogger

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions uses the instance's maxNbSec and a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: discard}
}

// WithMaxNbSec overrides the instance's maxNbSec. k < 1 makes Consolidate
// fail with ErrInvalidMaxNbSec.
func WithMaxNbSec(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidMaxNbSec, k)
			return
		}
		o.MaxNbSec = k
	}
}

// WithLogger routes the run summary to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
