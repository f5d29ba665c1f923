package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes used as the status label.
const (
	StatusFeasible   = "feasible"
	StatusInfeasible = "infeasible"
	StatusError      = "error"
)

// Recorder holds the pipeline metrics.
type Recorder struct {
	RunsTotal          *prometheus.CounterVec
	RunDuration        prometheus.Histogram
	LayoutCost         prometheus.Histogram
	CancellationsTotal prometheus.Counter
	ViolationsTotal    *prometheus.CounterVec
	JobsInFlight       prometheus.Gauge

	registry *prometheus.Registry
}

// NewRecorder registers every metric under namespace on a fresh registry.
func NewRecorder(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of pipeline runs by outcome",
			},
			[]string{"status"},
		),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Pipeline run duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		LayoutCost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_cost",
			Help:      "Total cable cost of consolidated layouts",
			Buckets:   prometheus.ExponentialBuckets(1e3, 4, 10),
		}),
		CancellationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_cancellations_total",
			Help:      "Total number of merges removed by tree repair",
		}),
		ViolationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "violations_total",
				Help:      "Total number of constraint violations by category",
			},
			[]string{"category"},
		),
		JobsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "jobs_in_flight",
			Help:      "Number of pipeline jobs currently running",
		}),
		registry: reg,
	}
}

// RecordRun records one finished run.
func (r *Recorder) RecordRun(status string, d time.Duration, cost float64, cancellations int, violations []string) {
	if r == nil {
		return
	}
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(d.Seconds())
	if status != StatusError {
		r.LayoutCost.Observe(cost)
	}
	r.CancellationsTotal.Add(float64(cancellations))
	for _, v := range violations {
		r.ViolationsTotal.WithLabelValues(v).Inc()
	}
}

// JobStarted marks a batch job as running.
func (r *Recorder) JobStarted() {
	if r == nil {
		return
	}
	r.JobsInFlight.Inc()
}

// JobFinished marks a batch job as done.
func (r *Recorder) JobFinished() {
	if r == nil {
		return
	}
	r.JobsInFlight.Dec()
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
