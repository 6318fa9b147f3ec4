// Package metrics records per-run loop-detection statistics in a private
// Prometheus registry and can dump them in the text exposition format, e.g.
// for the node exporter's textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/guardwalk/grid"
	"github.com/katalvlaran/guardwalk/loopdetect"
)

const namespace = "guardwalk"

// Recorder implements loopdetect.Observer. It is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	trials  *prometheus.CounterVec
	stops   prometheus.Histogram
	visited prometheus.Gauge
	steps   prometheus.Gauge
}

var _ loopdetect.Observer = (*Recorder)(nil)

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trials_total",
				Help:      "Trial obstructions evaluated, by verdict.",
			},
			[]string{"verdict"},
		),
		stops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_stops",
			Help:      "Turns taken by a single trial before it looped or escaped.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		visited: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "visited_cells",
			Help:      "Distinct cells covered by the real patrol.",
		}),
		steps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "patrol_steps",
			Help:      "Steps of the real patrol, turns included.",
		}),
	}
	r.registry.MustRegister(r.trials, r.stops, r.visited, r.steps)

	return r
}

// TrialDone counts one trial.
func (r *Recorder) TrialDone(_ grid.Point, loop bool, stops int) {
	verdict := "escape"
	if loop {
		verdict = "loop"
	}
	r.trials.WithLabelValues(verdict).Inc()
	r.stops.Observe(float64(stops))
}

// ObserveResult records the run-level gauges of res.
func (r *Recorder) ObserveResult(res *loopdetect.Result) {
	r.visited.Set(float64(res.VisitedCount()))
	r.steps.Set(float64(res.Steps))
}

// Gatherer exposes the registry, e.g. for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
