package ledger

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for ledger transitions, errors and sweeps
type Metrics struct {
	transitions *prometheus.CounterVec
	errors      *prometheus.CounterVec
	swept       prometheus.Counter
	sweepRuns   *prometheus.CounterVec
}

var _ Observer = &Metrics{}

// NewMetrics registers the collectors to reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "transitions_total",
			Help:      "committed submission transitions",
		}, []string{"event", "to"}),

		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "errors_total",
			Help:      "facade errors by kind",
		}, []string{"kind"}),

		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "swept_submissions_total",
			Help:      "submissions transitioned by sweeps",
		}),

		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "sweep_runs_total",
			Help:      "sweep invocations by trigger",
		}, []string{"trigger"}),
	}

	reg.MustRegister(m.transitions, m.errors, m.swept, m.sweepRuns)
	return m
}

// OnTransition ...
func (m *Metrics) OnTransition(_ context.Context, e ChangeEvent) {
	m.transitions.WithLabelValues(e.Event.String(), e.To.String()).Inc()
}

func (m *Metrics) observeError(err error) {
	kind := KindOf(err)
	m.errors.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) observeSweep(trigger string, count int) {
	m.sweepRuns.WithLabelValues(trigger).Inc()
	m.swept.Add(float64(count))
}
