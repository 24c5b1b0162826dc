// Package metrics exposes fetch orchestrator activity to Prometheus.
package metrics

import (
	"marketplace/internal/fetch"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FetchMetrics implements fetch.Observer with Prometheus counters.
type FetchMetrics struct {
	transitions  *prometheus.CounterVec
	staleResults *prometheus.CounterVec
	deduplicated *prometheus.CounterVec
}

var _ fetch.Observer = (*FetchMetrics)(nil)

// NewRegistry creates the registry the gateway exposes.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// NewFetchMetrics registers the fetch counters on reg.
func NewFetchMetrics(reg *prometheus.Registry) *FetchMetrics {
	factory := promauto.With(reg)

	return &FetchMetrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "fetch",
			Name:      "transitions_total",
			Help:      "Applied state transitions by resource and target status",
		}, []string{"resource", "from", "to"}),

		staleResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "fetch",
			Name:      "stale_results_total",
			Help:      "Settled results discarded because a newer operation or a release superseded them",
		}, []string{"resource"}),

		deduplicated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "fetch",
			Name:      "deduplicated_intents_total",
			Help:      "Intents dropped because the key was already loading",
		}, []string{"resource"}),
	}
}

func (m *FetchMetrics) Transitioned(resource string, from, to fetch.Status) {
	m.transitions.WithLabelValues(resource, from.String(), to.String()).Inc()
}

func (m *FetchMetrics) StaleDropped(resource string) {
	m.staleResults.WithLabelValues(resource).Inc()
}

func (m *FetchMetrics) Deduplicated(resource string) {
	m.deduplicated.WithLabelValues(resource).Inc()
}
