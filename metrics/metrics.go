// SPDX-License-Identifier: MIT

// Package metrics exposes planner telemetry as Prometheus series on a
// private registry.
//
//	transit_route_queries_total{criterion,algorithm,outcome}
//	transit_route_query_duration_seconds{criterion}
//	transit_edge_events_total{event}
//	transit_mst_queries_total{method,outcome}
//
// *Registry satisfies planner.Recorder.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/transit/events"
)

// Registry holds the planner series.
type Registry struct {
	RouteQueriesTotal  *prometheus.CounterVec
	RouteQueryDuration *prometheus.HistogramVec
	EdgeEventsTotal    *prometheus.CounterVec
	MSTQueriesTotal    *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every series initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.RouteQueriesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_route_queries_total",
			Help: "Route queries by criterion, solver and outcome",
		},
		[]string{"criterion", "algorithm", "outcome"},
	)
	r.RouteQueryDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transit_route_query_duration_seconds",
			Help:    "Route query duration in seconds, simulation included",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"criterion"},
	)
	r.EdgeEventsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_edge_events_total",
			Help: "Simulated edge events by label",
		},
		[]string{"event"},
	)
	r.MSTQueriesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_mst_queries_total",
			Help: "Spanning tree queries by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	return r
}

// RouteQuery records one route query.
func (r *Registry) RouteQuery(criterion, algorithm, outcome string, elapsed time.Duration) {
	r.RouteQueriesTotal.WithLabelValues(criterion, algorithm, outcome).Inc()
	r.RouteQueryDuration.WithLabelValues(criterion).Observe(elapsed.Seconds())
}

// EdgeEvents adds one simulation pass to the event counters.
func (r *Registry) EdgeEvents(tally events.Tally) {
	for label, n := range tally {
		r.EdgeEventsTotal.WithLabelValues(label).Add(float64(n))
	}
}

// SpanningTreeQuery records one spanning tree query.
func (r *Registry) SpanningTreeQuery(method, outcome string) {
	r.MSTQueriesTotal.WithLabelValues(method, outcome).Inc()
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
