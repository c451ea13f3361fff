// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Collectors live on their own registry so several instances can coexist.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	VotesCast         prometheus.Counter
	VotesRejected     *prometheus.CounterVec
	VotersRegistered  prometheus.Counter
	ElectionsUpserted *prometheus.CounterVec
}

// New creates and registers all metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "urna_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "urna_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		VotesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "urna_votes_cast_total",
			Help: "Total number of ballots recorded",
		}),
		VotesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "urna_votes_rejected_total",
			Help: "Ballots refused, by reason",
		}, []string{"reason"}),
		VotersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "urna_voters_registered_total",
			Help: "Total number of voters registered",
		}),
		ElectionsUpserted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "urna_elections_upserted_total",
			Help: "Election submissions by result (created or updated)",
		}, []string{"result"}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records a finished request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementVotesCast() {
	m.VotesCast.Inc()
}

func (m *Metrics) IncrementVotesRejected(reason string) {
	m.VotesRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementVotersRegistered() {
	m.VotersRegistered.Inc()
}

// IncrementElectionsUpserted records an election submission
func (m *Metrics) IncrementElectionsUpserted(created bool) {
	result := "updated"
	if created {
		result = "created"
	}
	m.ElectionsUpserted.WithLabelValues(result).Inc()
}
