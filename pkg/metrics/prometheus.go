package metrics

import (
	"HealthFeas/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "healthfeas"

// Recorder implements domain.repository.Metrics and the HTTP observer using Prometheus.
type Recorder struct {
	runsTotal      *prometheus.CounterVec
	undefinedTotal *prometheus.CounterVec
	cacheTotal     *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInFlight *prometheus.GaugeVec
	httpSize     *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		runsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scenario_runs_total",
				Help:      "Scenario runs served, computed or from cache",
			},
			[]string{"venture"},
		),
		undefinedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "undefined_metrics_total",
				Help:      "Runs whose IRR or payback was undefined",
			},
			[]string{"venture", "metric"},
		),
		cacheTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "result_cache_total",
				Help:      "Result cache lookups by outcome",
			},
			[]string{"result"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of operations in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method", "class"},
		),
		httpInFlight: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests",
			},
			[]string{"route", "method"},
		),
		httpSize: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   []float64{200, 500, 1_000, 2_000, 5_000, 10_000, 50_000, 100_000, 500_000},
			},
			[]string{"route", "method", "class"},
		),
	}
}

func (r *Recorder) RecordRun(venture models.VentureID) {
	r.runsTotal.WithLabelValues(string(venture)).Inc()
}

func (r *Recorder) RecordUndefined(venture models.VentureID, metric string) {
	r.undefinedTotal.WithLabelValues(string(venture), metric).Inc()
}

// RecordCache counts a lookup outcome: hit, miss or error.
func (r *Recorder) RecordCache(result string) {
	r.cacheTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// InFlight adjusts the in-flight gauge by delta.
func (r *Recorder) InFlight(route, method string, delta float64) {
	r.httpInFlight.WithLabelValues(route, method).Add(delta)
}

// ObserveRequest records a finished HTTP request.
func (r *Recorder) ObserveRequest(route, method, status, class string, seconds float64, bytes int64) {
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpDuration.WithLabelValues(route, method, class).Observe(seconds)
	r.httpSize.WithLabelValues(route, method, class).Observe(float64(bytes))
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordRun(models.VentureID)                                   {}
func (Nop) RecordUndefined(models.VentureID, string)                     {}
func (Nop) RecordCache(string)                                           {}
func (Nop) RecordError(string)                                           {}
func (Nop) RecordLatency(string, float64)                                {}
func (Nop) InFlight(string, string, float64)                             {}
func (Nop) ObserveRequest(string, string, string, string, float64, int64) {}
