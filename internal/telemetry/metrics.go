// Package telemetry records pipeline, HTTP and clipboard events as
// Prometheus metrics by implementing the observability hooks.
package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/ordinatrix/pkg/observability"
)

const namespace = "ordinatrix"

// Metrics holds the collectors. It implements observability.PipelineHooks,
// observability.HTTPHooks and observability.ClipboardHooks.
type Metrics struct {
	registry *prometheus.Registry

	points        *prometheus.CounterVec
	dropped       prometheus.Counter
	stageDuration *prometheus.HistogramVec
	outputBytes   *prometheus.CounterVec

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        prometheus.Gauge

	copies *prometheus.CounterVec
}

var (
	_ observability.PipelineHooks  = (*Metrics)(nil)
	_ observability.HTTPHooks      = (*Metrics)(nil)
	_ observability.ClipboardHooks = (*Metrics)(nil)
)

// New creates metrics registered on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Points processed, by stage.",
		}, []string{"stage"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_tokens_total",
			Help:      "Trailing tokens that did not fill a whole point.",
		}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"stage", "detail"}),
		outputBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "output_bytes_total",
			Help:      "Rendered output size, by format.",
		}, []string{"format"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
		copies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clipboard_copies_total",
			Help:      "Clipboard copies, by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.points, m.dropped, m.stageDuration, m.outputBytes,
		m.requests, m.requestDuration, m.inflight,
		m.copies,
	)
	return m
}

// Install sets m as the process-wide hook implementation.
func (m *Metrics) Install() {
	observability.SetPipelineHooks(m)
	observability.SetHTTPHooks(m)
	observability.SetClipboardHooks(m)
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) OnParse(_ context.Context, points, dropped int, d time.Duration) {
	m.points.WithLabelValues("parse").Add(float64(points))
	m.dropped.Add(float64(dropped))
	m.stageDuration.WithLabelValues("parse", "").Observe(d.Seconds())
}

func (m *Metrics) OnTransform(_ context.Context, mode string, points int, d time.Duration) {
	m.points.WithLabelValues("transform").Add(float64(points))
	m.stageDuration.WithLabelValues("transform", mode).Observe(d.Seconds())
}

func (m *Metrics) OnRender(_ context.Context, format string, size int, d time.Duration) {
	m.outputBytes.WithLabelValues(format).Add(float64(size))
	m.stageDuration.WithLabelValues("render", format).Observe(d.Seconds())
}

func (m *Metrics) OnRequest(context.Context, string, string) {
	m.inflight.Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.inflight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) OnCopy(_ context.Context, _ int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.copies.WithLabelValues(result).Inc()
}
