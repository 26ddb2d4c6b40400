package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "spinesort"

// Metrics implements [PipelineHooks] and [HTTPHooks] on Prometheus
// collectors.
type Metrics struct {
	records       prometheus.Counter
	skipped       prometheus.Counter
	sorts         *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	requests      *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass a fresh prometheus.NewRegistry() per server to keep tests isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_parsed_total",
			Help:      "Color records parsed from input lines.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lines_skipped_total",
			Help:      "Input lines dropped because they did not match the color syntax.",
		}),
		sorts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sorts_total",
			Help:      "Sort runs by method and group count.",
		}, []string{"method", "groups"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"stage"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stage_errors_total",
			Help:      "Pipeline stage failures.",
		}, []string{"stage"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(m.records, m.skipped, m.sorts, m.stageDuration, m.stageErrors, m.requests, m.reqDuration)
	}
	return m
}

func (m *Metrics) OnParseStart(context.Context, int) {}

func (m *Metrics) OnParseComplete(_ context.Context, records, skipped int, d time.Duration, err error) {
	m.observeStage("parse", d, err)
	m.records.Add(float64(records))
	m.skipped.Add(float64(skipped))
}

func (m *Metrics) OnArrangeStart(context.Context, string, int) {}

func (m *Metrics) OnArrangeComplete(_ context.Context, method string, groups int, d time.Duration, err error) {
	m.observeStage("arrange", d, err)
	if err == nil {
		m.sorts.WithLabelValues(method, strconv.Itoa(groups)).Inc()
	}
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	m.observeStage("render", d, err)
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.reqDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) observeStage(stage string, d time.Duration, err error) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		m.stageErrors.WithLabelValues(stage).Inc()
	}
}

var (
	_ PipelineHooks = (*Metrics)(nil)
	_ HTTPHooks     = (*Metrics)(nil)
)
