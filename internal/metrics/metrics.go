package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "token_swap"

// Metrics holds the service collectors. Methods are safe on a nil receiver.
type Metrics struct {
	requests    *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	priceLoads  *prometheus.CounterVec
	submissions *prometheus.CounterVec
	sessions    prometheus.Gauge
}

var (
	once     sync.Once
	registry *Metrics
)

// Default returns the process-wide collectors registered with the default prometheus registry.
func Default() *Metrics {
	once.Do(func() {
		registry = New(prometheus.DefaultRegisterer)
	})
	return registry
}

// New creates collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		priceLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prices",
			Name:      "loads_total",
			Help:      "Price book loads by source and result.",
		}, []string{"source", "result"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "swap",
			Name:      "submissions_total",
			Help:      "Swap submissions by result.",
		}, []string{"result"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "swap",
			Name:      "ws_sessions",
			Help:      "Open websocket swap sessions.",
		}),
	}
	reg.MustRegister(m.requests, m.durations, m.priceLoads, m.submissions, m.sessions)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.durations.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordPriceLoad counts a price book load from source ("cache" or "feed").
func (m *Metrics) RecordPriceLoad(source string, err error) {
	if m == nil {
		return
	}
	m.priceLoads.WithLabelValues(source, result(err)).Inc()
}

// RecordSubmission counts a swap submission.
func (m *Metrics) RecordSubmission(err error) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result(err)).Inc()
}

// SessionOpened tracks a websocket session; the returned func closes it.
func (m *Metrics) SessionOpened() func() {
	if m == nil {
		return func() {}
	}
	m.sessions.Inc()
	return m.sessions.Dec
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
