package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loyalty_ledger"

// Registry holds the service's collectors. It is separate from the default
// registry so tests can build several routers in one process.
var Registry = prometheus.NewRegistry()

var (
	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	ledgerAppends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "appends_total",
			Help:      "Ledger append attempts by reason and outcome.",
		},
		[]string{"reason", "outcome"},
	)

	ledgerPoints = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "points_total",
			Help:      "Points moved by committed entries.",
		},
		[]string{"kind"},
	)

	ledgerAppendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "append_duration_seconds",
			Help:      "Time spent in an append, including waiting for the partition.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
	)

	summaryCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "summary_cache",
			Name:      "lookups_total",
			Help:      "Summary cache lookups by result.",
		},
		[]string{"result"},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-principal rate limiter.",
		},
	)
)

// Append outcomes.
const (
	OutcomeCommitted    = "committed"
	OutcomeReplayed     = "replayed"
	OutcomeInsufficient = "insufficient_balance"
	OutcomeFailed       = "failed"
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ledgerAppends,
		ledgerPoints,
		ledgerAppendDuration,
		summaryCache,
		rateLimited,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

func RecordRequest(method, route, status string, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordAppend(reason, outcome string, duration time.Duration) {
	ledgerAppends.WithLabelValues(reason, outcome).Inc()
	ledgerAppendDuration.Observe(duration.Seconds())
}

func RecordPoints(kind string, points int64) {
	if points <= 0 {
		return
	}
	ledgerPoints.WithLabelValues(kind).Add(float64(points))
}

func RecordCacheLookup(hit bool) {
	if hit {
		summaryCache.WithLabelValues("hit").Inc()
		return
	}
	summaryCache.WithLabelValues("miss").Inc()
}

func RecordRateLimited() {
	rateLimited.Inc()
}
