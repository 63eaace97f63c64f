// Package metrics provides Prometheus metrics for mocksh.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mocksh/internal/shell"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mocksh_commands_total",
			Help: "Total number of submitted lines by command kind",
		},
		[]string{"kind"},
	)

	treeMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mocksh_tree_mutations_total",
			Help: "Total number of mutating commands by outcome",
		},
		[]string{"kind", "status"},
	)

	sessionsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mocksh_sessions_opened_total",
			Help: "Total number of shell sessions opened by frontend",
		},
		[]string{"frontend"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mocksh_active_sessions",
			Help: "Number of shell sessions currently open",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mocksh_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mocksh_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordCommand counts one submitted line. For mutating kinds, failed
// reports whether the command was rejected.
func RecordCommand(kind string, mutates, failed bool) {
	commandsTotal.WithLabelValues(kind).Inc()
	if !mutates {
		return
	}
	status := "success"
	if failed {
		status = "error"
	}
	treeMutationsTotal.WithLabelValues(kind, status).Inc()
}

// ObserveResult is a shell.Session observer that counts every submitted
// line. A mutating command that produced output was rejected.
func ObserveResult(r shell.Result) {
	RecordCommand(r.Kind.String(), r.Kind.Mutates(), r.Entry.Output != "")
}

// SessionOpened records a new session for frontend (tui, web, batch).
func SessionOpened(frontend string) {
	sessionsOpened.WithLabelValues(frontend).Inc()
	activeSessions.Inc()
}

// SessionClosed decrements the active session gauge.
func SessionClosed() {
	activeSessions.Dec()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
