// SPDX-License-Identifier: MIT

package observability

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/worldline/kinerr"
)

// OutcomeOK labels a solver call that returned no error.
const OutcomeOK = "ok"

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldline",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worldline",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	solverOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worldline",
			Subsystem: "solver",
			Name:      "outcomes_total",
			Help:      "Kinematics operations by outcome (ok or error kind).",
		},
		[]string{"op", "kind"},
	)
)

// RegisterMetrics registers the collectors with the default prometheus
// registry. Safe to call repeatedly.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, solverOutcomes)
	})
}

// RecordHTTPRequest counts one served request and observes its duration,
// labelled by method, route path and status code.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordSolverOutcome counts one call of op. err == nil counts as OutcomeOK;
// a kinerr error counts under its Kind; anything else under "internal".
func RecordSolverOutcome(op string, err error) {
	RegisterMetrics()
	solverOutcomes.WithLabelValues(op, OutcomeLabel(err)).Inc()
}

// OutcomeLabel is the kind label RecordSolverOutcome uses for err.
func OutcomeLabel(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var kerr *kinerr.Error
	if errors.As(err, &kerr) {
		return kerr.Kind.String()
	}
	return "internal"
}

// MetricsHandler serves the default registry in the prometheus text format.
func MetricsHandler() http.Handler {
	RegisterMetrics()
	return promhttp.Handler()
}
