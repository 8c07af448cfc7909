// Package metrics exposes assignment and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/assignment"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dispatch"

// Collector owns every metric of the service. It implements ports.AssignmentObserver.
type Collector struct {
	gatherer prometheus.Gatherer

	runs            prometheus.Counter
	runDuration     prometheus.Histogram
	outcomes        *prometheus.CounterVec
	assignLatency   prometheus.Histogram
	httpRequests    *prometheus.CounterVec
	httpReqDuration *prometheus.HistogramVec
}

// NewCollector registers the metrics with reg. Pass prometheus.NewRegistry()
// in tests to keep them isolated.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		gatherer: reg,
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignment_runs_total",
			Help:      "Total number of completed assignment runs",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assignment_run_duration_seconds",
			Help:      "Wall time of one assignment run",
			Buckets:   prometheus.DefBuckets,
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignment_outcomes_total",
			Help:      "Assignment outcomes by status and failure reason",
		}, []string{"status", "reason"}),
		assignLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assignment_latency_seconds",
			Help:      "Time from order creation to successful assignment",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpReqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	reg.MustRegister(c.runs, c.runDuration, c.outcomes, c.assignLatency, c.httpRequests, c.httpReqDuration)
	return c
}

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(elapsed time.Duration, outcomes []*assignment.Assignment) {
	c.runs.Inc()
	c.runDuration.Observe(elapsed.Seconds())

	for _, a := range outcomes {
		if a == nil {
			continue
		}
		c.outcomes.WithLabelValues(string(a.Status()), a.Reason().Code()).Inc()
		if a.IsSuccess() {
			c.assignLatency.Observe(a.Latency().Seconds())
		}
	}
}

// Middleware counts requests by route pattern, never by raw path.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(ctx.Response().Status)
			method := ctx.Request().Method

			c.httpRequests.WithLabelValues(method, path, status).Inc()
			c.httpReqDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
