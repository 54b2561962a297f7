// Package metrics exposes the Prometheus collectors of the scheduler.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "myenglish"
	subsystem = "scheduler"
)

// Task outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

var (
	tasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tasks_total",
			Help:      "Finished background tasks by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	taskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "task_duration_seconds",
			Help:      "Run time of background tasks",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
		},
		[]string{"kind"},
	)

	tasksQueued = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tasks_queued",
			Help:      "Tasks waiting for the worker",
		},
	)

	cardsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cards_processed_total",
			Help:      "Cards written by bulk operations",
		},
		[]string{"operation"},
	)

	httpRequests = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "Operator API requests by method and status code",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)

	paramProblems = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "problems_total",
			Help:      "Warnings and per-card failures reported by bulk operations",
		},
	)
)

// TaskQueued adjusts the number of waiting tasks by delta.
func TaskQueued(delta int) {
	tasksQueued.Add(float64(delta))
}

// TaskFinished records the outcome and run time of a task.
func TaskFinished(kind, outcome string, d time.Duration) {
	tasksTotal.WithLabelValues(kind, outcome).Inc()
	taskDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// CardsProcessed adds n written cards for an operation.
func CardsProcessed(operation string, n int) {
	if n > 0 {
		cardsProcessed.WithLabelValues(operation).Add(float64(n))
	}
}

// Problems adds n reported problems.
func Problems(n int) {
	if n > 0 {
		paramProblems.Add(float64(n))
	}
}

// HTTPRequest records one served request.
func HTTPRequest(method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
